package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vendora/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	upContent := g.generateUpMigrationTemplate(name)
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	downContent := g.generateDownMigrationTemplate(name)
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

// generateUpMigrationTemplate generates a template for up migration
func (g *Generator) generateUpMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
-- Description: Add description here

-- Add your SQL statements here

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// generateDownMigrationTemplate generates a template for down migration
func (g *Generator) generateDownMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s
-- Description: Add rollback description here

-- Add your rollback SQL statements here

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateCaseTablesMigration creates the initial case tables migration
func (g *Generator) CreateCaseTablesMigration() error {
	g.logger.Infow("creating initial case tables migration")

	timestamp := "000001"
	name := "create_case_tables"

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(upFilePath, g.generateCaseTablesUpMigration()); err != nil {
		return fmt.Errorf("failed to create case tables up migration: %w", err)
	}

	if err := g.writeFile(downFilePath, g.generateCaseTablesDownMigration()); err != nil {
		return fmt.Errorf("failed to create case tables down migration: %w", err)
	}

	g.logger.Infow("case tables migration created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// generateCaseTablesUpMigration generates the up migration for the case tables
func (g *Generator) generateCaseTablesUpMigration() string {
	return `-- Migration: Create case tables
-- Created: Initial migration
-- Description: Create the advertisements, issues, disputes and thread tables

CREATE TABLE IF NOT EXISTS advertisements (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    price_cents BIGINT NOT NULL,
    seller_id BIGINT UNSIGNED NOT NULL,
    buyer_id BIGINT UNSIGNED NULL,
    status VARCHAR(20) NOT NULL,
    created_at BIGINT NOT NULL,
    INDEX idx_advertisements_seller_id (seller_id),
    INDEX idx_advertisements_buyer_id (buyer_id),
    INDEX idx_advertisements_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS issues (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    issue_number VARCHAR(50) NOT NULL UNIQUE,
    advertisement_id BIGINT UNSIGNED NOT NULL,
    issuer_id BIGINT UNSIGNED NOT NULL,
    respondent_id BIGINT UNSIGNED NOT NULL,
    description TEXT NOT NULL,
    buyer_request TEXT NOT NULL,
    status VARCHAR(30) NOT NULL,
    seller_decision VARCHAR(20) NULL,
    seller_response_text TEXT NULL,
    responded_at BIGINT NULL,
    version INT NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    closed_at BIGINT NULL,
    INDEX idx_issues_advertisement_id (advertisement_id),
    INDEX idx_issues_issuer_id (issuer_id),
    INDEX idx_issues_respondent_id (respondent_id),
    INDEX idx_issues_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS disputes (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    dispute_number VARCHAR(50) NOT NULL UNIQUE,
    source_issue_id BIGINT UNSIGNED NULL,
    advertisement_id BIGINT UNSIGNED NOT NULL,
    issuer_id BIGINT UNSIGNED NOT NULL,
    respondent_id BIGINT UNSIGNED NOT NULL,
    category VARCHAR(100) NOT NULL,
    description TEXT NOT NULL,
    dispute_demand TEXT NOT NULL,
    status VARCHAR(30) NOT NULL,
    seller_decision VARCHAR(20) NULL,
    seller_response_text TEXT NULL,
    responded_at BIGINT NULL,
    negotiation_deadline BIGINT NULL,
    version INT NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    closed_at BIGINT NULL,
    INDEX idx_disputes_source_issue_id (source_issue_id),
    INDEX idx_disputes_advertisement_id (advertisement_id),
    INDEX idx_disputes_issuer_id (issuer_id),
    INDEX idx_disputes_respondent_id (respondent_id),
    INDEX idx_disputes_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS case_messages (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    case_kind VARCHAR(10) NOT NULL,
    case_id BIGINT UNSIGNED NOT NULL,
    author_id BIGINT UNSIGNED NULL,
    body TEXT NOT NULL,
    is_system BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL,
    INDEX idx_case_messages_case (case_kind, case_id),
    INDEX idx_case_messages_author_id (author_id),
    INDEX idx_case_messages_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS case_evidence (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    case_kind VARCHAR(10) NOT NULL,
    case_id BIGINT UNSIGNED NOT NULL,
    uploader_id BIGINT UNSIGNED NOT NULL,
    file_name VARCHAR(255) NOT NULL,
    file_size BIGINT NOT NULL,
    mime_type VARCHAR(100) NOT NULL,
    storage_key VARCHAR(512) NOT NULL,
    created_at BIGINT NOT NULL,
    INDEX idx_case_evidence_case (case_kind, case_id),
    INDEX idx_case_evidence_uploader_id (uploader_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
}

// generateCaseTablesDownMigration generates the down migration for the case tables
func (g *Generator) generateCaseTablesDownMigration() string {
	return `-- Rollback Migration: Create case tables
-- Created: Initial migration rollback
-- Description: Drop the case tables

DROP TABLE IF EXISTS case_evidence;
DROP TABLE IF EXISTS case_messages;
DROP TABLE IF EXISTS disputes;
DROP TABLE IF EXISTS issues;
DROP TABLE IF EXISTS advertisements;
`
}
