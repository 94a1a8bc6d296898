package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
)

// CaseNumberGenerator issues sequential case numbers per kind per day,
// e.g. ISS-20260831-0001. Sequences are seeded from the database on
// first use so numbering survives restarts.
type CaseNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewCaseNumberGenerator(db *gorm.DB) *CaseNumberGenerator {
	return &CaseNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *CaseNumberGenerator) Generate(ctx context.Context, kind vo.CaseKind) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().UTC().Format("20060102")
	prefix := fmt.Sprintf("%s-%s-", resolution.NumberPrefix(kind), dateStr)

	seq, err := g.getNextSequence(ctx, kind, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (g *CaseNumberGenerator) getNextSequence(ctx context.Context, kind vo.CaseKind, prefix string) (int, error) {
	if seq, ok := g.cache[prefix]; ok {
		g.cache[prefix] = seq + 1
		return seq + 1, nil
	}

	table, column := "issues", "issue_number"
	if kind == vo.CaseKindDispute {
		table, column = "disputes", "dispute_number"
	}

	var maxNumber string
	err := g.db.WithContext(ctx).
		Table(table).
		Select(fmt.Sprintf("MAX(%s)", column)).
		Where(column+" LIKE ?", prefix+"%").
		Scan(&maxNumber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max case number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		fmt.Sscanf(maxNumber, prefix+"%d", &seq)
		seq++
	}

	g.cache[prefix] = seq
	return seq, nil
}
