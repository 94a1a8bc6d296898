package migration

import (
	"vendora/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AdvertisementModel{},
		&models.IssueModel{},
		&models.DisputeModel{},
		&models.CaseMessageModel{},
		&models.CaseEvidenceModel{},
	}
}
