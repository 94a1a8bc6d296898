package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vendora/internal/domain/advertisement"
	"vendora/internal/infrastructure/persistence/mappers"
	"vendora/internal/infrastructure/persistence/models"
	"vendora/internal/shared/db"
	apperrors "vendora/internal/shared/errors"
)

type AdvertisementRepository struct {
	db     *gorm.DB
	mapper mappers.AdvertisementMapper
}

func NewAdvertisementRepository(gdb *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{
		db:     gdb,
		mapper: mappers.NewAdvertisementMapper(),
	}
}

func (r *AdvertisementRepository) Save(ctx context.Context, ad *advertisement.Advertisement) error {
	model := r.mapper.ToModel(ad)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save advertisement: %w", err)
	}

	ad.SetID(model.ID)
	return nil
}

func (r *AdvertisementRepository) GetByID(ctx context.Context, adID uint) (*advertisement.Advertisement, error) {
	var model models.AdvertisementModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, adID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("advertisement not found")
		}
		return nil, fmt.Errorf("failed to find advertisement: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}
