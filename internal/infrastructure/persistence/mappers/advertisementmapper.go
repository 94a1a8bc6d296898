package mappers

import (
	"vendora/internal/domain/advertisement"
	"vendora/internal/infrastructure/persistence/models"
)

// AdvertisementMapper converts listings between domain and persistence
// shapes.
type AdvertisementMapper interface {
	ToModel(ad *advertisement.Advertisement) *models.AdvertisementModel
	ToDomain(model *models.AdvertisementModel) *advertisement.Advertisement
}

type AdvertisementMapperImpl struct{}

func NewAdvertisementMapper() AdvertisementMapper {
	return &AdvertisementMapperImpl{}
}

func (m *AdvertisementMapperImpl) ToModel(ad *advertisement.Advertisement) *models.AdvertisementModel {
	return &models.AdvertisementModel{
		ID:         ad.ID(),
		Title:      ad.Title(),
		PriceCents: ad.PriceCents(),
		SellerID:   ad.SellerID(),
		BuyerID:    ad.BuyerID(),
		Status:     ad.Status(),
		CreatedAt:  ad.CreatedAt().UnixMilli(),
	}
}

func (m *AdvertisementMapperImpl) ToDomain(model *models.AdvertisementModel) *advertisement.Advertisement {
	return advertisement.ReconstructAdvertisement(
		model.ID, model.Title, model.PriceCents,
		model.SellerID, model.BuyerID, model.Status,
		millisToTime(model.CreatedAt),
	)
}
