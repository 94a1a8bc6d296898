package models

// AdvertisementModel is the listing read model cases reference.
type AdvertisementModel struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:200;not null"`
	PriceCents int64  `gorm:"not null"`
	SellerID   uint   `gorm:"not null;index"`
	BuyerID    *uint  `gorm:"index"`
	Status     string `gorm:"size:20;not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AdvertisementModel) TableName() string {
	return "advertisements"
}
