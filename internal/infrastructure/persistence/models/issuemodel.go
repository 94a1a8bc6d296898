package models

// IssueModel is the persistence shape of a first-stage case.
// Timestamps are stored as Unix milliseconds. The version column backs
// optimistic locking: every update is predicated on it and bumps it.
type IssueModel struct {
	ID                 uint    `gorm:"primaryKey"`
	IssueNumber        string  `gorm:"uniqueIndex;size:50;not null"`
	AdvertisementID    uint    `gorm:"not null;index"`
	IssuerID           uint    `gorm:"not null;index"`
	RespondentID       uint    `gorm:"not null;index"`
	Description        string  `gorm:"type:text;not null"`
	BuyerRequest       string  `gorm:"type:text;not null"`
	Status             string  `gorm:"size:30;not null;index"`
	SellerDecision     *string `gorm:"size:20"`
	SellerResponseText *string `gorm:"type:text"`
	RespondedAt        *int64
	Version            int   `gorm:"not null;default:1"`
	CreatedAt          int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64 `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt           *int64

	// No foreign key constraints; relationships are enforced by the
	// application.
}

func (IssueModel) TableName() string {
	return "issues"
}
