package models

// DisputeModel is the persistence shape of a second-stage case.
type DisputeModel struct {
	ID                  uint    `gorm:"primaryKey"`
	DisputeNumber       string  `gorm:"uniqueIndex;size:50;not null"`
	SourceIssueID       *uint   `gorm:"index"`
	AdvertisementID     uint    `gorm:"not null;index"`
	IssuerID            uint    `gorm:"not null;index"`
	RespondentID        uint    `gorm:"not null;index"`
	Category            string  `gorm:"size:100;not null"`
	Description         string  `gorm:"type:text;not null"`
	DisputeDemand       string  `gorm:"type:text;not null"`
	Status              string  `gorm:"size:30;not null;index"`
	SellerDecision      *string `gorm:"size:20"`
	SellerResponseText  *string `gorm:"type:text"`
	RespondedAt         *int64
	NegotiationDeadline *int64
	Version             int   `gorm:"not null;default:1"`
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt            *int64
}

func (DisputeModel) TableName() string {
	return "disputes"
}
