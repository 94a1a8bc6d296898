package models

// CaseMessageModel stores one thread entry. The (case_kind, case_id)
// pair points at either an issue or a dispute; author is null for
// system messages.
type CaseMessageModel struct {
	ID        uint   `gorm:"primaryKey"`
	CaseKind  string `gorm:"size:10;not null;index:idx_case_messages_case"`
	CaseID    uint   `gorm:"not null;index:idx_case_messages_case"`
	AuthorID  *uint  `gorm:"index"`
	Body      string `gorm:"type:text;not null"`
	IsSystem  bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CaseMessageModel) TableName() string {
	return "case_messages"
}

// CaseEvidenceModel stores attachment metadata; the file bytes live in
// external storage under StorageKey.
type CaseEvidenceModel struct {
	ID         uint   `gorm:"primaryKey"`
	CaseKind   string `gorm:"size:10;not null;index:idx_case_evidence_case"`
	CaseID     uint   `gorm:"not null;index:idx_case_evidence_case"`
	UploaderID uint   `gorm:"not null;index"`
	FileName   string `gorm:"size:255;not null"`
	FileSize   int64  `gorm:"not null"`
	MimeType   string `gorm:"size:100;not null"`
	StorageKey string `gorm:"size:512;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CaseEvidenceModel) TableName() string {
	return "case_evidence"
}
