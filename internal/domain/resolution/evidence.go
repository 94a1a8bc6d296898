package resolution

import (
	"fmt"
	"time"

	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/biztime"
)

// MaxEvidenceSizeBytes caps a single attachment. Storage itself is
// external; the engine keeps only metadata.
const MaxEvidenceSizeBytes = 10 << 20

// Evidence is a metadata record for a file a participant attached to a
// case. The bytes live in external storage; the engine records who
// attached what, and where it lives.
type Evidence struct {
	id         uint
	caseKind   vo.CaseKind
	caseID     uint
	uploaderID uint
	fileName   string
	fileSize   int64
	mimeType   string
	storageKey string
	createdAt  time.Time
}

// NewEvidence creates an evidence record for a stored file.
func NewEvidence(caseKind vo.CaseKind, caseID, uploaderID uint, fileName string, fileSize int64, mimeType, storageKey string) (*Evidence, error) {
	if !caseKind.IsValid() {
		return nil, fmt.Errorf("invalid case kind: %s", caseKind)
	}
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if fileSize <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}
	if fileSize > MaxEvidenceSizeBytes {
		return nil, fmt.Errorf("file size exceeds maximum of %d bytes", MaxEvidenceSizeBytes)
	}
	if mimeType == "" {
		return nil, fmt.Errorf("mime type is required")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	return &Evidence{
		caseKind:   caseKind,
		caseID:     caseID,
		uploaderID: uploaderID,
		fileName:   fileName,
		fileSize:   fileSize,
		mimeType:   mimeType,
		storageKey: storageKey,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructEvidence rebuilds an evidence record from persistence
// without validation.
func ReconstructEvidence(id uint, caseKind vo.CaseKind, caseID, uploaderID uint, fileName string, fileSize int64, mimeType, storageKey string, createdAt time.Time) *Evidence {
	return &Evidence{
		id:         id,
		caseKind:   caseKind,
		caseID:     caseID,
		uploaderID: uploaderID,
		fileName:   fileName,
		fileSize:   fileSize,
		mimeType:   mimeType,
		storageKey: storageKey,
		createdAt:  createdAt,
	}
}

func (e *Evidence) ID() uint              { return e.id }
func (e *Evidence) CaseKind() vo.CaseKind { return e.caseKind }
func (e *Evidence) CaseID() uint          { return e.caseID }
func (e *Evidence) UploaderID() uint      { return e.uploaderID }
func (e *Evidence) FileName() string      { return e.fileName }
func (e *Evidence) FileSize() int64       { return e.fileSize }
func (e *Evidence) MimeType() string      { return e.mimeType }
func (e *Evidence) StorageKey() string    { return e.storageKey }
func (e *Evidence) CreatedAt() time.Time  { return e.createdAt }

// SetID assigns the database-generated ID after the first save.
func (e *Evidence) SetID(id uint) {
	e.id = id
}
