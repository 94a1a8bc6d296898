package advertisement

import (
	"fmt"
	"time"

	"vendora/internal/shared/biztime"
)

// Listing statuses. The resolution engine only reads advertisements;
// the full listing lifecycle lives elsewhere.
const (
	StatusActive  = "active"
	StatusSold    = "sold"
	StatusDeleted = "deleted"
)

// Advertisement is the marketplace listing a case is raised against.
// Within the resolution engine it is a read model: cases reference it
// for counterparty and age checks, never mutate it.
type Advertisement struct {
	id         uint
	title      string
	priceCents int64
	sellerID   uint
	buyerID    *uint
	status     string
	createdAt  time.Time
}

func NewAdvertisement(title string, priceCents int64, sellerID uint) (*Advertisement, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}

	return &Advertisement{
		title:      title,
		priceCents: priceCents,
		sellerID:   sellerID,
		status:     StatusActive,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructAdvertisement rebuilds a listing from persistence without
// validation.
func ReconstructAdvertisement(id uint, title string, priceCents int64, sellerID uint, buyerID *uint, status string, createdAt time.Time) *Advertisement {
	return &Advertisement{
		id:         id,
		title:      title,
		priceCents: priceCents,
		sellerID:   sellerID,
		buyerID:    buyerID,
		status:     status,
		createdAt:  createdAt,
	}
}

func (a *Advertisement) ID() uint             { return a.id }
func (a *Advertisement) Title() string        { return a.title }
func (a *Advertisement) PriceCents() int64    { return a.priceCents }
func (a *Advertisement) SellerID() uint       { return a.sellerID }
func (a *Advertisement) BuyerID() *uint       { return a.buyerID }
func (a *Advertisement) Status() string       { return a.status }
func (a *Advertisement) CreatedAt() time.Time { return a.createdAt }

// SetID assigns the database-generated ID after the first save.
func (a *Advertisement) SetID(id uint) {
	a.id = id
}

// IsCounterparty reports whether the user is the seller or the
// recorded buyer of this listing. Only counterparties may open cases
// against it.
func (a *Advertisement) IsCounterparty(userID uint) bool {
	if userID == a.sellerID {
		return true
	}
	return a.buyerID != nil && *a.buyerID == userID
}

// CounterpartyOf returns the other side of the transaction for the
// given user, or 0 if the user is not a counterparty or no buyer is
// recorded.
func (a *Advertisement) CounterpartyOf(userID uint) uint {
	if userID == a.sellerID {
		if a.buyerID == nil {
			return 0
		}
		return *a.buyerID
	}
	if a.buyerID != nil && *a.buyerID == userID {
		return a.sellerID
	}
	return 0
}

// Age is the listing's age at the given instant.
func (a *Advertisement) Age(now time.Time) time.Duration {
	return now.Sub(a.createdAt)
}
