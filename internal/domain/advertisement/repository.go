package advertisement

import "context"

type Repository interface {
	Save(ctx context.Context, ad *Advertisement) error
	GetByID(ctx context.Context, adID uint) (*Advertisement, error)
}
