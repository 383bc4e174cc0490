package domain

import "context"

// ServicePort is the users service contract other modules bind against
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Profile, error)
	Get(ctx context.Context, id int64) (Profile, error)
	GetByNickname(ctx context.Context, nickname string) (Profile, error)
	List(ctx context.Context, offset, limit int) ([]Profile, error)
	Update(ctx context.Context, id int64, in UpdateInput) (Profile, error)
	Deactivate(ctx context.Context, id int64) error
	Search(ctx context.Context, in SearchInput) ([]Profile, error)

	// CandidatePool returns active, consent-granted profiles excluding the
	// given id, ordered by id
	CandidatePool(ctx context.Context, excludeID int64, offset, limit int) ([]Profile, error)
}
