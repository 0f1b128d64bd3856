// File: internal/profile/repository.go
package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"identity_kit_backend/internal/common"
)

// Repository defines the profile store operations. Create reports
// already-exists as a non-error outcome; retry policy, if any, belongs to
// the caller.
type Repository interface {
	// Create inserts the profile if no record with the same key exists.
	// Returns false when a profile for the user is already present.
	Create(ctx context.Context, p *Profile) (bool, error)
	// Get reads the profile for a user ID. Returns common.ErrNotFound when
	// absent.
	Get(ctx context.Context, userID string) (*Profile, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM profile repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create performs the conditional write. The store resolves concurrent
// duplicate creates: ON CONFLICT DO NOTHING leaves exactly one winner, no
// application-level locking involved.
func (r *gormRepository) Create(ctx context.Context, p *Profile) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Get retrieves a profile by user ID.
func (r *gormRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND record_type = ?", userID, RecordTypeProfile).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithMessage("User profile not found")
		}
		return nil, err
	}
	return &p, nil
}
