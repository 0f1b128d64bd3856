// File: internal/profile/model.go
package profile

import (
	"time"
)

const (
	// RecordTypeProfile is the fixed discriminator for profile records. The
	// composite key leaves room for future record kinds under the same user.
	RecordTypeProfile = "PROFILE"

	// StatusActive is the status every profile gets at creation. No
	// transitions are defined.
	StatusActive = "ACTIVE"
)

// Profile is this service's own per-user record, created once the identity
// provider confirms the user. Email mirrors the provider's record at
// confirmation time and is not re-synchronized afterward.
type Profile struct {
	UserID     string    `gorm:"type:varchar(128);primaryKey" json:"userId"`
	RecordType string    `gorm:"type:varchar(32);primaryKey" json:"recordType"`
	Email      string    `gorm:"type:varchar(255);not null;index:idx_profiles_email" json:"email"`
	Status     string    `gorm:"type:varchar(32);not null" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// New builds a profile record in its creation state, both timestamps set to
// the same instant.
func New(userID, email string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		UserID:     userID,
		RecordType: RecordTypeProfile,
		Email:      email,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
