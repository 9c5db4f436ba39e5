package models

import "time"

// User represents an administrator account. The ID is the opaque identity
// asserted by the auth layer (the `sub` claim) and is never generated here.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Email        *string   `json:"email,omitempty" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,email"`
	FirstName    string    `json:"firstName,omitempty" gorm:"type:varchar(100)"`
	LastName     string    `json:"lastName,omitempty" gorm:"type:varchar(100)"`
	ProfileImage string    `json:"profileImage,omitempty" gorm:"type:varchar(512)"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
