package models

import "time"

// Contact submission status values.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ValidContactStatus reports whether s is one of the allowed status values.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// ContactSubmission is a message left through the public contact form.
// Status is the only field that may change after creation.
type ContactSubmission struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Subject   string    `json:"subject" gorm:"type:varchar(255)" validate:"required,max=255"`
	Message   string    `json:"message" gorm:"type:text" validate:"required"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:new"`
	CreatedAt time.Time `json:"createdAt"`
}
