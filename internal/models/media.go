package models

import (
	"fmt"
	"strconv"
	"time"
)

// Media represents an uploaded file. Records are immutable after creation
// except for deletion. Size is stored as text for wire compatibility; use
// ParseSize to validate it at the boundary.
type Media struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename     string    `json:"filename" gorm:"uniqueIndex;type:varchar(255);not null"`
	OriginalName string    `json:"originalName" gorm:"type:varchar(255)"`
	MimeType     string    `json:"mimeType" gorm:"type:varchar(100)"`
	Size         string    `json:"size" gorm:"type:varchar(20)"`
	URL          string    `json:"url" gorm:"type:varchar(512)"`
	AltText      *string   `json:"altText,omitempty" gorm:"type:varchar(255)"`
	UploadedBy   *string   `json:"uploadedBy,omitempty" gorm:"type:varchar(64)"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName pins the table name; GORM's pluralizer mangles "media".
func (Media) TableName() string { return "media" }

// ParseSize parses the string-encoded byte count, rejecting anything that is
// not a non-negative integer.
func ParseSize(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("size %q is not a valid byte count: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("size %d is negative", n)
	}
	return n, nil
}
