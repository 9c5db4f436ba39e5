package models

import "time"

// Project status values. Only these two are valid.
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusPublished = "published"
)

// ValidProjectStatus reports whether s is one of the allowed status values.
func ValidProjectStatus(s string) bool {
	return s == ProjectStatusDraft || s == ProjectStatusPublished
}

// Project represents a portfolio case study.
type Project struct {
	ID            int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;type:varchar(255);not null"`
	Description   string    `json:"description" gorm:"type:text" validate:"required"`
	Content       string    `json:"content" gorm:"type:text" validate:"required"`
	FeaturedImage *string   `json:"featuredImage,omitempty" gorm:"type:varchar(512)"`
	Category      string    `json:"category" gorm:"type:varchar(100)" validate:"required"`
	Tags          []string  `json:"tags" gorm:"serializer:json;type:text"`
	Status        string    `json:"status" gorm:"type:varchar(20);default:draft"`
	AuthorID      *string   `json:"authorId,omitempty" gorm:"type:varchar(64)"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProjectUpdate carries a partial update. Nil fields are left untouched;
// merge semantics are implemented by the storage layer.
type ProjectUpdate struct {
	Title         *string   `json:"title,omitempty"`
	Slug          *string   `json:"slug,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Content       *string   `json:"content,omitempty"`
	FeaturedImage *string   `json:"featuredImage,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Status        *string   `json:"status,omitempty"`
}
