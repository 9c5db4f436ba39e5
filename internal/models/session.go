package models

import "time"

// Session is a server-side login session. Rows are written at login,
// checked on every authenticated request, and swept once expired.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Payload   string    `json:"payload" gorm:"type:text"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index"`
}
