package models

// Organizer represents an event host account.
// Timestamps are stored as epoch seconds.
type Organizer struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	OrganizerName string `gorm:"size:64;uniqueIndex;not null" json:"organizer_name"`
	Email         string `gorm:"size:128;not null" json:"email"`
	Contact       string `gorm:"size:16" json:"contact"`
	Password      string `gorm:"size:255;not null" json:"-"`
	Name          string `gorm:"size:64" json:"name"`
	CreatedAt     int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     int64  `gorm:"autoUpdateTime" json:"updated_at"`
}
