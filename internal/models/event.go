package models

// Event is owned by exactly one organizer. EventID is supplied by the
// client; EventDate is the epoch-second form of a d/m/Y input.
type Event struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrganizerName string  `gorm:"size:64;index;not null" json:"organizer_name"`
	EventID       int64   `gorm:"index;not null" json:"event_id"`
	Title         string  `gorm:"size:128;index;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Budget        float64 `json:"budget"`
	EventDate     int64   `json:"event_date"`
	CreatedAt     int64   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     int64   `gorm:"autoUpdateTime" json:"updated_at"`
}
