package models

// RSVP is an attendee's accept/decline response to an event. At most
// one per (event_id, username) pair, enforced by an application-level
// existence check before insert, not by a storage constraint.
type RSVP struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	EventID   int64      `gorm:"index;not null" json:"event_id"`
	Username  string     `gorm:"size:64;index;not null" json:"username"`
	Title     string     `gorm:"size:128" json:"title"`
	Status    RSVPStatus `gorm:"size:16;default:declined" json:"status"`
	CreatedAt int64      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64      `gorm:"autoUpdateTime" json:"updated_at"`
}
