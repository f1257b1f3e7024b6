package models

// OrganizerSession binds one authenticated client to an organizer.
// PK is the opaque session token carried in the cookie. ExpiredAt is
// fixed at creation; lookups never extend it.
type OrganizerSession struct {
	PK            string `gorm:"primaryKey;size:64;column:pk" json:"pk"`
	OrganizerName string `gorm:"size:64;index;not null" json:"organizer_name"`
	IP            string `gorm:"size:64" json:"ip"`
	Browser       string `gorm:"size:128" json:"browser"`
	OS            string `gorm:"size:64" json:"os"`
	CreatedAt     int64  `gorm:"autoCreateTime" json:"created_at"`
	ExpiredAt     int64  `gorm:"index;not null" json:"expired_at"`
}
