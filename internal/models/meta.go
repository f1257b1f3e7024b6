package models

// OrganizerMeta is an append-only audit row recording each signup and
// login. Rows are never updated or deleted.
type OrganizerMeta struct {
	PK            uint       `gorm:"primaryKey;column:pk" json:"pk"`
	OrganizerName string     `gorm:"size:64;index;not null" json:"organizer_name"`
	Reason        MetaReason `gorm:"size:16;default:signup" json:"reason"`
	IP            string     `gorm:"size:64" json:"ip"`
	Country       string     `gorm:"size:64" json:"country"`
	OS            string     `gorm:"size:64" json:"os"`
	CreatedAt     int64      `gorm:"autoCreateTime" json:"created_at"`
}
