package models

// OrganizerDetails holds secondary contact details for an organizer.
type OrganizerDetails struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	OrganizerName string `gorm:"size:64;index;not null" json:"organizer_name"`
	Email         string `gorm:"size:128" json:"email"`
	Contact       string `gorm:"size:16" json:"contact"`
}
