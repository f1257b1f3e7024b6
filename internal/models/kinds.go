package models

// RecordKind selects which table a data-access call targets.
type RecordKind string

const (
	KindEvent            RecordKind = "event"
	KindRSVP             RecordKind = "rsvp"
	KindOrganizer        RecordKind = "organizer"
	KindOrganizerDetails RecordKind = "organizer_details"
	KindOrganizerSession RecordKind = "organizer_session"
	KindOrganizerMeta    RecordKind = "organizer_meta"
)

// RSVPStatus is an attendee's answer to an event.
type RSVPStatus string

const (
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

func (s RSVPStatus) Valid() bool {
	return s == RSVPAccepted || s == RSVPDeclined
}

// MetaReason marks why an audit row was written.
type MetaReason string

const (
	ReasonSignup MetaReason = "signup"
	ReasonLogin  MetaReason = "login"
)
