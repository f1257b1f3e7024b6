package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var alnumRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidateOrganizerName checks the account name rule: non-empty,
// alphanumeric characters only.
func ValidateOrganizerName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("organizer name is empty")
	}
	if !alnumRe.MatchString(name) {
		return fmt.Errorf("organizer name must be alphanumeric")
	}
	return nil
}

// ParseEventDate parses a d/m/Y calendar date into epoch seconds.
func ParseEventDate(dateStr string) (int64, error) {
	if dateStr == "" {
		return 0, fmt.Errorf("event date is empty")
	}
	t, err := time.Parse("2/1/2006", dateStr)
	if err != nil {
		return 0, fmt.Errorf("invalid event date format: %w", err)
	}
	return t.Unix(), nil
}

// NormalizeContact keeps only digits and truncates to 10, matching how
// contact numbers are stored.
func NormalizeContact(contact string) string {
	var b strings.Builder
	for _, ch := range contact {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
		if b.Len() == 10 {
			break
		}
	}
	return b.String()
}
