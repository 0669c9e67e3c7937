package validators

import (
	"regexp"
	"strings"
	"time"
)

// FieldError is one validation failure, reported per field the way
// the site's client renders them.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

var (
	emailRE  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	time24RE = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

func IsEmail(s string) bool {
	return emailRE.MatchString(s)
}

// IsISODate accepts YYYY-MM-DD calendar dates only.
func IsISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsTime24h accepts HH:MM on the 24-hour clock.
func IsTime24h(s string) bool {
	return time24RE.MatchString(s)
}

func MinLen(s string, n int) bool {
	return len(strings.TrimSpace(s)) >= n
}

func NotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
