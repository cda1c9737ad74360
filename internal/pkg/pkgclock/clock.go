package pkgclock

import (
	"strings"
	"time"
)

// Layout is the transaction timestamp format.
const Layout = "2006-01-02 15:04:05"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock reading the wall clock in a fixed location.
type System struct {
	loc *time.Location
}

// NewSystem returns a System clock for the IANA zone name tz. An empty name
// or "Local" uses the host zone.
func NewSystem(tz string) (*System, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || tz == "Local" {
		return &System{loc: time.Local}, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	return &System{loc: loc}, nil
}

// Now returns the current time in the clock's location.
func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Format renders t with Layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}
