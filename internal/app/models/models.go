package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AllocationStatus is the lifecycle state of a sponsorship allocation.
// The column is free text; these are the values the service knows about.
type AllocationStatus string

const (
	StatusActive     AllocationStatus = "Active"
	StatusCompleted  AllocationStatus = "Completed"
	StatusSuspended  AllocationStatus = "Suspended"
	StatusTerminated AllocationStatus = "Terminated"
)

// DefaultAllocationStatus is applied when a new allocation omits its status
const DefaultAllocationStatus = StatusActive

// DateLayout is the wire and storage format of every calendar date
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, rendered as YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in UTC
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
