package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// DueDateLayout is the only accepted due date format.
const DueDateLayout = "2006-01-02"

// DueDate is an optional due date kept as the text the user supplied.
// The zero value means "no due date" and is persisted as null.
type DueDate struct {
	value string
	set   bool
}

// NoDueDate returns an unset due date.
func NoDueDate() DueDate {
	return DueDate{}
}

// DueOn returns a due date holding the given text verbatim.
func DueOn(s string) DueDate {
	return DueDate{value: s, set: true}
}

// Get returns the stored text and whether a due date is set.
func (d DueDate) Get() (string, bool) {
	return d.value, d.set
}

// IsSet returns true if a due date is present.
func (d DueDate) IsSet() bool {
	return d.set
}

// String returns the stored text, or empty when unset.
func (d DueDate) String() string {
	return d.value
}

// IsWellFormed reports whether the text is shaped YYYY-MM-DD (digits only).
// It does not check that the date exists on the calendar.
func (d DueDate) IsWellFormed() bool {
	if len(d.value) != len(DueDateLayout) {
		return false
	}
	for i := 0; i < len(d.value); i++ {
		c := d.value[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Classify compares the due date to the calendar date of now.
// It returns DueNone when unset or when the text is not a real date.
func (d DueDate) Classify(now time.Time) DueStatus {
	if !d.set {
		return DueNone
	}
	due, err := time.ParseInLocation(DueDateLayout, d.value, now.Location())
	if err != nil {
		return DueNone
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())

	switch {
	case due.Before(today):
		return DueOverdue
	case due.Equal(today):
		return DueToday
	default:
		return DueUpcoming
	}
}

// MarshalJSON encodes the due date as a string, or null when unset.
func (d DueDate) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}

// UnmarshalJSON decodes a string or null.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = DueDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = DueOn(s)
	return nil
}

// DueStatus classifies a due date relative to today.
type DueStatus int

// Due date classifications.
const (
	// DueNone means no classification: no due date, or one that does not parse.
	DueNone DueStatus = iota
	// DueOverdue means the due date is before today.
	DueOverdue
	// DueToday means the due date is today.
	DueToday
	// DueUpcoming means the due date is after today.
	DueUpcoming
)

// String returns the string representation.
func (s DueStatus) String() string {
	switch s {
	case DueOverdue:
		return "overdue"
	case DueToday:
		return "due-today"
	case DueUpcoming:
		return "upcoming"
	default:
		return ""
	}
}
