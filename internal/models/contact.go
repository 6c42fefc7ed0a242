package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Contact represents a contact record in the database
type Contact struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	FirstName   string    `json:"first_name" db:"first_name"`     // First name
	LastName    string    `json:"last_name" db:"last_name"`       // Last name
	Email       string    `json:"email" db:"email"`               // Unique email
	PhoneNumber string    `json:"phone_number" db:"phone_number"` // Phone number
	Birthday    Date      `json:"birthday" db:"birthday"`         // Calendar date
	Other       string    `json:"other" db:"other"`               // Free text note
	UserID      *int64    `json:"-" db:"user_id"`                 // Owner, nullable
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// ContactInput represents the JSON body for creating or updating a contact
// swagger:model ContactInput
type ContactInput struct {
	// First name
	// required: true
	// example: John
	FirstName string `json:"first_name" validate:"required,max=50"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"last_name" validate:"required,max=50"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=150"`

	// Phone number
	// required: true
	// example: +380501234567
	PhoneNumber string `json:"phone_number" validate:"required,max=150"`

	// Birthday
	// required: true
	// example: 1990-05-17
	Birthday Date `json:"birthday" validate:"required"`

	// Free text note
	// example: None
	Other string `json:"other" validate:"max=250"`
}

// DefaultOther is stored when a contact is created without a note.
const DefaultOther = "None"
