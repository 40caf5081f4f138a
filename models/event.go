package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Category is the closed set of event kinds.
type Category string

const (
	CategoryEvent   Category = "EVENT"
	CategoryMeeting Category = "MEETING"
)

// TimestampLayout is the single accepted date format for the external
// representation and for patch values targeting the date field.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	Date        *time.Time `json:"date"`
	Duration    int64      `json:"duration"` // minutes
	Cost        int64      `json:"cost"`     // smallest currency unit
	Attendees   StringList `gorm:"type:text" json:"attendees"`
	Category    Category   `gorm:"size:20" json:"category"`
	Color       string     `gorm:"size:20" json:"color"`
	Active      bool       `json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StringList stores an ordered list of contact addresses as a JSON text column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(s))
	default:
		return errors.New("unsupported attendees column type")
	}
}
