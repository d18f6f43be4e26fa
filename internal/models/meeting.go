package models

import (
	"encoding/json"
	"time"
)

// TimeLayout is the wire format for meeting start times. Parsing with
// time.Parse is strict: out-of-range components like "33/22/2020 40:73"
// are rejected instead of being rolled over.
const TimeLayout = "02/01/2006 15:04"

type Meeting struct {
	ID       uint      `gorm:"primaryKey"`
	Title    string    `gorm:"not null"`
	Start    time.Time `gorm:"not null"`
	Duration int       `gorm:"not null"`

	Guests []User `gorm:"many2many:guests"`
}

// ParseStart converts a wire-format date/time into a time.Time.
func ParseStart(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

type meetingJSON struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	Duration int    `json:"duration"`
	Guests   []User `json:"guests"`
}

func (m Meeting) MarshalJSON() ([]byte, error) {
	guests := m.Guests
	if guests == nil {
		guests = []User{}
	}
	return json.Marshal(meetingJSON{
		ID:       m.ID,
		Title:    m.Title,
		Start:    m.Start.Format(TimeLayout),
		Duration: m.Duration,
		Guests:   guests,
	})
}

func (m *Meeting) UnmarshalJSON(data []byte) error {
	var raw meetingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseStart(raw.Start)
	if err != nil {
		return err
	}
	m.ID = raw.ID
	m.Title = raw.Title
	m.Start = start
	m.Duration = raw.Duration
	m.Guests = raw.Guests
	return nil
}
