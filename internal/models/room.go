package models

import "encoding/json"

type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Capacity int    `json:"capacity"`

	Meetings []Meeting `gorm:"many2many:participants" json:"meetings"`
}

func (r Room) MarshalJSON() ([]byte, error) {
	type alias Room
	out := alias(r)
	if out.Meetings == nil {
		out.Meetings = []Meeting{}
	}
	return json.Marshal(out)
}
