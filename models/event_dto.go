package models

import "time"

// EventDTO is the external representation of an Event. Dates travel as
// strings in TimestampLayout; the store-side timestamps never leave the API.
type EventDTO struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date,omitempty"`
	Duration    int64    `json:"duration"`
	Cost        int64    `json:"cost"`
	Attendees   []string `json:"attendees"`
	Category    Category `json:"category"`
	Color       string   `json:"color"`
	Active      bool     `json:"active"`
}

// EventToDTO converts a stored record to its external representation.
func EventToDTO(e *Event) EventDTO {
	dto := EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		Cost:        e.Cost,
		Attendees:   append([]string(nil), e.Attendees...),
		Category:    e.Category,
		Color:       e.Color,
		Active:      e.Active,
	}
	if e.Date != nil {
		dto.Date = e.Date.UTC().Format(TimestampLayout)
	}
	return dto
}

// DTOToEvent converts an external representation into a record. The date
// string must match TimestampLayout; an empty string maps to no date.
func DTOToEvent(dto EventDTO) (*Event, error) {
	e := &Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Duration:    dto.Duration,
		Cost:        dto.Cost,
		Attendees:   StringList(dto.Attendees),
		Category:    dto.Category,
		Color:       dto.Color,
		Active:      dto.Active,
	}
	if dto.Date != "" {
		t, err := time.Parse(TimestampLayout, dto.Date)
		if err != nil {
			return nil, err
		}
		e.Date = &t
	}
	return e, nil
}
