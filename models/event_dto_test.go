package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDTORoundTrip(t *testing.T) {
	date := time.Date(2026, 3, 14, 9, 30, 0, 500*int(time.Millisecond), time.UTC)
	original := &Event{
		ID:          1,
		Title:       "Launch",
		Description: "Product launch",
		Date:        &date,
		Duration:    90,
		Cost:        1000,
		Attendees:   StringList{"a@x.com", "b@x.com"},
		Category:    CategoryEvent,
		Color:       "red",
		Active:      true,
	}

	dto := EventToDTO(original)
	assert.Equal(t, "2026-03-14T09:30:00.500Z", dto.Date)

	back, err := DTOToEvent(dto)
	require.NoError(t, err)

	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.Title, back.Title)
	assert.Equal(t, original.Description, back.Description)
	assert.Equal(t, original.Duration, back.Duration)
	assert.Equal(t, original.Cost, back.Cost)
	assert.Equal(t, original.Attendees, back.Attendees)
	assert.Equal(t, original.Category, back.Category)
	assert.Equal(t, original.Color, back.Color)
	assert.Equal(t, original.Active, back.Active)
	require.NotNil(t, back.Date)
	assert.True(t, original.Date.Equal(*back.Date), "date survives to layout precision")
}

func TestDTOToEvent_NoDate(t *testing.T) {
	back, err := DTOToEvent(EventDTO{Title: "No date"})
	require.NoError(t, err)
	assert.Nil(t, back.Date)
}

func TestDTOToEvent_BadDate(t *testing.T) {
	_, err := DTOToEvent(EventDTO{Date: "14/03/2026"})
	assert.Error(t, err)
}

func TestStringListScanValue(t *testing.T) {
	list := StringList{"a@x.com", "b@x.com"}
	v, err := list.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, list, scanned)

	var empty StringList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
