package services

import (
	"log"

	"github.com/e-Xiua/admin-events-api/models"
	"github.com/e-Xiua/admin-events-api/repository"
)

// Notifier dispatches one notification command. Fire-and-forget from the
// service's point of view: errors are logged, never rolled back.
type Notifier interface {
	Send(command NotificationCommand) error
}

// EventService orchestrates event operations over the store and the
// notification dispatcher. All decision logic lives in Reconcile; this type
// only sequences locate, persist and dispatch.
type EventService struct {
	Events   repository.EventRepository
	Notifier Notifier
}

func NewEventService(events repository.EventRepository, notifier Notifier) *EventService {
	return &EventService{Events: events, Notifier: notifier}
}

func (s *EventService) GetAll() ([]models.Event, error) {
	return s.Events.FindAll()
}

// GetByID returns the event, or ErrEventNotFound when no record exists.
func (s *EventService) GetByID(id uint) (*models.Event, error) {
	event, err := s.Events.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Create persists a new event. Every new record starts active, whatever the
// caller supplied.
func (s *EventService) Create(event *models.Event) (*models.Event, error) {
	event.Active = true
	return s.Events.Save(event)
}

// Replace saves the whole record as supplied, including active, and never
// notifies. Only the partial-update path produces notifications.
func (s *EventService) Replace(event *models.Event) (*models.Event, error) {
	return s.Events.Save(event)
}

func (s *EventService) Delete(id uint) error {
	return s.Events.DeleteByID(id)
}

// PatchEvent applies a partial update: locate the record, reconcile the
// patch against it, persist, then dispatch the notification commands. A
// validation failure leaves the stored record untouched and sends nothing.
func (s *EventService) PatchEvent(id uint, patch Patch) (*models.Event, error) {
	event, err := s.Events.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	updated, commands, err := Reconcile(event, patch)
	if err != nil {
		return nil, err
	}

	saved, err := s.Events.Save(updated)
	if err != nil {
		return nil, err
	}

	for _, command := range commands {
		if err := s.Notifier.Send(command); err != nil {
			log.Printf("notification %s to %s failed: %v", command.ID, command.Recipient, err)
		}
	}
	return saved, nil
}
