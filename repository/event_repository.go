package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/e-Xiua/admin-events-api/models"
)

// EventRepository is the store boundary for events. FindByID returns
// (nil, nil) when no record exists at the identifier; every other error is
// an infrastructure failure.
type EventRepository interface {
	FindAll() ([]models.Event, error)
	FindByID(id uint) (*models.Event, error)
	Save(event *models.Event) (*models.Event, error)
	DeleteByID(id uint) error
}

type gormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository wraps a gorm handle in the EventRepository contract.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) FindAll() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *gormEventRepository) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) Save(event *models.Event) (*models.Event, error) {
	if err := r.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *gormEventRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}
