package repository

import (
	"context"
	"event-registration-backend/cmd/event-registration/model"

	"gorm.io/gorm"
)

type RegistrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) *RegistrationRepo {
	return &RegistrationRepo{
		db: db,
	}
}

// ExistsRegistration reports whether a registration for this email and
// event date is already on file.
func (r *RegistrationRepo) ExistsRegistration(ctx context.Context, email string, eventDate string) (bool, error) {

	var count int64

	result := r.db.
		WithContext(ctx).
		Model(&model.Registration{}).
		Where("email = ? AND event_date = ?", email, eventDate).
		Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *RegistrationRepo) CreateRegistration(ctx context.Context, reg model.Registration) error {

	result := r.db.
		WithContext(ctx).
		Model(&reg).
		Debug().
		Create(reg)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// ListRegistrations returns every registration for the event date, newest
// first. An empty eventConfigID widens the query to all events that date.
func (r *RegistrationRepo) ListRegistrations(ctx context.Context, eventDate string, eventConfigID string) ([]model.Registration, error) {

	registrations := []model.Registration{}

	query := r.db.
		WithContext(ctx).
		Model(&model.Registration{}).
		Where("event_date = ?", eventDate)

	if eventConfigID != "" {
		query = query.Where("event_config_id = ?", eventConfigID)
	}

	result := query.
		Order("created DESC").
		Find(&registrations)

	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}
