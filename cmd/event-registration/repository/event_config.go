package repository

import (
	"context"
	"event-registration-backend/cmd/event-registration/model"

	"gorm.io/gorm"
)

type EventConfigRepo struct {
	db *gorm.DB
}

func NewEventConfigRepo(db *gorm.DB) *EventConfigRepo {
	return &EventConfigRepo{
		db: db,
	}
}

// idName carries the two columns the select widgets need.
type idName struct {
	ID        string `gorm:"column:id"`
	EventName string `gorm:"column:event_name"`
}

// ListOpenCategories returns the distinct categories among events whose
// registration window contains today.
func (r *EventConfigRepo) ListOpenCategories(ctx context.Context, today string) ([]string, error) {

	categories := []string{}

	result := r.db.
		WithContext(ctx).
		Model(&model.EventConfig{}).
		Where("registration_start_date <= ? AND registration_end_date >= ?", today, today).
		Distinct().
		Pluck("event_category", &categories)

	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (r *EventConfigRepo) ListOpenDatesForCategory(ctx context.Context, category string, today string) ([]string, error) {

	dates := []string{}

	result := r.db.
		WithContext(ctx).
		Model(&model.EventConfig{}).
		Where("event_category = ?", category).
		Where("registration_start_date <= ? AND registration_end_date >= ?", today, today).
		Distinct().
		Pluck("event_date", &dates)

	if result.Error != nil {
		return nil, result.Error
	}

	return dates, nil
}

// ListOpenEventNames maps event config id to event name for open events
// matching both category and date.
func (r *EventConfigRepo) ListOpenEventNames(ctx context.Context, category string, date string, today string) (map[string]string, error) {

	var rows []idName

	result := r.db.
		WithContext(ctx).
		Model(&model.EventConfig{}).
		Select("id", "event_name").
		Where("event_category = ? AND event_date = ?", category, date).
		Where("registration_start_date <= ? AND registration_end_date >= ?", today, today).
		Find(&rows)

	if result.Error != nil {
		return nil, result.Error
	}

	names := map[string]string{}
	for _, row := range rows {
		names[row.ID] = row.EventName
	}

	return names, nil
}

// ListAllEventDates returns every distinct event date, open or not,
// newest first.
func (r *EventConfigRepo) ListAllEventDates(ctx context.Context) ([]string, error) {

	dates := []string{}

	result := r.db.
		WithContext(ctx).
		Model(&model.EventConfig{}).
		Distinct().
		Order("event_date DESC").
		Pluck("event_date", &dates)

	if result.Error != nil {
		return nil, result.Error
	}

	return dates, nil
}

func (r *EventConfigRepo) ListEventNamesForDate(ctx context.Context, date string) (map[string]string, error) {

	var rows []idName

	result := r.db.
		WithContext(ctx).
		Model(&model.EventConfig{}).
		Select("id", "event_name").
		Where("event_date = ?", date).
		Find(&rows)

	if result.Error != nil {
		return nil, result.Error
	}

	names := map[string]string{}
	for _, row := range rows {
		names[row.ID] = row.EventName
	}

	return names, nil
}

// GetEventNameByID returns the event name, or an empty string when the id
// is unknown.
func (r *EventConfigRepo) GetEventNameByID(ctx context.Context, id string) (string, error) {

	var names []string

	result := r.db.
		WithContext(ctx).
		Model(&model.EventConfig{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("event_name", &names)

	if result.Error != nil {
		return "", result.Error
	}

	if len(names) == 0 {
		return "", nil
	}

	return names[0], nil
}

func (r *EventConfigRepo) CreateEventConfig(ctx context.Context, cfg model.EventConfig) error {

	result := r.db.
		WithContext(ctx).
		Model(&cfg).
		Debug().
		Create(cfg)

	if result.Error != nil {
		return result.Error
	}

	return nil
}
