package repository

import (
	"context"
	"strconv"
	"time"

	"event-registration-backend/cmd/event-registration/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{
		db: db,
	}
}

// GetAdminSettings assembles the admin settings from the key/value rows.
// Keys that were never saved read as zero values.
func (r *SettingsRepo) GetAdminSettings(ctx context.Context) (model.AdminSettings, error) {

	var rows []model.Setting

	result := r.db.
		WithContext(ctx).
		Model(&model.Setting{}).
		Where("key IN ?", []string{model.SettingAdminEmail, model.SettingEnableAdminNotifications}).
		Find(&rows)

	if result.Error != nil {
		return model.AdminSettings{}, result.Error
	}

	var settings model.AdminSettings
	for _, row := range rows {
		switch row.Key {
		case model.SettingAdminEmail:
			settings.AdminEmail = row.Value
		case model.SettingEnableAdminNotifications:
			settings.EnableAdminNotifications, _ = strconv.ParseBool(row.Value)
		}
	}

	return settings, nil
}

// SaveAdminSettings upserts both settings rows.
func (r *SettingsRepo) SaveAdminSettings(ctx context.Context, settings model.AdminSettings) error {

	now := time.Now()

	rows := []model.Setting{
		{
			Key:        model.SettingAdminEmail,
			Value:      settings.AdminEmail,
			UpdateDate: now,
		},
		{
			Key:        model.SettingEnableAdminNotifications,
			Value:      strconv.FormatBool(settings.EnableAdminNotifications),
			UpdateDate: now,
		},
	}

	result := r.db.
		WithContext(ctx).
		Model(&model.Setting{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "update_date"}),
		}).
		Create(&rows)

	if result.Error != nil {
		return result.Error
	}

	return nil
}
