package model

import "time"

// Setting is one admin-configurable key/value row.
type Setting struct {
	Key        string    `gorm:"column:key;primaryKey" json:"key"`
	Value      string    `gorm:"column:value" json:"value"`
	UpdateDate time.Time `gorm:"column:update_date" json:"update_date"`
}

func (m *Setting) TableName() string {
	return "settings"
}

const (
	SettingAdminEmail               = "admin_email"
	SettingEnableAdminNotifications = "enable_admin_notifications"
)

// AdminSettings is the assembled view over the settings rows.
// Missing rows read as zero values.
type AdminSettings struct {
	AdminEmail               string `json:"admin_email"`
	EnableAdminNotifications bool   `json:"enable_admin_notifications"`
}
