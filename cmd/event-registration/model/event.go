package model

import "time"

type EventCategory string

var (
	OnlineWorkshop EventCategory = "Online Workshop"
	Hackathon      EventCategory = "Hackathon"
	Conference     EventCategory = "Conference"
	OneDayWorkshop EventCategory = "One-day Workshop"
)

// EventCategories lists every category an event can be filed under.
var EventCategories = []EventCategory{
	OnlineWorkshop,
	Hackathon,
	Conference,
	OneDayWorkshop,
}

func (c EventCategory) Valid() bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DateFormat is the wire and storage format for event dates.
const DateFormat = "2006-01-02"

// TimestampFormat is how submission timestamps appear in listings and exports.
const TimestampFormat = "2006-01-02 15:04:05"

// EventConfig is an admin-defined event with its registration window.
// Date columns are DATE in postgres and carried as YYYY-MM-DD strings,
// so window checks reduce to string comparison.
type EventConfig struct {
	ID                    string        `gorm:"column:id" json:"id"`
	EventName             string        `gorm:"column:event_name" json:"event_name"`
	EventCategory         EventCategory `gorm:"column:event_category" json:"event_category"`
	EventDate             string        `gorm:"column:event_date" json:"event_date"`
	RegistrationStartDate string        `gorm:"column:registration_start_date" json:"registration_start_date"`
	RegistrationEndDate   string        `gorm:"column:registration_end_date" json:"registration_end_date"`
	Created               time.Time     `gorm:"column:created" json:"created"`
}

func (m *EventConfig) TableName() string {
	return "event_config"
}

// Registration is one attendee signup for a configured event.
// Rows are insert-only and never deleted by this system.
type Registration struct {
	ID            string        `gorm:"column:id" json:"id"`
	FullName      string        `gorm:"column:full_name" json:"full_name"`
	Email         string        `gorm:"column:email" json:"email"`
	CollegeName   string        `gorm:"column:college_name" json:"college_name"`
	Department    string        `gorm:"column:department" json:"department"`
	EventCategory EventCategory `gorm:"column:event_category" json:"event_category"`
	EventDate     string        `gorm:"column:event_date" json:"event_date"`
	EventConfigID string        `gorm:"column:event_config_id" json:"event_config_id"`
	Created       time.Time     `gorm:"column:created" json:"created"`
}

func (m *Registration) TableName() string {
	return "event_registration"
}
