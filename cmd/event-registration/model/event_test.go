package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventConfig_TableName(t *testing.T) {
	cfg := EventConfig{}
	assert.Equal(t, "event_config", cfg.TableName())
}

func TestRegistration_TableName(t *testing.T) {
	reg := Registration{}
	assert.Equal(t, "event_registration", reg.TableName())
}

func TestSetting_TableName(t *testing.T) {
	s := Setting{}
	assert.Equal(t, "settings", s.TableName())
}

func TestEventCategory_Valid(t *testing.T) {
	assert.True(t, OnlineWorkshop.Valid())
	assert.True(t, Hackathon.Valid())
	assert.True(t, Conference.Valid())
	assert.True(t, OneDayWorkshop.Valid())

	assert.False(t, EventCategory("").Valid())
	assert.False(t, EventCategory("Webinar").Valid())
	assert.False(t, EventCategory("conference").Valid())
}

func TestEventCategory_Constants(t *testing.T) {
	assert.Equal(t, EventCategory("Online Workshop"), OnlineWorkshop)
	assert.Equal(t, EventCategory("Hackathon"), Hackathon)
	assert.Equal(t, EventCategory("Conference"), Conference)
	assert.Equal(t, EventCategory("One-day Workshop"), OneDayWorkshop)
}

func TestEventConfig_JSONSerialization(t *testing.T) {
	now := time.Now()
	cfg := EventConfig{
		ID:                    "cfg-1",
		EventName:             "AI Workshop",
		EventCategory:         Conference,
		EventDate:             "2025-06-01",
		RegistrationStartDate: "2025-05-01",
		RegistrationEndDate:   "2025-05-20",
		Created:               now,
	}

	jsonData, err := json.Marshal(cfg)
	assert.NoError(t, err)
	assert.Contains(t, string(jsonData), `"event_name":"AI Workshop"`)
	assert.Contains(t, string(jsonData), `"event_category":"Conference"`)
	assert.Contains(t, string(jsonData), `"event_date":"2025-06-01"`)

	var unmarshaled EventConfig
	err = json.Unmarshal(jsonData, &unmarshaled)
	assert.NoError(t, err)
	assert.Equal(t, cfg.ID, unmarshaled.ID)
	assert.Equal(t, cfg.EventCategory, unmarshaled.EventCategory)
	assert.Equal(t, cfg.RegistrationEndDate, unmarshaled.RegistrationEndDate)
}

func TestListingRow_FormatsSubmissionDate(t *testing.T) {
	created := time.Date(2025, 5, 10, 14, 30, 5, 0, time.UTC)
	reg := Registration{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		EventDate:   "2025-06-01",
		CollegeName: "Springfield College",
		Department:  "Physics",
		Created:     created,
	}

	row := ListingRow(reg)

	assert.Equal(t, "Jane Doe", row.FullName)
	assert.Equal(t, "jane@example.com", row.Email)
	assert.Equal(t, "2025-06-01", row.EventDate)
	assert.Equal(t, "Springfield College", row.CollegeName)
	assert.Equal(t, "Physics", row.Department)
	assert.Equal(t, "2025-05-10 14:30:05", row.SubmissionDate)
}

func TestExportRow_CarriesCategoryAndTimestamp(t *testing.T) {
	created := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	reg := Registration{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		CollegeName:   "Springfield College",
		Department:    "Physics",
		EventCategory: Hackathon,
		EventDate:     "2025-06-01",
		Created:       created,
	}

	row := ExportRow(reg)

	assert.Equal(t, "Jane Doe", row.Name)
	assert.Equal(t, "Hackathon", row.EventCategory)
	assert.Equal(t, "2025-06-01", row.EventDate)
	assert.Equal(t, "2025-05-10 09:00:00", row.SubmissionDate)
}
