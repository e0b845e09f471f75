package apis

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"event-registration-backend/cmd/event-registration/model"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IEventConfigAdminRepo interface {
	ListAllEventDates(ctx context.Context) ([]string, error)
	ListEventNamesForDate(ctx context.Context, date string) (map[string]string, error)
	CreateEventConfig(ctx context.Context, cfg model.EventConfig) error
}

type IRegistrationReader interface {
	ListRegistrations(ctx context.Context, eventDate string, eventConfigID string) ([]model.Registration, error)
}

type ISettingsRepo interface {
	GetAdminSettings(ctx context.Context) (model.AdminSettings, error)
	SaveAdminSettings(ctx context.Context, settings model.AdminSettings) error
}

// AdminAPI serves the review listing (cascading date and name selects,
// registrants panel, CSV export), event configuration, and the
// notification settings form.
type AdminAPI struct {
	eventConfigRepo  IEventConfigAdminRepo
	registrationRepo IRegistrationReader
	settingsRepo     ISettingsRepo
}

func NewAdminAPI(eventConfigRepo IEventConfigAdminRepo, registrationRepo IRegistrationReader, settingsRepo ISettingsRepo) *AdminAPI {

	return &AdminAPI{
		eventConfigRepo:  eventConfigRepo,
		registrationRepo: registrationRepo,
		settingsRepo:     settingsRepo,
	}
}

func (a *AdminAPI) Setup(g *echo.Group) {
	g.GET("/admin/event-dates", a.listEventDates)
	g.GET("/admin/events", a.listEventNames)
	g.GET("/admin/registrations", a.listRegistrations)
	g.GET("/admin/registrations/export", a.exportRegistrations)
	g.POST("/admin/events", a.createEvent)
	g.GET("/admin/settings", a.getSettings)
	g.PUT("/admin/settings", a.updateSettings)
}

// listingPath is where the export endpoint bounces back to when it is
// called without an event date.
const listingPath = "/api/v1/admin/registrations"

func (a *AdminAPI) listEventDates(c echo.Context) error {

	ctx := c.Request().Context()

	dates, err := a.eventConfigRepo.ListAllEventDates(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    dates,
			Message: "success",
		},
	)
}

func (a *AdminAPI) listEventNames(c echo.Context) error {

	ctx := c.Request().Context()

	date := c.QueryParam("event_date")
	if date == "" {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Data:    map[string]string{},
				Message: "Please select an event date.",
			},
		)
	}

	names, err := a.eventConfigRepo.ListEventNamesForDate(ctx, date)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    names,
			Message: "success",
		},
	)
}

func (a *AdminAPI) listRegistrations(c echo.Context) error {

	ctx := c.Request().Context()

	date := c.QueryParam("event_date")
	configID := c.QueryParam("event_config_id")

	if date == "" || configID == "" {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Message: "Please select both event date and event name.",
			},
		)
	}

	registrations, err := a.registrationRepo.ListRegistrations(ctx, date, configID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	listing := model.RegistrationListing{
		Total:         len(registrations),
		Registrations: make([]model.RegistrationRow, 0, len(registrations)),
		ExportURL: fmt.Sprintf(
			"%s/export?event_date=%s&event_config_id=%s",
			listingPath,
			url.QueryEscape(date),
			url.QueryEscape(configID),
		),
	}

	for _, reg := range registrations {
		listing.Registrations = append(listing.Registrations, model.ListingRow(reg))
	}

	message := "success"
	if listing.Total == 0 {
		message = "No registrations found for this event."
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    listing,
			Message: message,
		},
	)
}

func (a *AdminAPI) exportRegistrations(c echo.Context) error {

	ctx := c.Request().Context()

	date := c.QueryParam("event_date")
	configID := c.QueryParam("event_config_id")

	if date == "" {
		return c.Redirect(
			http.StatusSeeOther,
			listingPath+"?notice="+url.QueryEscape("Event date is required."),
		)
	}

	registrations, err := a.registrationRepo.ListRegistrations(ctx, date, configID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	rows := make([]model.RegistrationCSV, 0, len(registrations))
	for _, reg := range registrations {
		rows = append(rows, model.ExportRow(reg))
	}

	var buf bytes.Buffer
	err = gocsv.Marshal(rows, &buf)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="event_registrations_%s.csv"`, date),
	)

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (a *AdminAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.EventConfigCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	errs := req.Validate()
	if len(errs) > 0 {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "validation failed",
				Errors:  errs,
			},
		)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cfg := model.EventConfig{
		ID:                    id.String(),
		EventName:             req.EventName,
		EventCategory:         model.EventCategory(req.EventCategory),
		EventDate:             req.EventDate,
		RegistrationStartDate: req.RegistrationStartDate,
		RegistrationEndDate:   req.RegistrationEndDate,
		Created:               time.Now(),
	}

	err = a.eventConfigRepo.CreateEventConfig(ctx, cfg)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: "An error occurred while saving the event configuration.",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    cfg,
			Message: "Event configuration has been saved successfully.",
		},
	)
}

func (a *AdminAPI) getSettings(c echo.Context) error {

	ctx := c.Request().Context()

	settings, err := a.settingsRepo.GetAdminSettings(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    settings,
			Message: "success",
		},
	)
}

func (a *AdminAPI) updateSettings(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.AdminSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	errs := req.Validate()
	if len(errs) > 0 {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "validation failed",
				Errors:  errs,
			},
		)
	}

	settings := model.AdminSettings{
		AdminEmail:               req.AdminEmail,
		EnableAdminNotifications: req.EnableAdminNotifications,
	}

	err := a.settingsRepo.SaveAdminSettings(ctx, settings)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: "An error occurred while saving the settings.",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    settings,
			Message: "The configuration options have been saved.",
		},
	)
}
