package apis

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"event-registration-backend/cmd/event-registration/model"

	"github.com/goforj/godump"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IEventConfigReader interface {
	ListOpenCategories(ctx context.Context, today string) ([]string, error)
	ListOpenDatesForCategory(ctx context.Context, category string, today string) ([]string, error)
	ListOpenEventNames(ctx context.Context, category string, date string, today string) (map[string]string, error)
	GetEventNameByID(ctx context.Context, id string) (string, error)
}

type IRegistrationRepo interface {
	ExistsRegistration(ctx context.Context, email string, eventDate string) (bool, error)
	CreateRegistration(ctx context.Context, reg model.Registration) error
}

type INotifier interface {
	SendConfirmation(ctx context.Context, reg model.Registration, eventName string)
}

// RegistrationAPI serves the public registration form: three cascading
// select endpoints (category, date, event name) and the submit endpoint.
type RegistrationAPI struct {
	eventConfigRepo  IEventConfigReader
	registrationRepo IRegistrationRepo
	notifier         INotifier
}

func NewRegistrationAPI(eventConfigRepo IEventConfigReader, registrationRepo IRegistrationRepo, notifier INotifier) *RegistrationAPI {

	return &RegistrationAPI{
		eventConfigRepo:  eventConfigRepo,
		registrationRepo: registrationRepo,
		notifier:         notifier,
	}
}

func (a *RegistrationAPI) Setup(g *echo.Group) {
	g.GET("/registration/categories", a.listCategories)
	g.GET("/registration/dates", a.listDates)
	g.GET("/registration/events", a.listEventNames)
	g.POST("/registration", a.register)
}

func today() string {
	return time.Now().Format(model.DateFormat)
}

func (a *RegistrationAPI) listCategories(c echo.Context) error {

	ctx := c.Request().Context()

	categories, err := a.eventConfigRepo.ListOpenCategories(ctx, today())
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if len(categories) == 0 {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Data:    []string{},
				Message: "No events are currently open for registration.",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    categories,
			Message: "success",
		},
	)
}

func (a *RegistrationAPI) listDates(c echo.Context) error {

	ctx := c.Request().Context()

	category := c.QueryParam("event_category")
	if category == "" {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Data:    []string{},
				Message: "Please select a category.",
			},
		)
	}

	dates, err := a.eventConfigRepo.ListOpenDatesForCategory(ctx, category, today())
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

func (a *RegistrationAPI) listEventNames(c echo.Context) error {

	ctx := c.Request().Context()

	category := c.QueryParam("event_category")
	date := c.QueryParam("event_date")

	if category == "" || date == "" {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Data:    map[string]string{},
				Message: "Please select a category and a date.",
			},
		)
	}

	names, err := a.eventConfigRepo.ListOpenEventNames(ctx, category, date, today())
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

func (a *RegistrationAPI) register(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.RegistrationCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	godump.Dump(req)

	errs := req.Validate()

	// The duplicate check runs last, and only when both inputs it needs
	// are present.
	if req.Email != "" && req.EventDate != "" {
		exists, err := a.registrationRepo.ExistsRegistration(ctx, req.Email, req.EventDate)
		if err != nil {
			return c.JSON(
				http.StatusInternalServerError,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
		if exists {
			errs["email"] = fmt.Sprintf("You have already registered for this event on %s.", req.EventDate)
		}
	}

	if len(errs) > 0 {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "validation failed",
				Errors:  errs,
			},
		)
	}

	eventName, err := a.eventConfigRepo.GetEventNameByID(ctx, req.EventConfigID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if eventName == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "validation failed",
				Errors: map[string]string{
					"event_name": "Please select a valid event.",
				},
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

	reg := model.Registration{
		ID:            id.String(),
		FullName:      req.FullName,
		Email:         req.Email,
		CollegeName:   req.CollegeName,
		Department:    req.Department,
		EventCategory: model.EventCategory(req.EventCategory),
		EventDate:     req.EventDate,
		EventConfigID: req.EventConfigID,
		Created:       time.Now(),
	}

	err = a.registrationRepo.CreateRegistration(ctx, reg)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: "An error occurred while processing your registration. Please try again.",
			},
		)
	}

	// The row is committed; mail is best effort from here on.
	a.notifier.SendConfirmation(ctx, reg, eventName)

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data:    reg,
			Message: fmt.Sprintf("Thank you for registering! A confirmation email has been sent to %s.", reg.Email),
		},
	)
}
