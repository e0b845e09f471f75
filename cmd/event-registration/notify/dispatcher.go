package notify

import (
	"bytes"
	"context"
	"log"
	"text/template"

	"event-registration-backend/cmd/event-registration/model"
)

const confirmationSubject = "Event Registration Confirmation"

var confirmationTemplate = template.Must(template.New("registration_confirmation").Parse(
	`Dear {{.FullName}},

Thank you for registering for {{.EventName}}.

Event: {{.EventName}}
Category: {{.EventCategory}}
Date: {{.EventDate}}

We look forward to seeing you there.
`))

type ISettingsRepo interface {
	GetAdminSettings(ctx context.Context) (model.AdminSettings, error)
}

// Dispatcher sends confirmation mail after a registration is saved.
// Everything here is best effort: the registration row is already
// committed, so failures are logged and swallowed, never surfaced.
type Dispatcher struct {
	mailer       Mailer
	settingsRepo ISettingsRepo
}

func NewDispatcher(mailer Mailer, settingsRepo ISettingsRepo) *Dispatcher {
	return &Dispatcher{
		mailer:       mailer,
		settingsRepo: settingsRepo,
	}
}

type confirmationParams struct {
	FullName      string
	EventName     string
	EventDate     string
	EventCategory string
}

// SendConfirmation mails the registrant, and the admin address too when
// admin notifications are enabled and an address is configured.
func (d *Dispatcher) SendConfirmation(ctx context.Context, reg model.Registration, eventName string) {

	params := confirmationParams{
		FullName:      reg.FullName,
		EventName:     eventName,
		EventDate:     reg.EventDate,
		EventCategory: string(reg.EventCategory),
	}

	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, params); err != nil {
		log.Printf("confirmation mail template: %v", err)
		return
	}

	if err := d.mailer.Send(reg.Email, confirmationSubject, body.String()); err != nil {
		log.Printf("confirmation mail to %s: %v", reg.Email, err)
	}

	settings, err := d.settingsRepo.GetAdminSettings(ctx)
	if err != nil {
		log.Printf("admin settings lookup: %v", err)
		return
	}

	if settings.EnableAdminNotifications && settings.AdminEmail != "" {
		if err := d.mailer.Send(settings.AdminEmail, confirmationSubject, body.String()); err != nil {
			log.Printf("admin copy to %s: %v", settings.AdminEmail, err)
		}
	}
}
