package model

import (
	"net/mail"
	"regexp"
	"time"
)

// plainText matches names, colleges and departments: letters, digits and
// spaces only, at least one character.
var plainText = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

func ValidPlainText(s string) bool {
	return plainText.MatchString(s)
}

func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// Validate runs every check independently and returns one message per
// failing field. An empty map means the request may be persisted.
func (r EventConfigCreateRequest) Validate() map[string]string {
	errs := map[string]string{}

	if !ValidPlainText(r.EventName) {
		errs["event_name"] = "Event name should not contain special characters."
	}

	if !EventCategory(r.EventCategory).Valid() {
		errs["event_category"] = "Please select a valid event category."
	}

	if !validDate(r.EventDate) {
		errs["event_date"] = "Event date must be a valid date (YYYY-MM-DD)."
	}
	if !validDate(r.RegistrationStartDate) {
		errs["registration_start_date"] = "Registration start date must be a valid date (YYYY-MM-DD)."
	}
	if !validDate(r.RegistrationEndDate) {
		errs["registration_end_date"] = "Registration end date must be a valid date (YYYY-MM-DD)."
	}

	// Window checks only make sense on parseable dates; the YYYY-MM-DD
	// format orders lexicographically, so string comparison is enough.
	if validDate(r.RegistrationStartDate) && validDate(r.RegistrationEndDate) &&
		r.RegistrationStartDate >= r.RegistrationEndDate {
		errs["registration_end_date"] = "Registration end date must be after the start date."
	}
	if validDate(r.EventDate) && validDate(r.RegistrationStartDate) &&
		r.EventDate < r.RegistrationStartDate {
		errs["event_date"] = "Event date cannot be before the registration start date."
	}

	return errs
}

// Validate covers every check that needs no store access. The duplicate
// registration check runs afterwards in the handler, and only when email
// and event date both passed here.
func (r RegistrationCreateRequest) Validate() map[string]string {
	errs := map[string]string{}

	if !ValidPlainText(r.FullName) {
		errs["full_name"] = "Full name should not contain special characters."
	}
	if !ValidPlainText(r.CollegeName) {
		errs["college_name"] = "College name should not contain special characters."
	}
	if !ValidPlainText(r.Department) {
		errs["department"] = "Department should not contain special characters."
	}

	if !ValidEmail(r.Email) {
		errs["email"] = "Please enter a valid email address."
	}

	if !EventCategory(r.EventCategory).Valid() {
		errs["event_category"] = "Please select a valid event category."
	}
	if !validDate(r.EventDate) {
		errs["event_date"] = "Please select a valid event date."
	}
	if r.EventConfigID == "" {
		errs["event_name"] = "Please select an event."
	}

	return errs
}

func (r AdminSettingsRequest) Validate() map[string]string {
	errs := map[string]string{}

	if !ValidEmail(r.AdminEmail) {
		errs["admin_email"] = "Please enter a valid email address."
	}

	return errs
}
