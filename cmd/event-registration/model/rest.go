package model

type BaseResponse struct {
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type EventConfigCreateRequest struct {
	EventName             string `json:"event_name"`
	EventCategory         string `json:"event_category"`
	EventDate             string `json:"event_date"`
	RegistrationStartDate string `json:"registration_start_date"`
	RegistrationEndDate   string `json:"registration_end_date"`
}

type RegistrationCreateRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	CollegeName   string `json:"college_name"`
	Department    string `json:"department"`
	EventCategory string `json:"event_category"`
	EventDate     string `json:"event_date"`
	EventConfigID string `json:"event_config_id"`
}

type AdminSettingsRequest struct {
	AdminEmail               string `json:"admin_email"`
	EnableAdminNotifications bool   `json:"enable_admin_notifications"`
}

// RegistrationRow is one line of the admin listing, with the submission
// timestamp already formatted for display.
type RegistrationRow struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	EventDate      string `json:"event_date"`
	CollegeName    string `json:"college_name"`
	Department     string `json:"department"`
	SubmissionDate string `json:"submission_date"`
}

type RegistrationListing struct {
	Total         int               `json:"total"`
	Registrations []RegistrationRow `json:"registrations"`
	ExportURL     string            `json:"export_url"`
}

// RegistrationCSV is the export row shape; tags define the header order.
type RegistrationCSV struct {
	Name           string `csv:"Name"`
	Email          string `csv:"Email"`
	CollegeName    string `csv:"College Name"`
	Department     string `csv:"Department"`
	EventCategory  string `csv:"Event Category"`
	EventDate      string `csv:"Event Date"`
	SubmissionDate string `csv:"Submission Date"`
}

// ListingRow converts a stored registration to its admin-listing shape.
func ListingRow(r Registration) RegistrationRow {
	return RegistrationRow{
		FullName:       r.FullName,
		Email:          r.Email,
		EventDate:      r.EventDate,
		CollegeName:    r.CollegeName,
		Department:     r.Department,
		SubmissionDate: r.Created.Format(TimestampFormat),
	}
}

// ExportRow converts a stored registration to its CSV export shape.
func ExportRow(r Registration) RegistrationCSV {
	return RegistrationCSV{
		Name:           r.FullName,
		Email:          r.Email,
		CollegeName:    r.CollegeName,
		Department:     r.Department,
		EventCategory:  string(r.EventCategory),
		EventDate:      r.EventDate,
		SubmissionDate: r.Created.Format(TimestampFormat),
	}
}
