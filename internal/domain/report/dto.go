package report

import (
	"github.com/cxops-br/presence-insights-go/internal/domain/shift"
	"github.com/cxops-br/presence-insights-go/internal/pkg/validator"
)

// DailyRow is one calendar day of the per-attendant report. Unlike the shift
// aggregation, the calendar view emits a row for every day of the range; days
// without events carry status "none" and nil times.
type DailyRow struct {
	DateKey             string   `json:"date_key"` // YYYY-MM-DD
	Label               string   `json:"label"`    // ex: Segunda-feira - 06/01/2026
	Weekday             string   `json:"weekday"`
	TotalPresentMinutes float64  `json:"total_present_minutes"`
	TotalAwayMinutes    float64  `json:"total_away_minutes"`
	FirstEventTime      *string  `json:"first_event_time"` // HH:MM UTC
	LastEventTime       *string  `json:"last_event_time"`  // HH:MM UTC
	CurrentStatus       string   `json:"current_status"`   // online | away | none
	Reasons             []string `json:"reasons"`
}

// ShiftReport is the per-attendant shift breakdown for a date range.
type ShiftReport struct {
	ReportID    string               `json:"report_id"`
	GeneratedAt string               `json:"generated_at"`
	UserID      string               `json:"id_user"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Days        []shift.DailySummary `json:"days"`
}

// DailyReport is the per-attendant calendar view for a date range.
type DailyReport struct {
	ReportID    string     `json:"report_id"`
	GeneratedAt string     `json:"generated_at"`
	UserID      string     `json:"id_user"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Rows        []DailyRow `json:"rows"`
}

// AttendantReportRequest selects one agent and a closed date range.
type AttendantReportRequest struct {
	UserID    string `json:"id_user"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *AttendantReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id_user",
			Message: "id_user is required",
		})
	}

	start, startValid := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
