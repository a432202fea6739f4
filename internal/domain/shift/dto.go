package shift

// Record is one agent's presence inside one shift window on one day. Records
// are computed fresh on every aggregation call and never mutated afterwards.
type Record struct {
	UserID              string `json:"id_user"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Date                string `json:"date"` // YYYY-MM-DD
	Shift               string `json:"shift"`
	ShiftIcon           string `json:"shift_icon"`
	Entry               string `json:"entry"` // ISO timestamp
	Exit                string `json:"exit"`  // ISO timestamp
	EntryFormatted      string `json:"entry_formatted"`
	ExitFormatted       string `json:"exit_formatted"`
	PresentMinutes      int    `json:"present_minutes"`
	AwayMinutes         int    `json:"away_minutes"`
	PresentFormatted    string `json:"present_formatted"`
	AwayFormatted       string `json:"away_formatted"`
	AvailabilityPercent int    `json:"availability_percent"`
	Status              Status `json:"status"`
	StatusLabel         string `json:"status_label"`
}

// DailySummary aggregates one agent's shift records for one day.
type DailySummary struct {
	UserID                   string   `json:"id_user"`
	Name                     string   `json:"name"`
	Email                    string   `json:"email"`
	Date                     string   `json:"date"` // YYYY-MM-DD
	Shifts                   []Record `json:"shifts"`
	TotalPresentMinutes      int      `json:"total_present_minutes"`
	TotalAwayMinutes         int      `json:"total_away_minutes"`
	TotalPresentFormatted    string   `json:"total_present_formatted"`
	TotalAwayFormatted       string   `json:"total_away_formatted"`
	TotalAvailabilityPercent int      `json:"total_availability_percent"`
}
