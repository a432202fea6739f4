package shift

// Shift names as they appear in reports. The product is pt-BR facing, the
// feed and every label keep the original names.
const (
	Manha = "Manhã"
	Tarde = "Tarde"
	Noite = "Noite"
)

// Window is one fixed minute-of-day slot presence gets intersected against.
// Start and End are minutes since UTC midnight, both inclusive; an exit later
// than OvertimeAfter marks the shift as overtime.
type Window struct {
	Name          string `json:"name"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Icon          string `json:"icon"`
	OvertimeAfter int    `json:"overtime_after"`
}

// Contains reports whether a minute-of-day falls inside the window.
func (w Window) Contains(minute int) bool {
	return minute >= w.Start && minute <= w.End
}

// Overlap returns how many whole minutes of [startMin, endMin) fall inside
// the window. Window.End is an inclusive minute, so the upper clip is End+1:
// the boundary minutes 719/720 and 1080/1081 land in exactly one window and
// a run crossing a boundary splits without losing a minute.
func (w Window) Overlap(startMin, endMin int) int {
	from := max(startMin, w.Start)
	to := min(endMin, w.End+1)
	if from >= to {
		return 0
	}
	return to - from
}

// Table is an ordered, immutable set of shift windows. It is injected into
// the aggregation engine so tests can run against alternate definitions.
type Table struct {
	windows []Window
}

func NewTable(windows ...Window) Table {
	owned := make([]Window, len(windows))
	copy(owned, windows)
	return Table{windows: owned}
}

// Windows returns the windows in table order.
func (t Table) Windows() []Window {
	return t.windows
}

// DefaultTable is the production three-shift day: morning, afternoon, night.
func DefaultTable() Table {
	return NewTable(
		Window{Name: Manha, Start: 6 * 60, End: 11*60 + 59, Icon: "🌅", OvertimeAfter: 12 * 60},
		Window{Name: Tarde, Start: 12 * 60, End: 18 * 60, Icon: "☀️", OvertimeAfter: 18 * 60},
		Window{Name: Noite, Start: 18*60 + 1, End: 23*60 + 59, Icon: "🌙", OvertimeAfter: 22 * 60},
	)
}
