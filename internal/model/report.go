package model

import "time"

// Shift values accepted for a report.
const (
	ShiftDay      = "day"
	ShiftNight    = "night"
	ShiftDayNight = "day-night"
)

// Anomaly severities. The field is an open string: unknown values are
// stored and counted as-is.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// TaskCategories and SupportTypes are the suggestion sets offered by
// the UI. Storage accepts any string; these are presentation hints only.
var TaskCategories = []string{
	"Inspection",
	"Cleaning",
	"Maintenance",
	"Unloading",
	"Inventory",
	"Sorting",
	"Loading",
	"Other",
}

var SupportTypes = []string{
	"Equipment damage",
	"System issue",
	"Operational issue",
	"Other",
}

// Report is the daily shift report aggregate. JSON field names match
// the stored document shape.
type Report struct {
	ID             string         `json:"id"`
	Date           string         `json:"date"` // YYYY-MM-DD
	Location       string         `json:"location"`
	PreparedBy     string         `json:"preparedBy"`
	Shift          string         `json:"shift"`
	ShiftStartTime string         `json:"shiftStartTime,omitempty"`
	ShiftEndTime   string         `json:"shiftEndTime,omitempty"`
	Staff          []StaffMember  `json:"staff"`
	Tasks          []Task         `json:"tasks"`
	Incidents      []Incident     `json:"incidents"`
	Anomalies      []Anomaly      `json:"anomalies"`
	SupportIssues  []SupportIssue `json:"supportIssues"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	CreatedBy      string         `json:"createdBy,omitempty"`
}

type StaffMember struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type Task struct {
	ID                string   `json:"id"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	AssignedEmployees []string `json:"assignedEmployees"`
}

type Incident struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	ActionsTaken string `json:"actionsTaken"`
}

type Anomaly struct {
	ID              string `json:"id"`
	Severity        string `json:"severity"`
	Description     string `json:"description"`
	NextShiftAction string `json:"nextShiftAction"`
}

type SupportIssue struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	TicketNumber string `json:"ticketNumber"`
}

func (s *StaffMember) ItemID() string       { return s.ID }
func (s *StaffMember) SetItemID(id string)  { s.ID = id }
func (t *Task) ItemID() string              { return t.ID }
func (t *Task) SetItemID(id string)         { t.ID = id }
func (i *Incident) ItemID() string          { return i.ID }
func (i *Incident) SetItemID(id string)     { i.ID = id }
func (a *Anomaly) ItemID() string           { return a.ID }
func (a *Anomaly) SetItemID(id string)      { a.ID = id }
func (s *SupportIssue) ItemID() string      { return s.ID }
func (s *SupportIssue) SetItemID(id string) { s.ID = id }

// ParseDate parses a report date. The zero time is returned for
// malformed values so callers can still sort deterministically.
func ParseDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}
