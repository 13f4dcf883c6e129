package editor

import (
	"slices"
	"strings"
	"time"

	"github.com/P0n40/Shiftdailyreportapp/internal/ident"
	"github.com/P0n40/Shiftdailyreportapp/internal/model"
)

// Draft is an unpersisted report under construction. It holds the five
// sub-collections as ordered lists plus the header fields.
type Draft struct {
	Date           string
	Location       string
	PreparedBy     string
	Shift          string
	ShiftStartTime string
	ShiftEndTime   string
	CreatedBy      string

	Staff         *List[*model.StaffMember]
	Tasks         *List[*model.Task]
	Incidents     *List[*model.Incident]
	Anomalies     *List[*model.Anomaly]
	SupportIssues *List[*model.SupportIssue]
}

// NewDraft returns an empty draft dated today, on the day shift, with
// a single blank staff row ready for input.
func NewDraft() *Draft {
	d := &Draft{
		Date:          time.Now().Format("2006-01-02"),
		Shift:         model.ShiftDay,
		Staff:         NewList[*model.StaffMember](),
		Tasks:         NewList[*model.Task](),
		Incidents:     NewList[*model.Incident](),
		Anomalies:     NewList[*model.Anomaly](),
		SupportIssues: NewList[*model.SupportIssue](),
	}
	d.AddStaff()
	return d
}

// FromReport loads an existing report into a draft for editing.
func FromReport(r model.Report) *Draft {
	d := &Draft{
		Date:           r.Date,
		Location:       r.Location,
		PreparedBy:     r.PreparedBy,
		Shift:          r.Shift,
		ShiftStartTime: r.ShiftStartTime,
		ShiftEndTime:   r.ShiftEndTime,
		CreatedBy:      r.CreatedBy,
		Staff:          NewList[*model.StaffMember](),
		Tasks:          NewList[*model.Task](),
		Incidents:      NewList[*model.Incident](),
		Anomalies:      NewList[*model.Anomaly](),
		SupportIssues:  NewList[*model.SupportIssue](),
	}
	for _, s := range r.Staff {
		s := s
		d.Staff.Insert(&s)
	}
	for _, t := range r.Tasks {
		t := t
		d.Tasks.Insert(&t)
	}
	for _, i := range r.Incidents {
		i := i
		d.Incidents.Insert(&i)
	}
	for _, a := range r.Anomalies {
		a := a
		d.Anomalies.Insert(&a)
	}
	for _, s := range r.SupportIssues {
		s := s
		d.SupportIssues.Insert(&s)
	}
	return d
}

func (d *Draft) AddStaff() *model.StaffMember {
	return d.Staff.Insert(&model.StaffMember{})
}

func (d *Draft) AddTask() *model.Task {
	return d.Tasks.Insert(&model.Task{Category: "Other", AssignedEmployees: []string{}})
}

func (d *Draft) AddIncident() *model.Incident {
	return d.Incidents.Insert(&model.Incident{})
}

func (d *Draft) AddAnomaly() *model.Anomaly {
	return d.Anomalies.Insert(&model.Anomaly{Severity: model.SeverityInfo})
}

func (d *Draft) AddSupportIssue() *model.SupportIssue {
	return d.SupportIssues.Insert(&model.SupportIssue{
		Type:         "Other",
		TicketNumber: ident.TicketNumber(),
	})
}

// Roster returns the names of all staff rows that are non-blank after
// trimming, in display order.
func (d *Draft) Roster() []string {
	var names []string
	for _, s := range d.Staff.Items() {
		if strings.TrimSpace(s.Name) != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// AssignEmployee adds name to the task's assignment list. The name
// must be on the current roster; duplicates are suppressed. Assignments
// are not revisited when the staff row is later removed or renamed.
func (d *Draft) AssignEmployee(taskID, name string) {
	if !slices.Contains(d.Roster(), name) {
		return
	}
	d.Tasks.Update(taskID, func(t *model.Task) {
		if !slices.Contains(t.AssignedEmployees, name) {
			t.AssignedEmployees = append(t.AssignedEmployees, name)
		}
	})
}

// UnassignEmployee removes name from the task's assignment list.
func (d *Draft) UnassignEmployee(taskID, name string) {
	d.Tasks.Update(taskID, func(t *model.Task) {
		t.AssignedEmployees = slices.DeleteFunc(t.AssignedEmployees, func(n string) bool {
			return n == name
		})
	})
}

// AssignAllStaff replaces the task's assignment list with the full
// current roster in one step.
func (d *Draft) AssignAllStaff(taskID string) {
	roster := d.Roster()
	d.Tasks.Update(taskID, func(t *model.Task) {
		t.AssignedEmployees = append([]string{}, roster...)
	})
}

// Report materializes the draft as a report aggregate. The result is
// uncleaned and unvalidated; the persistence gateway handles both.
func (d *Draft) Report() model.Report {
	r := model.Report{
		Date:           d.Date,
		Location:       d.Location,
		PreparedBy:     d.PreparedBy,
		Shift:          d.Shift,
		ShiftStartTime: d.ShiftStartTime,
		ShiftEndTime:   d.ShiftEndTime,
		CreatedBy:      d.CreatedBy,
		Staff:          []model.StaffMember{},
		Tasks:          []model.Task{},
		Incidents:      []model.Incident{},
		Anomalies:      []model.Anomaly{},
		SupportIssues:  []model.SupportIssue{},
	}
	for _, s := range d.Staff.Items() {
		r.Staff = append(r.Staff, *s)
	}
	for _, t := range d.Tasks.Items() {
		r.Tasks = append(r.Tasks, *t)
	}
	for _, i := range d.Incidents.Items() {
		r.Incidents = append(r.Incidents, *i)
	}
	for _, a := range d.Anomalies.Items() {
		r.Anomalies = append(r.Anomalies, *a)
	}
	for _, s := range d.SupportIssues.Items() {
		r.SupportIssues = append(r.SupportIssues, *s)
	}
	return r
}
