package model

import (
	"fmt"
	"strings"
)

// ValidationError reports a missing required field on a draft.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// ValidateDraft checks the required header fields of a draft before it
// is persisted. Sub-collections are never a validation concern; blank
// rows are handled by Clean.
func ValidateDraft(r *Report) error {
	for _, f := range []struct {
		name, value string
	}{
		{"date", r.Date},
		{"location", r.Location},
		{"preparedBy", r.PreparedBy},
		{"shift", r.Shift},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// Clean returns a copy of the report with blank sub-items dropped:
// staff without a name, and tasks, incidents, anomalies and support
// issues without a description. Relative order is preserved and the
// operation is idempotent.
func Clean(r Report) Report {
	out := r
	out.Staff = make([]StaffMember, 0, len(r.Staff))
	for _, s := range r.Staff {
		if strings.TrimSpace(s.Name) != "" {
			out.Staff = append(out.Staff, s)
		}
	}
	out.Tasks = make([]Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		if strings.TrimSpace(t.Description) != "" {
			out.Tasks = append(out.Tasks, t)
		}
	}
	out.Incidents = make([]Incident, 0, len(r.Incidents))
	for _, i := range r.Incidents {
		if strings.TrimSpace(i.Description) != "" {
			out.Incidents = append(out.Incidents, i)
		}
	}
	out.Anomalies = make([]Anomaly, 0, len(r.Anomalies))
	for _, a := range r.Anomalies {
		if strings.TrimSpace(a.Description) != "" {
			out.Anomalies = append(out.Anomalies, a)
		}
	}
	out.SupportIssues = make([]SupportIssue, 0, len(r.SupportIssues))
	for _, s := range r.SupportIssues {
		if strings.TrimSpace(s.Description) != "" {
			out.SupportIssues = append(out.SupportIssues, s)
		}
	}
	return out
}
