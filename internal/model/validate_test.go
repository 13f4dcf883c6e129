package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Report {
	return Report{
		Date:       "2024-01-15",
		Location:   "Warehouse A",
		PreparedBy: "J. Smith",
		Shift:      ShiftDay,
	}
}

func TestValidateDraftRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*Report)
	}{
		{"date", func(r *Report) { r.Date = "" }},
		{"location", func(r *Report) { r.Location = "   " }},
		{"preparedBy", func(r *Report) { r.PreparedBy = "" }},
		{"shift", func(r *Report) { r.Shift = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			r := validDraft()
			tc.mutate(&r)
			err := ValidateDraft(&r)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	r := validDraft()
	require.NoError(t, ValidateDraft(&r))
}

func TestCleanDropsBlankItems(t *testing.T) {
	r := validDraft()
	r.Staff = []StaffMember{{Name: "Anna"}, {Name: "   "}, {Name: "Bohdan"}}
	r.Tasks = []Task{
		{ID: "t1", Description: "Swept dock"},
		{ID: "t2", Description: "  "},
		{ID: "t3", Description: "Counted stock"},
	}
	r.Incidents = []Incident{{ID: "i1", Description: ""}}
	r.Anomalies = []Anomaly{{ID: "a1", Severity: SeverityInfo, Description: "Door slow"}}
	r.SupportIssues = []SupportIssue{{ID: "s1", Description: "\t"}}

	got := Clean(r)

	require.Len(t, got.Staff, 2)
	assert.Equal(t, []string{"Anna", "Bohdan"}, []string{got.Staff[0].Name, got.Staff[1].Name})
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "t1", got.Tasks[0].ID)
	assert.Equal(t, "t3", got.Tasks[1].ID)
	assert.Empty(t, got.Incidents)
	assert.Len(t, got.Anomalies, 1)
	assert.Empty(t, got.SupportIssues)

	// input untouched
	assert.Len(t, r.Staff, 3)
	assert.Len(t, r.Tasks, 3)
}

func TestCleanIdempotent(t *testing.T) {
	r := validDraft()
	r.Staff = []StaffMember{{Name: "Anna"}, {Name: ""}}
	r.Tasks = []Task{{ID: "t1", Description: ""}, {ID: "t2", Description: ""}}

	once := Clean(r)
	twice := Clean(once)
	assert.Equal(t, once, twice)
	assert.Empty(t, once.Tasks)
}
