package service_test

import (
	"fmt"
	"testing"

	"github.com/P0n40/Shiftdailyreportapp/internal/model"
	"github.com/P0n40/Shiftdailyreportapp/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(date, shift string, tasks ...model.Task) model.Report {
	return model.Report{
		ID:         "r-" + date + "-" + shift,
		Date:       date,
		Location:   "Warehouse A",
		PreparedBy: "J. Smith",
		Shift:      shift,
		Tasks:      tasks,
	}
}

func task(category string, employees ...string) model.Task {
	return model.Task{Category: category, Description: category, AssignedEmployees: employees}
}

func TestComputeStatisticsEmptyCorpus(t *testing.T) {
	stats := service.ComputeStatistics(nil)

	assert.Zero(t, stats.TotalReports)
	assert.Zero(t, stats.AvgTasksPerReport)
	assert.Equal(t, 0, stats.ByShift[model.ShiftDay])
	assert.Equal(t, 0, stats.BySeverity[model.SeverityCritical])
	assert.NotNil(t, stats.TopStaff)
	assert.Empty(t, stats.TopStaff)
	assert.NotNil(t, stats.Timeline)
	assert.NotNil(t, stats.ReportsOverTime)
}

func TestCategoryCountsAndAverage(t *testing.T) {
	reports := []model.Report{
		report("2024-01-01", model.ShiftDay, task("A")),
		report("2024-01-02", model.ShiftDay, task("A")),
		report("2024-01-03", model.ShiftNight, task("B")),
	}
	stats := service.ComputeStatistics(reports)

	assert.Equal(t, 2, stats.ByCategory["A"])
	assert.Equal(t, 1, stats.ByCategory["B"])
	assert.Equal(t, 1.0, stats.AvgTasksPerReport)
}

func TestShiftAndSeverityTotalsAddUp(t *testing.T) {
	reports := []model.Report{
		report("2024-01-01", model.ShiftDay),
		report("2024-01-02", model.ShiftNight),
		report("2024-01-03", model.ShiftDayNight),
		report("2024-01-04", model.ShiftDay),
	}
	reports[0].Anomalies = []model.Anomaly{
		{Severity: model.SeverityInfo, Description: "a"},
		{Severity: model.SeverityCritical, Description: "b"},
	}
	reports[1].Anomalies = []model.Anomaly{
		{Severity: "unexpected", Description: "c"},
	}

	stats := service.ComputeStatistics(reports)

	shiftSum := 0
	for _, n := range stats.ByShift {
		shiftSum += n
	}
	assert.Equal(t, stats.TotalReports, shiftSum)

	severitySum := 0
	for _, n := range stats.BySeverity {
		severitySum += n
	}
	assert.Equal(t, stats.TotalAnomalies, severitySum)
	// unknown severities count under their own label
	assert.Equal(t, 1, stats.BySeverity["unexpected"])
}

func TestTopStaffRankingAndTruncation(t *testing.T) {
	longName := "Oleksandra Marchenko-Babich"
	reports := []model.Report{
		report("2024-01-01", model.ShiftDay,
			task("A", "Zoe", "Amy"),
			task("B", "Zoe"),
			task("C", longName),
		),
	}
	stats := service.ComputeStatistics(reports)

	require.Len(t, stats.TopStaff, 3)
	assert.Equal(t, "Zoe", stats.TopStaff[0].Name)
	assert.Equal(t, 2, stats.TopStaff[0].Tasks)
	// tie between Amy and the long name: first-seen order wins
	assert.Equal(t, "Amy", stats.TopStaff[1].Name)
	assert.Equal(t, "Oleksandra Marc...", stats.TopStaff[2].Name)
	assert.Equal(t, 1, stats.TopStaff[2].Tasks)
}

func TestTopStaffLimitedToTen(t *testing.T) {
	var tasks []model.Task
	for i := 0; i < 12; i++ {
		tasks = append(tasks, task("A", fmt.Sprintf("emp-%02d", i)))
	}
	stats := service.ComputeStatistics([]model.Report{
		report("2024-01-01", model.ShiftDay, tasks...),
	})
	assert.Len(t, stats.TopStaff, 10)
	assert.Equal(t, 12, stats.ActiveStaff)
}

func TestTimelineMergesSameDay(t *testing.T) {
	r1 := report("2024-01-10", model.ShiftDay)
	r1.Incidents = []model.Incident{{Description: "x"}}
	r2 := report("2024-01-10", model.ShiftNight)
	r2.Incidents = []model.Incident{{Description: "y"}}
	r2.Anomalies = []model.Anomaly{{Severity: model.SeverityInfo, Description: "z"}}
	r3 := report("2024-01-11", model.ShiftDay, task("A"))

	stats := service.ComputeStatistics([]model.Report{r3, r1, r2})

	require.Len(t, stats.Timeline, 2)
	assert.Equal(t, "Jan 10", stats.Timeline[0].Date)
	assert.Equal(t, 2, stats.Timeline[0].Incidents)
	assert.Equal(t, 1, stats.Timeline[0].Anomalies)
	assert.Equal(t, "Jan 11", stats.Timeline[1].Date)

	require.Len(t, stats.ReportsOverTime, 2)
	assert.Equal(t, 2, stats.ReportsOverTime[0].Reports)
	assert.Equal(t, 1, stats.ReportsOverTime[1].Tasks)
}

func TestSeriesWindows(t *testing.T) {
	var reports []model.Report
	for m := 1; m <= 3; m++ {
		for d := 1; d <= 28; d++ {
			reports = append(reports, report(fmt.Sprintf("2024-%02d-%02d", m, d), model.ShiftDay))
		}
	}

	stats := service.ComputeStatistics(reports)
	assert.Len(t, stats.Timeline, 30)
	assert.Len(t, stats.ReportsOverTime, 60)
	// windows take the most recent entries
	assert.Equal(t, "Feb 27", stats.Timeline[0].Date)
	assert.Equal(t, "Mar 28", stats.Timeline[len(stats.Timeline)-1].Date)
	assert.Equal(t, "Jan 25", stats.ReportsOverTime[0].Date)
}

func TestSupportByType(t *testing.T) {
	r := report("2024-01-01", model.ShiftDay)
	r.SupportIssues = []model.SupportIssue{
		{Type: "System issue", Description: "a"},
		{Type: "System issue", Description: "b"},
		{Type: "Other", Description: "c"},
	}
	stats := service.ComputeStatistics([]model.Report{r})
	assert.Equal(t, 2, stats.SupportByType["System issue"])
	assert.Equal(t, 1, stats.SupportByType["Other"])
	assert.Equal(t, 3, stats.TotalSupportIssues)
}
