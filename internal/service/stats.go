package service

import (
	"math"
	"sort"

	"github.com/P0n40/Shiftdailyreportapp/internal/model"
)

// Statistics is the metrics bundle the dashboard consumes. All series
// are plain numeric data; chart rendering is the caller's concern.
type Statistics struct {
	TotalReports       int     `json:"totalReports"`
	TotalTasks         int     `json:"totalTasks"`
	TotalStaff         int     `json:"totalStaff"`
	TotalIncidents     int     `json:"totalIncidents"`
	TotalAnomalies     int     `json:"totalAnomalies"`
	TotalSupportIssues int     `json:"totalSupportIssues"`
	ActiveStaff        int     `json:"activeStaff"`
	AvgTasksPerReport  float64 `json:"avgTasksPerReport"`

	ByShift       map[string]int `json:"byShift"`
	ByCategory    map[string]int `json:"byCategory"`
	BySeverity    map[string]int `json:"bySeverity"`
	SupportByType map[string]int `json:"supportByType"`

	TopStaff        []StaffProductivity `json:"topStaff"`
	Timeline        []TimelinePoint     `json:"timeline"`
	ReportsOverTime []VolumePoint       `json:"reportsOverTime"`
}

// StaffProductivity is one ranked entry of the top-staff chart. Name
// is display-truncated; ranking is computed on the full name.
type StaffProductivity struct {
	Name  string `json:"name"`
	Tasks int    `json:"tasks"`
}

// TimelinePoint is one day of the incidents/anomalies series.
type TimelinePoint struct {
	Date      string `json:"date"`
	Incidents int    `json:"incidents"`
	Anomalies int    `json:"anomalies"`
}

// VolumePoint is one day of the reports/tasks series.
type VolumePoint struct {
	Date    string `json:"date"`
	Reports int    `json:"reports"`
	Tasks   int    `json:"tasks"`
}

const (
	timelineWindow = 30
	volumeWindow   = 60
	topStaffLimit  = 10
	nameDisplayMax = 15
)

// ComputeStatistics derives the metrics bundle from a snapshot of the
// full report corpus. It is pure and recomputed on every call; nothing
// is cached. An empty corpus yields zeroed, non-nil structures.
func ComputeStatistics(reports []model.Report) Statistics {
	stats := Statistics{
		ByShift: map[string]int{
			model.ShiftDay:      0,
			model.ShiftNight:    0,
			model.ShiftDayNight: 0,
		},
		ByCategory: map[string]int{},
		BySeverity: map[string]int{
			model.SeverityInfo:     0,
			model.SeverityWarning:  0,
			model.SeverityCritical: 0,
		},
		SupportByType:   map[string]int{},
		TopStaff:        []StaffProductivity{},
		Timeline:        []TimelinePoint{},
		ReportsOverTime: []VolumePoint{},
	}

	stats.TotalReports = len(reports)

	// First-seen order breaks ranking ties, so track it alongside the
	// per-employee tallies.
	taskCounts := map[string]int{}
	var employeeOrder []string

	for _, r := range reports {
		stats.TotalTasks += len(r.Tasks)
		stats.TotalStaff += len(r.Staff)
		stats.TotalIncidents += len(r.Incidents)
		stats.TotalAnomalies += len(r.Anomalies)
		stats.TotalSupportIssues += len(r.SupportIssues)

		stats.ByShift[r.Shift]++

		for _, t := range r.Tasks {
			stats.ByCategory[t.Category]++
			for _, e := range t.AssignedEmployees {
				if _, seen := taskCounts[e]; !seen {
					employeeOrder = append(employeeOrder, e)
				}
				taskCounts[e]++
			}
		}
		for _, a := range r.Anomalies {
			stats.BySeverity[a.Severity]++
		}
		for _, s := range r.SupportIssues {
			stats.SupportByType[s.Type]++
		}
	}

	if stats.TotalReports > 0 {
		avg := float64(stats.TotalTasks) / float64(stats.TotalReports)
		stats.AvgTasksPerReport = math.Round(avg*10) / 10
	}

	stats.ActiveStaff = len(taskCounts)

	ranked := make([]string, len(employeeOrder))
	copy(ranked, employeeOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return taskCounts[ranked[i]] > taskCounts[ranked[j]]
	})
	if len(ranked) > topStaffLimit {
		ranked = ranked[:topStaffLimit]
	}
	for _, name := range ranked {
		stats.TopStaff = append(stats.TopStaff, StaffProductivity{
			Name:  truncateName(name),
			Tasks: taskCounts[name],
		})
	}

	byDate := make([]model.Report, len(reports))
	copy(byDate, reports)
	sort.SliceStable(byDate, func(i, j int) bool {
		return model.ParseDate(byDate[i].Date).Before(model.ParseDate(byDate[j].Date))
	})

	// Reports sharing a day label collapse into a single series point.
	timelineIdx := map[string]int{}
	for _, r := range tail(byDate, timelineWindow) {
		label := dayLabel(r.Date)
		if i, ok := timelineIdx[label]; ok {
			stats.Timeline[i].Incidents += len(r.Incidents)
			stats.Timeline[i].Anomalies += len(r.Anomalies)
			continue
		}
		timelineIdx[label] = len(stats.Timeline)
		stats.Timeline = append(stats.Timeline, TimelinePoint{
			Date:      label,
			Incidents: len(r.Incidents),
			Anomalies: len(r.Anomalies),
		})
	}

	volumeIdx := map[string]int{}
	for _, r := range tail(byDate, volumeWindow) {
		label := dayLabel(r.Date)
		if i, ok := volumeIdx[label]; ok {
			stats.ReportsOverTime[i].Reports++
			stats.ReportsOverTime[i].Tasks += len(r.Tasks)
			continue
		}
		volumeIdx[label] = len(stats.ReportsOverTime)
		stats.ReportsOverTime = append(stats.ReportsOverTime, VolumePoint{
			Date:    label,
			Reports: 1,
			Tasks:   len(r.Tasks),
		})
	}

	return stats
}

func tail(reports []model.Report, n int) []model.Report {
	if len(reports) > n {
		return reports[len(reports)-n:]
	}
	return reports
}

func dayLabel(date string) string {
	t := model.ParseDate(date)
	if t.IsZero() {
		return date
	}
	return t.Format("Jan 2")
}

func truncateName(name string) string {
	r := []rune(name)
	if len(r) <= nameDisplayMax {
		return name
	}
	return string(r[:nameDisplayMax]) + "..."
}
