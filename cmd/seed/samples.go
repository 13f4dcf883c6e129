package main

import (
	"time"

	"github.com/P0n40/Shiftdailyreportapp/internal/editor"
	"github.com/P0n40/Shiftdailyreportapp/internal/model"
)

// sampleReports builds a small demo corpus through the draft editor,
// the same path the UI takes.
func sampleReports() []model.Report {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	day := editor.NewDraft()
	day.Date = yesterday
	day.Location = "Warehouse A"
	day.PreparedBy = "J. Smith"
	day.Shift = model.ShiftDay
	day.Staff.Update(day.Staff.Items()[0].ID, func(s *model.StaffMember) {
		s.Name = "O. Kovalenko"
	})
	second := day.AddStaff()
	second.Name = "M. Bondar"
	second.Notes = "forklift certified"

	sweep := day.AddTask()
	sweep.Category = "Cleaning"
	sweep.Description = "Swept loading dock"
	day.AssignAllStaff(sweep.ID)

	count := day.AddTask()
	count.Category = "Inventory"
	count.Description = "Cycle count, aisle 4"
	day.AssignEmployee(count.ID, "M. Bondar")

	anomaly := day.AddAnomaly()
	anomaly.Severity = model.SeverityWarning
	anomaly.Description = "Dock door 2 closes slowly"
	anomaly.NextShiftAction = "Call maintenance if it jams"

	night := editor.NewDraft()
	night.Date = today
	night.Location = "Warehouse A"
	night.PreparedBy = "A. Tkachenko"
	night.Shift = model.ShiftNight
	night.Staff.Update(night.Staff.Items()[0].ID, func(s *model.StaffMember) {
		s.Name = "A. Tkachenko"
	})

	unload := night.AddTask()
	unload.Category = "Unloading"
	unload.Description = "Unloaded two inbound trucks"
	night.AssignAllStaff(unload.ID)

	incident := night.AddIncident()
	incident.Description = "Pallet wrap machine jammed"
	incident.ActionsTaken = "Cleared jam, logged downtime"

	ticket := night.AddSupportIssue()
	ticket.Type = "Equipment damage"
	ticket.Description = "Scanner 7 dropped, screen cracked"

	return []model.Report{day.Report(), night.Report()}
}
