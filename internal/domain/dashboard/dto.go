package dashboard

// DashboardStatsResponse is derived on demand from the roster and the day's
// attendance; nothing here is persisted.
type DashboardStatsResponse struct {
	TotalEmployees  int64  `json:"total_employees"`
	PresentToday    int64  `json:"present_today"`
	AbsentToday     int64  `json:"absent_today"`
	PendingToday    int64  `json:"pending_today"`
	DepartmentCount int64  `json:"department_count"`
	Date            string `json:"date"` // YYYY-MM-DD
}

// EmployeeSummaryStats is the roster side of the aggregation
type EmployeeSummaryStats struct {
	Total       int64
	Departments int64
}

// AttendanceDayStats counts marked statuses for a single date. Present and
// absent are counted independently, not as complements.
type AttendanceDayStats struct {
	Present int64
	Absent  int64
}
