package domain

// CaseStatusCount is one row of the dashboard breakdown of cases by status.
type CaseStatusCount struct {
	Status Status
	Count  int
}

// DashboardStats summarises an officer's caseload. Urgent counts cases that
// are still new or whose deadline is overdue or inside the warning window.
type DashboardStats struct {
	Urgent   int
	Active   int
	Resolved int
	Total    int
}
