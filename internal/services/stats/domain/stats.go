// Package domain computes the dashboard statistics shown on the organizer
// dashboard.
package domain

// RecentActivity summarizes trailing activity counters.
type RecentActivity struct {
	NewRSVPs      int `json:"newRSVPs"`
	MessagesSent  int `json:"messagesSent"`
	EventsCreated int `json:"eventsCreated"`
}

// DashboardStats aggregates the counters backing the dashboard stat cards.
// The camelCase JSON keys are the wire contract; clients match on them
// exactly.
type DashboardStats struct {
	TotalEvents    int            `json:"totalEvents"`
	ActiveEvents   int            `json:"activeEvents"`
	TotalAttendees int            `json:"totalAttendees"`
	UpcomingEvents int            `json:"upcomingEvents"`
	RecentActivity RecentActivity `json:"recentActivity"`
}
