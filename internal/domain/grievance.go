package domain

import "time"

// GrievanceStatus enumerates lifecycle states for grievances.
type GrievanceStatus string

const (
	GrievanceStatusOpen       GrievanceStatus = "Open"
	GrievanceStatusInProgress GrievanceStatus = "In Progress"
	GrievanceStatusPending    GrievanceStatus = "Pending"
	GrievanceStatusResolved   GrievanceStatus = "Resolved"
	GrievanceStatusClosed     GrievanceStatus = "Closed"
)

// Valid reports whether the status belongs to the fixed vocabulary.
func (s GrievanceStatus) Valid() bool {
	switch s {
	case GrievanceStatusOpen, GrievanceStatusInProgress, GrievanceStatusPending,
		GrievanceStatusResolved, GrievanceStatusClosed:
		return true
	}
	return false
}

// GrievancePriority enumerates urgency.
type GrievancePriority string

const (
	GrievancePriorityLow    GrievancePriority = "Low"
	GrievancePriorityMedium GrievancePriority = "Medium"
	GrievancePriorityHigh   GrievancePriority = "High"
	GrievancePriorityUrgent GrievancePriority = "Urgent"
)

// Grievance is the aggregate for a submitted complaint. The ticket identifier
// is globally unique and immutable once assigned.
type Grievance struct {
	ID               int64
	Ticket           string
	EmployeeID       string
	EmployeeName     string
	MobileNumber     string
	OfficialEmail    string
	Designation      string
	Department       string
	OfficeName       string
	DistrictName     string
	UserRole         string
	Priority         GrievancePriority
	IssueTimestamp   time.Time
	IssueCategory    string
	IssueSubCategory string
	IssueRelated     string
	IssueSection     *string
	IssueSubSection  *string
	Subject          string
	Description      string
	Status           GrievanceStatus
	FilesCount       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
