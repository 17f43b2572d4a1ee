package dto

import (
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// CreateGrievanceRequest payload. Ticket, status and timestamps are assigned
// server-side and never accepted from the caller.
type CreateGrievanceRequest struct {
	EmployeeID       string     `json:"employee_id"`
	EmployeeName     string     `json:"employee_name"`
	MobileNumber     string     `json:"mobile_number"`
	OfficialEmail    string     `json:"official_email"`
	Designation      string     `json:"designation"`
	Department       string     `json:"department"`
	OfficeName       string     `json:"office_name"`
	DistrictName     string     `json:"district_name"`
	UserRole         string     `json:"user_role"`
	Priority         string     `json:"priority"`
	IssueTimestamp   *time.Time `json:"issue_timestamp"`
	IssueCategory    string     `json:"issue_category"`
	IssueSubCategory string     `json:"issue_sub_category"`
	IssueRelated     string     `json:"issue_related"`
	IssueSection     *string    `json:"issue_section"`
	IssueSubSection  *string    `json:"issue_sub_section"`
	Subject          string     `json:"subject"`
	Description      string     `json:"description"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GrievanceResponse is the wire rendering of a grievance record.
type GrievanceResponse struct {
	ID               int64     `json:"id"`
	Ticket           string    `json:"ticket"`
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	MobileNumber     string    `json:"mobile_number"`
	OfficialEmail    string    `json:"official_email"`
	Designation      string    `json:"designation"`
	Department       string    `json:"department"`
	OfficeName       string    `json:"office_name"`
	DistrictName     string    `json:"district_name"`
	UserRole         string    `json:"user_role"`
	Priority         string    `json:"priority"`
	IssueTimestamp   time.Time `json:"issue_timestamp"`
	IssueCategory    string    `json:"issue_category"`
	IssueSubCategory string    `json:"issue_sub_category"`
	IssueRelated     string    `json:"issue_related"`
	IssueSection     *string   `json:"issue_section"`
	IssueSubSection  *string   `json:"issue_sub_section"`
	Subject          string    `json:"subject"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	FilesCount       int       `json:"files_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Pagination describes a page of a larger result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewGrievanceResponse maps a domain grievance to its wire form.
func NewGrievanceResponse(g *domain.Grievance) GrievanceResponse {
	return GrievanceResponse{
		ID:               g.ID,
		Ticket:           g.Ticket,
		EmployeeID:       g.EmployeeID,
		EmployeeName:     g.EmployeeName,
		MobileNumber:     g.MobileNumber,
		OfficialEmail:    g.OfficialEmail,
		Designation:      g.Designation,
		Department:       g.Department,
		OfficeName:       g.OfficeName,
		DistrictName:     g.DistrictName,
		UserRole:         g.UserRole,
		Priority:         string(g.Priority),
		IssueTimestamp:   g.IssueTimestamp,
		IssueCategory:    g.IssueCategory,
		IssueSubCategory: g.IssueSubCategory,
		IssueRelated:     g.IssueRelated,
		IssueSection:     g.IssueSection,
		IssueSubSection:  g.IssueSubSection,
		Subject:          g.Subject,
		Description:      g.Description,
		Status:           string(g.Status),
		FilesCount:       g.FilesCount,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// NewGrievanceResponses maps a slice of grievances.
func NewGrievanceResponses(items []domain.Grievance) []GrievanceResponse {
	responses := make([]GrievanceResponse, 0, len(items))
	for i := range items {
		responses = append(responses, NewGrievanceResponse(&items[i]))
	}
	return responses
}
