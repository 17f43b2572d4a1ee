package events

import (
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGrievanceCreated       EventType = "grievance_created"
	EventGrievanceStatusChanged EventType = "grievance_status_changed"
	EventRatingSubmitted        EventType = "rating_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Ticket    string      `json:"ticket,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// GrievanceCreatedPayload payload.
type GrievanceCreatedPayload struct {
	MobileNumber  string                   `json:"mobile_number"`
	DistrictName  string                   `json:"district_name"`
	IssueCategory string                   `json:"issue_category"`
	Priority      domain.GrievancePriority `json:"priority"`
	Subject       string                   `json:"subject"`
}

// GrievanceStatusChangedPayload payload.
type GrievanceStatusChangedPayload struct {
	NewStatus domain.GrievanceStatus `json:"new_status"`
}

// RatingSubmittedPayload payload.
type RatingSubmittedPayload struct {
	SessionID string `json:"session_id"`
	Rating    int    `json:"rating"`
	Language  string `json:"language"`
	TicketID  string `json:"ticket_id"`
}
