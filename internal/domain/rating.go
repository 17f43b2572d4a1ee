package domain

import "time"

// RatingTicketNA is stored when a rating is not tied to a specific ticket.
const RatingTicketNA = "NA"

// Rating is a persisted 1..5 service-quality rating.
type Rating struct {
	ID           int64
	SessionID    string
	Rating       int
	Label        string
	Language     string
	TicketID     string
	FeedbackText *string
	CreatedAt    time.Time
}
