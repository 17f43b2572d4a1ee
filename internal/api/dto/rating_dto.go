package dto

// RatingRequest submits a satisfaction rating.
type RatingRequest struct {
	Rating       int    `json:"rating"`
	SessionID    string `json:"session_id"`
	Language     string `json:"language"`
	TicketID     string `json:"ticket_id"`
	FeedbackText string `json:"feedback_text"`
}

// RatingResponse acknowledges a stored rating.
type RatingResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Rating      int    `json:"rating"`
	RatingLabel string `json:"rating_label"`
	SessionID   string `json:"session_id"`
}

// RatingStatsResponse aggregates stored ratings.
type RatingStatsResponse struct {
	TotalRatings         int64            `json:"total_ratings"`
	AverageRating        float64          `json:"average_rating"`
	RatingDistribution   map[int]int64    `json:"rating_distribution"`
	LanguageDistribution map[string]int64 `json:"language_distribution"`
}
