package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/internal/repository"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// RatingService validates and persists satisfaction ratings.
type RatingService struct {
	ratings    repository.RatingRepository
	locales    *locale.Registry
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRatingService constructs the service.
func NewRatingService(ratings repository.RatingRepository, locales *locale.Registry, dispatcher events.Dispatcher, logger *zap.Logger) *RatingService {
	return &RatingService{ratings: ratings, locales: locales, dispatcher: dispatcher, logger: logger}
}

// RatingInput describes a rating submission.
type RatingInput struct {
	Rating       int
	SessionID    string
	Language     string
	TicketID     string
	FeedbackText string
}

// Submit validates the rating before any storage interaction and persists it.
// Ratings without a ticket are accepted with the NA sentinel. Failures are
// retryable; the caller keeps its selected rating.
func (s *RatingService) Submit(ctx context.Context, input RatingInput) (*domain.Rating, error) {
	catalog := s.locales.Catalog(input.Language)
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errorutil.NewValidationError(catalog.Msg("invalid_rating"),
			map[string]any{"rating": input.Rating})
	}

	ticketID := strings.TrimSpace(input.TicketID)
	if ticketID == "" {
		ticketID = domain.RatingTicketNA
	}

	rating := &domain.Rating{
		SessionID: input.SessionID,
		Rating:    input.Rating,
		Label:     catalog.RatingLabels[input.Rating],
		Language:  catalog.Code,
		TicketID:  ticketID,
	}
	if text := strings.TrimSpace(input.FeedbackText); text != "" {
		rating.FeedbackText = &text
	}

	if err := s.ratings.Insert(ctx, rating); err != nil {
		s.logger.Error("rating insert failed", zap.String("session_id", input.SessionID), zap.Error(err))
		return nil, errorutil.NewServiceUnavailable(catalog.Msg("rating_failed"), err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventRatingSubmitted,
			Ticket:    ticketID,
			Timestamp: time.Now(),
			Payload: events.RatingSubmittedPayload{
				SessionID: rating.SessionID,
				Rating:    rating.Rating,
				Language:  rating.Language,
				TicketID:  rating.TicketID,
			},
		})
	}

	s.logger.Info("rating recorded",
		zap.Int("rating", rating.Rating),
		zap.String("label", rating.Label),
		zap.String("session_id", rating.SessionID),
		zap.String("ticket_id", rating.TicketID))
	return rating, nil
}

// Stats aggregates persisted ratings.
func (s *RatingService) Stats(ctx context.Context) (*repository.RatingStats, error) {
	stats, err := s.ratings.Stats(ctx)
	if err != nil {
		return nil, errorutil.NewServiceUnavailable("unable to compute rating statistics", err)
	}
	return stats, nil
}

// ExportCSV renders every rating as a UTF-8 CSV document with a BOM so
// spreadsheet tools decode the localized labels correctly.
func (s *RatingService) ExportCSV(ctx context.Context) ([]byte, error) {
	all, err := s.ratings.All(ctx)
	if err != nil {
		return nil, errorutil.NewServiceUnavailable("unable to export ratings", err)
	}

	var buf bytes.Buffer
	buf.WriteString("\ufeff")
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"timestamp", "session_id", "rating", "feedback", "language", "ticket_id"}); err != nil {
		return nil, errorutil.NewInternalError(err)
	}
	for _, rating := range all {
		feedback := ""
		if rating.FeedbackText != nil {
			feedback = *rating.FeedbackText
		}
		record := []string{
			rating.CreatedAt.Format("2006-01-02 15:04:05"),
			rating.SessionID,
			strconv.Itoa(rating.Rating),
			feedback,
			rating.Language,
			rating.TicketID,
		}
		if err := w.Write(record); err != nil {
			return nil, errorutil.NewInternalError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errorutil.NewInternalError(err)
	}
	return buf.Bytes(), nil
}
