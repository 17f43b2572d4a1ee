package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/chat"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// RatingsHandler serves rating submission, statistics and export.
type RatingsHandler struct {
	machine *chat.Machine
	ratings *service.RatingService
	locales *locale.Registry
}

// NewRatingsHandler constructs handler.
func NewRatingsHandler(machine *chat.Machine, ratings *service.RatingService, locales *locale.Registry) *RatingsHandler {
	return &RatingsHandler{machine: machine, ratings: ratings, locales: locales}
}

// Submit POST /rating/.
func (h *RatingsHandler) Submit(c *fiber.Ctx) error {
	var req dto.RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	language := strings.ToLower(strings.TrimSpace(req.Language))
	catalog := h.locales.Catalog(language)
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.NewValidationError(catalog.Msg("invalid_rating"),
			map[string]any{"rating": req.Rating})
	}

	result, err := h.machine.SubmitRating(c.Context(), req.SessionID, req.Rating,
		language, strings.TrimSpace(req.TicketID), req.FeedbackText)
	if err != nil {
		return err
	}
	return c.JSON(dto.RatingResponse{
		Success:     true,
		Message:     fmt.Sprintf("%s (%s)", result.Reply, catalog.RatingLabels[req.Rating]),
		Rating:      req.Rating,
		RatingLabel: catalog.RatingLabels[req.Rating],
		SessionID:   result.Session.SessionID,
	})
}

// Stats GET /ratings/stats.
func (h *RatingsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.ratings.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.RatingStatsResponse{
		TotalRatings:         stats.Total,
		AverageRating:        stats.Average,
		RatingDistribution:   stats.ByStars,
		LanguageDistribution: stats.ByLanguage,
	})
}

// Export GET /ratings/export. Streams a UTF-8 CSV attachment.
func (h *RatingsHandler) Export(c *fiber.Ctx) error {
	payload, err := h.ratings.ExportCSV(c.Context())
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("grievance_ratings_%s.csv", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Status(http.StatusOK).Send(payload)
}
