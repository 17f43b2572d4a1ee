package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/chat"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

const maxQueryLength = 500

// ChatHandler serves the conversational widget endpoints.
type ChatHandler struct {
	machine *chat.Machine
	status  *service.StatusService
	locales *locale.Registry
}

// NewChatHandler constructs handler.
func NewChatHandler(machine *chat.Machine, status *service.StatusService, locales *locale.Registry) *ChatHandler {
	return &ChatHandler{machine: machine, status: status, locales: locales}
}

// Query POST /query/. One free-text conversation turn.
func (h *ChatHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := strings.TrimSpace(req.InputText)
	if input == "" {
		return apperrors.NewValidationError("input_text required", nil)
	}
	if len(input) > maxQueryLength {
		return apperrors.NewValidationError("input_text too long", map[string]any{"max_length": maxQueryLength})
	}
	language := strings.ToLower(strings.TrimSpace(req.Language))
	if language != "" && !h.locales.IsSupported(language) {
		return apperrors.NewValidationError("unsupported language", map[string]any{
			"language":  language,
			"supported": h.locales.Supported(),
		})
	}

	result, err := h.machine.HandleMessage(c.Context(), req.SessionID, input, language)
	if err != nil {
		return err
	}
	return c.JSON(dto.QueryResponse{
		Reply:      result.Reply,
		Language:   result.Session.Language,
		SessionID:  result.Session.SessionID,
		State:      string(result.Session.State),
		ShowRating: result.ShowRating,
	})
}

// TicketStatus POST /ticket/status/. Direct status lookup outside the
// conversational flow.
func (h *ChatHandler) TicketStatus(c *fiber.Ctx) error {
	var req dto.TicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identifier := strings.TrimSpace(req.TicketID)
	if identifier == "" {
		return apperrors.NewValidationError("ticket_id required", nil)
	}
	language := strings.ToLower(strings.TrimSpace(req.Language))

	summary, err := h.status.Lookup(c.Context(), identifier, language)
	if err != nil {
		_, kind := service.ClassifyIdentifier(identifier)
		domainErr := apperrors.ToDomainError(err)
		status := domainErr.HTTPStatus
		if apperrors.IsCode(err, "VALIDATION_FAILED") {
			status = http.StatusNotFound
		}
		return c.Status(status).JSON(dto.TicketStatusResponse{
			Success:      false,
			Found:        false,
			Message:      domainErr.Message,
			SearchMethod: string(kind),
			SearchValue:  identifier,
		})
	}

	return c.JSON(dto.TicketStatusResponse{
		Success:      true,
		Found:        true,
		Message:      summary.Message,
		TicketID:     summary.Ticket,
		Status:       string(summary.Status),
		CreatedDate:  summary.CreatedDate,
		Language:     language,
		SearchMethod: string(summary.Kind),
		SearchValue:  identifier,
	})
}

// Suggestions GET /suggestions/.
func (h *ChatHandler) Suggestions(c *fiber.Ctx) error {
	language := strings.ToLower(c.Query("language", ""))
	catalog := h.locales.Catalog(language)
	return c.JSON(dto.SuggestionsResponse{
		Suggestions: catalog.Suggestions,
		Language:    catalog.Code,
		Total:       len(catalog.Suggestions),
	})
}

// Languages GET /languages/.
func (h *ChatHandler) Languages(c *fiber.Ctx) error {
	details := make(map[string]dto.LanguageDetail)
	for _, code := range h.locales.Supported() {
		catalog := h.locales.Catalog(code)
		details[code] = dto.LanguageDetail{Name: catalog.Name, NativeName: catalog.NativeName}
	}
	return c.JSON(dto.LanguagesResponse{
		SupportedLanguages: h.locales.Supported(),
		LanguageDetails:    details,
	})
}
