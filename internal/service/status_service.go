package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// IdentifierKind classifies a user-supplied lookup identifier.
type IdentifierKind string

const (
	IdentifierTicket  IdentifierKind = "ticket_id"
	IdentifierMobile  IdentifierKind = "mobile_number"
	IdentifierUnknown IdentifierKind = "unknown"
)

var (
	// Creation always produces 8 hex characters; lookup accepts 6+
	// alphanumerics for forward compatibility.
	ticketIDPattern = regexp.MustCompile(`(?i)^TKT-[A-Za-z0-9]{6,}$`)
	ticketEmbedded  = regexp.MustCompile(`(?i)\b(TKT-[A-Za-z0-9]{6,})\b`)
	mobileEmbedded  = regexp.MustCompile(`\b(?:\+?91[\s-]?)?([6-9]\d{9})\b`)
	nonDigits       = regexp.MustCompile(`\D`)
)

// ClassifyIdentifier normalizes and classifies an identifier. Ticket pattern
// is tested first, then the digits-only Indian mobile forms.
func ClassifyIdentifier(raw string) (string, IdentifierKind) {
	trimmed := strings.TrimSpace(raw)
	if ticketIDPattern.MatchString(trimmed) {
		return trimmed, IdentifierTicket
	}
	digits := nonDigits.ReplaceAllString(trimmed, "")
	if mobile, ok := normalizeMobile(digits); ok {
		return mobile, IdentifierMobile
	}
	return trimmed, IdentifierUnknown
}

// DetectIdentifier searches free text for an embedded ticket ID or mobile
// number. Ticket IDs win over mobile numbers.
func DetectIdentifier(text string) (string, IdentifierKind, bool) {
	if m := ticketEmbedded.FindStringSubmatch(text); m != nil {
		return m[1], IdentifierTicket, true
	}
	if m := mobileEmbedded.FindStringSubmatch(text); m != nil {
		return m[1], IdentifierMobile, true
	}
	return "", IdentifierUnknown, false
}

// normalizeMobile reduces digit strings to a bare 10-digit Indian mobile
// number, accepting the 91- and 0-prefixed forms.
func normalizeMobile(digits string) (string, bool) {
	switch {
	case len(digits) == 10 && digits[0] >= '6' && digits[0] <= '9':
		return digits, true
	case len(digits) == 12 && strings.HasPrefix(digits, "91") && digits[2] >= '6' && digits[2] <= '9':
		return digits[2:], true
	case len(digits) == 11 && digits[0] == '0' && digits[1] >= '6' && digits[1] <= '9':
		return digits[1:], true
	}
	return "", false
}

// StatusField is one label/value pair of a status summary.
type StatusField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// StatusSummary is the structured result of a status lookup. Message is a
// rendering of Fields for text-only consumers, not the canonical form.
type StatusSummary struct {
	Ticket      string                 `json:"ticket"`
	Status      domain.GrievanceStatus `json:"status"`
	CreatedDate string                 `json:"created_date"`
	Identifier  string                 `json:"identifier"`
	Kind        IdentifierKind         `json:"kind"`
	Fields      []StatusField          `json:"fields"`
	Message     string                 `json:"message"`
}

// StatusStore is the slice of the grievance store status lookups need.
type StatusStore interface {
	GetByTicket(ctx context.Context, ticket string) (*domain.Grievance, error)
	LatestByMobile(ctx context.Context, mobile string) (*domain.Grievance, error)
}

// StatusService resolves user-supplied identifiers to status summaries.
type StatusService struct {
	store   StatusStore
	locales *locale.Registry
	logger  *zap.Logger
}

// NewStatusService constructs the service.
func NewStatusService(store StatusStore, locales *locale.Registry, logger *zap.Logger) *StatusService {
	return &StatusService{store: store, locales: locales, logger: logger}
}

// Lookup classifies the identifier, queries the store and builds a localized
// summary. Malformed identifiers return VALIDATION_FAILED without touching
// the store; missing records return NOT_FOUND; store failures return
// SERVICE_UNAVAILABLE so callers never conflate the two.
func (s *StatusService) Lookup(ctx context.Context, identifier, language string) (*StatusSummary, error) {
	catalog := s.locales.Catalog(language)
	normalized, kind := ClassifyIdentifier(identifier)

	var (
		grievance *domain.Grievance
		err       error
	)
	switch kind {
	case IdentifierTicket:
		grievance, err = s.store.GetByTicket(ctx, normalized)
	case IdentifierMobile:
		grievance, err = s.store.LatestByMobile(ctx, normalized)
	default:
		return nil, errorutil.NewValidationError(catalog.Msg("invalid_identifier"), nil)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound(s.notFoundMessage(catalog, normalized, kind), nil)
		}
		s.logger.Error("status lookup failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, errorutil.NewServiceUnavailable(catalog.Msg("database_error"), err)
	}

	return s.buildSummary(grievance, normalized, kind, catalog), nil
}

func (s *StatusService) notFoundMessage(catalog *locale.Catalog, identifier string, kind IdentifierKind) string {
	if kind == IdentifierMobile {
		return fmt.Sprintf(catalog.Msg("mobile_not_found"), identifier)
	}
	return catalog.Msg("ticket_not_found")
}

func (s *StatusService) buildSummary(grievance *domain.Grievance, identifier string, kind IdentifierKind, catalog *locale.Catalog) *StatusSummary {
	const dateLayout = "02-Jan-2006"

	createdDate := catalog.Msg("value_missing")
	if !grievance.CreatedAt.IsZero() {
		createdDate = grievance.CreatedAt.Format(dateLayout)
	}

	fields := []StatusField{
		{Key: "ticket", Label: catalog.Msg("label_ticket"), Value: grievance.Ticket},
		{Key: "status", Label: catalog.Msg("label_status"), Value: string(grievance.Status)},
		{Key: "created", Label: catalog.Msg("label_created"), Value: createdDate},
		{Key: "employee_name", Label: catalog.Msg("label_employee"), Value: valueOr(grievance.EmployeeName, catalog)},
		{Key: "category", Label: catalog.Msg("label_category"), Value: valueOr(grievance.IssueCategory, catalog)},
	}
	if grievance.DistrictName != "" {
		fields = append(fields, StatusField{Key: "district", Label: catalog.Msg("label_district"), Value: grievance.DistrictName})
	}
	if grievance.OfficeName != "" {
		fields = append(fields, StatusField{Key: "office", Label: catalog.Msg("label_office"), Value: grievance.OfficeName})
	}
	if grievance.Subject != "" {
		fields = append(fields, StatusField{Key: "subject", Label: catalog.Msg("label_subject"), Value: grievance.Subject})
	}
	if !grievance.UpdatedAt.IsZero() {
		fields = append(fields, StatusField{Key: "updated", Label: catalog.Msg("label_updated"), Value: grievance.UpdatedAt.Format(dateLayout)})
	}

	var b strings.Builder
	b.WriteString(catalog.Msg("status_header"))
	for _, f := range fields {
		b.WriteString("\n")
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	if kind == IdentifierMobile {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf(catalog.Msg("found_by_mobile"), identifier))
	}

	return &StatusSummary{
		Ticket:      grievance.Ticket,
		Status:      grievance.Status,
		CreatedDate: createdDate,
		Identifier:  identifier,
		Kind:        kind,
		Fields:      fields,
		Message:     b.String(),
	}
}

func valueOr(value string, catalog *locale.Catalog) string {
	if strings.TrimSpace(value) == "" {
		return catalog.Msg("value_missing")
	}
	return value
}
