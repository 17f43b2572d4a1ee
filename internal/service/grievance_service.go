package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/repository"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// insert retries after a duplicate-key violation; the pre-check usually
// prevents one, this closes the race window between check and insert.
const createInsertAttempts = 3

// priorityAliases maps submitted priority strings, including localized
// values, onto the stored vocabulary.
var priorityAliases = map[string]domain.GrievancePriority{
	"low": domain.GrievancePriorityLow, "कमी": domain.GrievancePriorityLow,
	"medium": domain.GrievancePriorityMedium, "मध्यम": domain.GrievancePriorityMedium,
	"high": domain.GrievancePriorityHigh, "उच्च": domain.GrievancePriorityHigh,
	"urgent": domain.GrievancePriorityUrgent, "तातडीचे": domain.GrievancePriorityUrgent,
}

// GrievanceService coordinates grievance workflows.
type GrievanceService struct {
	grievances repository.GrievanceRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewGrievanceService constructs the service.
func NewGrievanceService(grievances repository.GrievanceRepository, dispatcher events.Dispatcher, logger *zap.Logger) *GrievanceService {
	return &GrievanceService{grievances: grievances, dispatcher: dispatcher, logger: logger}
}

// GrievanceCreateInput describes a grievance submission.
type GrievanceCreateInput struct {
	EmployeeID       string
	EmployeeName     string
	MobileNumber     string
	OfficialEmail    string
	Designation      string
	Department       string
	OfficeName       string
	DistrictName     string
	UserRole         string
	Priority         string
	IssueTimestamp   *time.Time
	IssueCategory    string
	IssueSubCategory string
	IssueRelated     string
	IssueSection     *string
	IssueSubSection  *string
	Subject          string
	Description      string
}

// Create validates the submission, assigns a unique ticket identifier and
// inserts the record with status Open.
func (s *GrievanceService) Create(ctx context.Context, input GrievanceCreateInput) (*domain.Grievance, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	issueTS := time.Now()
	if input.IssueTimestamp != nil && !input.IssueTimestamp.IsZero() {
		issueTS = *input.IssueTimestamp
	}
	userRole := strings.TrimSpace(input.UserRole)
	if userRole == "" {
		userRole = "Employee"
	}

	grievance := &domain.Grievance{
		EmployeeID:       strings.TrimSpace(input.EmployeeID),
		EmployeeName:     strings.TrimSpace(input.EmployeeName),
		MobileNumber:     strings.TrimSpace(input.MobileNumber),
		OfficialEmail:    strings.TrimSpace(input.OfficialEmail),
		Designation:      strings.TrimSpace(input.Designation),
		Department:       strings.TrimSpace(input.Department),
		OfficeName:       strings.TrimSpace(input.OfficeName),
		DistrictName:     strings.TrimSpace(input.DistrictName),
		UserRole:         userRole,
		Priority:         normalizePriority(input.Priority),
		IssueTimestamp:   issueTS,
		IssueCategory:    strings.TrimSpace(input.IssueCategory),
		IssueSubCategory: strings.TrimSpace(input.IssueSubCategory),
		IssueRelated:     strings.TrimSpace(input.IssueRelated),
		IssueSection:     input.IssueSection,
		IssueSubSection:  input.IssueSubSection,
		Subject:          strings.TrimSpace(input.Subject),
		Description:      strings.TrimSpace(input.Description),
		Status:           domain.GrievanceStatusOpen,
		FilesCount:       0,
	}

	var insertErr error
	for attempt := 0; attempt < createInsertAttempts; attempt++ {
		grievance.Ticket = GenerateTicketID(ctx, s.grievances)
		insertErr = s.grievances.Insert(ctx, grievance)
		if insertErr == nil {
			break
		}
		if !repository.IsDuplicateTicket(insertErr) {
			return nil, errorutil.NewServiceUnavailable("unable to save grievance", insertErr)
		}
		s.logger.Warn("duplicate ticket on insert, regenerating",
			zap.String("ticket", grievance.Ticket), zap.Int("attempt", attempt+1))
	}
	if insertErr != nil {
		return nil, errorutil.NewConflict("could not allocate a unique ticket identifier", nil)
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventGrievanceCreated,
		Ticket: grievance.Ticket,
		Payload: events.GrievanceCreatedPayload{
			MobileNumber:  grievance.MobileNumber,
			DistrictName:  grievance.DistrictName,
			IssueCategory: grievance.IssueCategory,
			Priority:      grievance.Priority,
			Subject:       grievance.Subject,
		},
	})
	s.logger.Info("grievance created",
		zap.String("ticket", grievance.Ticket),
		zap.String("district", grievance.DistrictName),
		zap.String("priority", string(grievance.Priority)))
	return grievance, nil
}

// GetByTicket fetches one grievance by its ticket identifier.
func (s *GrievanceService) GetByTicket(ctx context.Context, ticket string) (*domain.Grievance, error) {
	grievance, err := s.grievances.GetByTicket(ctx, strings.TrimSpace(ticket))
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	return grievance, nil
}

// ListByMobile returns the newest grievances registered under a mobile number.
func (s *GrievanceService) ListByMobile(ctx context.Context, mobile string, limit int) ([]domain.Grievance, error) {
	items, err := s.grievances.ListByMobile(ctx, strings.TrimSpace(mobile), limit)
	if err != nil {
		return nil, errorutil.NewServiceUnavailable("unable to list grievances", err)
	}
	return items, nil
}

// List returns a page of grievances with optional status/category filters.
func (s *GrievanceService) List(ctx context.Context, page, limit int, status, category string) ([]domain.Grievance, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	filter := repository.GrievanceFilter{Limit: limit, Offset: (page - 1) * limit}
	if status != "" {
		st := domain.GrievanceStatus(status)
		if !st.Valid() {
			return nil, 0, errorutil.NewValidationError("unknown status", map[string]any{"status": status})
		}
		filter.Status = &st
	}
	if category != "" {
		filter.Category = &category
	}
	items, total, err := s.grievances.List(ctx, filter)
	if err != nil {
		return nil, 0, errorutil.NewServiceUnavailable("unable to list grievances", err)
	}
	return items, total, nil
}

// UpdateStatus performs the administrative status transition.
func (s *GrievanceService) UpdateStatus(ctx context.Context, id int64, status domain.GrievanceStatus) (*domain.Grievance, error) {
	if !status.Valid() {
		return nil, errorutil.NewValidationError("unknown status", map[string]any{"status": string(status)})
	}
	updated, err := s.grievances.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:   events.EventGrievanceStatusChanged,
		Ticket: updated.Ticket,
		Payload: events.GrievanceStatusChangedPayload{
			NewStatus: status,
		},
	})
	return updated, nil
}

func (s *GrievanceService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func normalizePriority(raw string) domain.GrievancePriority {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return p
	}
	if p, ok := priorityAliases[strings.TrimSpace(raw)]; ok {
		return p
	}
	return domain.GrievancePriorityLow
}

func validateCreateInput(input GrievanceCreateInput) error {
	missing := []string{}
	required := map[string]string{
		"employee_id":        input.EmployeeID,
		"employee_name":      input.EmployeeName,
		"mobile_number":      input.MobileNumber,
		"official_email":     input.OfficialEmail,
		"designation":        input.Designation,
		"department":         input.Department,
		"office_name":        input.OfficeName,
		"district_name":      input.DistrictName,
		"issue_category":     input.IssueCategory,
		"issue_sub_category": input.IssueSubCategory,
		"issue_related":      input.IssueRelated,
		"subject":            input.Subject,
		"description":        input.Description,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return errorutil.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}
	return nil
}
