package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/repository"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// fakeGrievanceRepo keeps grievances in insertion order and can inject
// failures per call.
type fakeGrievanceRepo struct {
	items      []domain.Grievance
	nextID     int64
	insertErrs []error
	failAll    error
}

func (f *fakeGrievanceRepo) Insert(ctx context.Context, g *domain.Grievance) error {
	if f.failAll != nil {
		return f.failAll
	}
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range f.items {
		if strings.EqualFold(existing.Ticket, g.Ticket) {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	g.ID = f.nextID
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	f.items = append(f.items, *g)
	return nil
}

func (f *fakeGrievanceRepo) ExistsByTicket(ctx context.Context, ticket string) (bool, error) {
	if f.failAll != nil {
		return false, f.failAll
	}
	for _, g := range f.items {
		if strings.EqualFold(g.Ticket, ticket) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGrievanceRepo) GetByTicket(ctx context.Context, ticket string) (*domain.Grievance, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := len(f.items) - 1; i >= 0; i-- {
		if strings.EqualFold(f.items[i].Ticket, ticket) {
			g := f.items[i]
			return &g, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeGrievanceRepo) LatestByMobile(ctx context.Context, mobile string) (*domain.Grievance, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].MobileNumber == mobile {
			g := f.items[i]
			return &g, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeGrievanceRepo) ListByMobile(ctx context.Context, mobile string, limit int) ([]domain.Grievance, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var result []domain.Grievance
	for i := len(f.items) - 1; i >= 0 && len(result) < limit; i-- {
		if f.items[i].MobileNumber == mobile {
			result = append(result, f.items[i])
		}
	}
	return result, nil
}

func (f *fakeGrievanceRepo) List(ctx context.Context, filter repository.GrievanceFilter) ([]domain.Grievance, int64, error) {
	if f.failAll != nil {
		return nil, 0, f.failAll
	}
	var matched []domain.Grievance
	for i := len(f.items) - 1; i >= 0; i-- {
		g := f.items[i]
		if filter.Status != nil && g.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && g.IssueCategory != *filter.Category {
			continue
		}
		matched = append(matched, g)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (f *fakeGrievanceRepo) UpdateStatus(ctx context.Context, id int64, status domain.GrievanceStatus) (*domain.Grievance, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			f.items[i].UpdatedAt = time.Now()
			g := f.items[i]
			return &g, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func validInput() GrievanceCreateInput {
	return GrievanceCreateInput{
		EmployeeID:       "EMP-1001",
		EmployeeName:     "Asha Kulkarni",
		MobileNumber:     "9876543210",
		OfficialEmail:    "asha.kulkarni@example.gov.in",
		Designation:      "Clerk",
		Department:       "Revenue",
		OfficeName:       "Collector Office",
		DistrictName:     "Pune",
		Priority:         "High",
		IssueCategory:    "IT",
		IssueSubCategory: "Hardware",
		IssueRelated:     "Desktop",
		Subject:          "Monitor not working",
		Description:      "The office monitor stopped working on Monday.",
	}
}

func newGrievanceService(repo repository.GrievanceRepository) *GrievanceService {
	return NewGrievanceService(repo, nil, zap.NewNop())
}

func TestCreateRoundTrip(t *testing.T) {
	repo := &fakeGrievanceRepo{}
	svc := newGrievanceService(repo)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != domain.GrievanceStatusOpen {
		t.Fatalf("status = %q, want Open", created.Status)
	}
	if !strings.HasPrefix(created.Ticket, "TKT-") {
		t.Fatalf("ticket = %q", created.Ticket)
	}
	if created.UserRole != "Employee" {
		t.Fatalf("default user role = %q", created.UserRole)
	}

	fetched, err := svc.GetByTicket(context.Background(), created.Ticket)
	if err != nil {
		t.Fatalf("GetByTicket: %v", err)
	}
	if fetched.EmployeeName != "Asha Kulkarni" || fetched.Subject != "Monitor not working" {
		t.Fatalf("round-trip mismatch: %+v", fetched)
	}
	if fetched.Status != domain.GrievanceStatusOpen {
		t.Fatalf("fetched status = %q", fetched.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeGrievanceRepo{}
	svc := newGrievanceService(repo)

	input := validInput()
	input.MobileNumber = ""
	input.Subject = "  "

	_, err := svc.Create(context.Background(), input)
	if !errorutil.IsCode(err, "VALIDATION_FAILED") {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatal("store touched on invalid input")
	}
}

func TestCreateRetriesDuplicateTicket(t *testing.T) {
	repo := &fakeGrievanceRepo{insertErrs: []error{&pgconn.PgError{Code: "23505"}}}
	svc := newGrievanceService(repo)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create after duplicate: %v", err)
	}
	if created.Ticket == "" {
		t.Fatal("no ticket assigned")
	}
}

func TestCreateDuplicateRetriesExhausted(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	repo := &fakeGrievanceRepo{insertErrs: []error{dup, dup, dup}}
	svc := newGrievanceService(repo)

	_, err := svc.Create(context.Background(), validInput())
	if !errorutil.IsCode(err, "CONFLICT") {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestCreateStoreFailure(t *testing.T) {
	repo := &fakeGrievanceRepo{insertErrs: []error{errors.New("connection reset")}}
	svc := newGrievanceService(repo)

	_, err := svc.Create(context.Background(), validInput())
	if !errorutil.IsCode(err, "SERVICE_UNAVAILABLE") {
		t.Fatalf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestCreateNoEqualTickets(t *testing.T) {
	repo := &fakeGrievanceRepo{}
	svc := newGrievanceService(repo)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		created, err := svc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if seen[created.Ticket] {
			t.Fatalf("duplicate ticket stored: %s", created.Ticket)
		}
		seen[created.Ticket] = true
	}
}

func TestListByMobileNewestFirst(t *testing.T) {
	repo := &fakeGrievanceRepo{}
	svc := newGrievanceService(repo)

	var last string
	for i := 0; i < 7; i++ {
		created, err := svc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		last = created.Ticket
	}

	items, err := svc.ListByMobile(context.Background(), "9876543210", 5)
	if err != nil {
		t.Fatalf("ListByMobile: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("len = %d, want 5", len(items))
	}
	if items[0].Ticket != last {
		t.Fatalf("first item %s, want newest %s", items[0].Ticket, last)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeGrievanceRepo{}
	svc := newGrievanceService(repo)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.ID, domain.GrievanceStatusResolved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.GrievanceStatusResolved {
		t.Fatalf("status = %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, "Escalated"); !errorutil.IsCode(err, "VALIDATION_FAILED") {
		t.Fatalf("expected VALIDATION_FAILED for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), 9999, domain.GrievanceStatusClosed); !errorutil.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND for missing id, got %v", err)
	}
}

func TestNormalizePriority(t *testing.T) {
	cases := map[string]domain.GrievancePriority{
		"High":    domain.GrievancePriorityHigh,
		"urgent":  domain.GrievancePriorityUrgent,
		"मध्यम":   domain.GrievancePriorityMedium,
		"कमी":     domain.GrievancePriorityLow,
		"unknown": domain.GrievancePriorityLow,
		"":        domain.GrievancePriorityLow,
	}
	for raw, want := range cases {
		if got := normalizePriority(raw); got != want {
			t.Errorf("normalizePriority(%q) = %q, want %q", raw, got, want)
		}
	}
}
