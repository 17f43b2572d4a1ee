package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

func TestClassifyIdentifier(t *testing.T) {
	cases := []struct {
		raw  string
		want IdentifierKind
	}{
		{"TKT-a1b2c3d4", IdentifierTicket},
		{"tkt-A1B2C3D4", IdentifierTicket},
		{"  TKT-abcdef  ", IdentifierTicket},
		{"TKT-12345", IdentifierUnknown},
		{"9876543210", IdentifierMobile},
		{"919876543210", IdentifierMobile},
		{"+91 98765 43210", IdentifierMobile},
		{"09876543210", IdentifierMobile},
		{"98765-43210", IdentifierMobile},
		{"5876543210", IdentifierUnknown},
		{"12345", IdentifierUnknown},
		{"hello there", IdentifierUnknown},
		{"", IdentifierUnknown},
	}
	for _, tc := range cases {
		_, kind := ClassifyIdentifier(tc.raw)
		if kind != tc.want {
			t.Errorf("ClassifyIdentifier(%q) kind = %q, want %q", tc.raw, kind, tc.want)
		}
	}
}

func TestClassifyIdentifierNormalizesMobile(t *testing.T) {
	for _, raw := range []string{"9876543210", "919876543210", "09876543210", "+91-9876543210"} {
		normalized, kind := ClassifyIdentifier(raw)
		if kind != IdentifierMobile {
			t.Fatalf("ClassifyIdentifier(%q) kind = %q", raw, kind)
		}
		if normalized != "9876543210" {
			t.Fatalf("ClassifyIdentifier(%q) = %q, want 9876543210", raw, normalized)
		}
	}
}

func TestDetectIdentifier(t *testing.T) {
	cases := []struct {
		text     string
		wantID   string
		wantKind IdentifierKind
		found    bool
	}{
		{"check status TKT-a1b2c3d4 please", "TKT-a1b2c3d4", IdentifierTicket, true},
		{"my number is 9876543210", "9876543210", IdentifierMobile, true},
		{"TKT-a1b2c3d4 or 9876543210", "TKT-a1b2c3d4", IdentifierTicket, true},
		{"no identifiers here", "", IdentifierUnknown, false},
	}
	for _, tc := range cases {
		id, kind, ok := DetectIdentifier(tc.text)
		if ok != tc.found || id != tc.wantID || kind != tc.wantKind {
			t.Errorf("DetectIdentifier(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.text, id, kind, ok, tc.wantID, tc.wantKind, tc.found)
		}
	}
}

type fakeStatusStore struct {
	byTicket map[string]*domain.Grievance
	byMobile map[string]*domain.Grievance
	err      error
	queries  int
}

func (f *fakeStatusStore) GetByTicket(ctx context.Context, ticket string) (*domain.Grievance, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	if g, ok := f.byTicket[strings.ToLower(ticket)]; ok {
		return g, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStatusStore) LatestByMobile(ctx context.Context, mobile string) (*domain.Grievance, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	if g, ok := f.byMobile[mobile]; ok {
		return g, nil
	}
	return nil, pgx.ErrNoRows
}

func sampleGrievance() *domain.Grievance {
	return &domain.Grievance{
		ID:            1,
		Ticket:        "TKT-a1b2c3d4",
		EmployeeName:  "Asha Kulkarni",
		MobileNumber:  "9876543210",
		DistrictName:  "Pune",
		OfficeName:    "Collector Office",
		Subject:       "Monitor not working",
		IssueCategory: "IT",
		Status:        domain.GrievanceStatusInProgress,
		CreatedAt:     time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC),
	}
}

func newStatusService(store StatusStore) *StatusService {
	return NewStatusService(store, locale.NewRegistry(), zap.NewNop())
}

func TestLookupByTicket(t *testing.T) {
	store := &fakeStatusStore{byTicket: map[string]*domain.Grievance{"tkt-a1b2c3d4": sampleGrievance()}}
	svc := newStatusService(store)

	summary, err := svc.Lookup(context.Background(), "TKT-A1B2C3D4", "en")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if summary.Ticket != "TKT-a1b2c3d4" || summary.Kind != IdentifierTicket {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.CreatedDate != "05-Mar-2026" {
		t.Fatalf("created date = %q", summary.CreatedDate)
	}
	if len(summary.Fields) < 5 {
		t.Fatalf("fields = %d, want at least 5", len(summary.Fields))
	}
	for _, want := range []string{"Ticket ID", "Status", "In Progress", "05-Mar-2026", "Asha Kulkarni", "Pune"} {
		if !strings.Contains(summary.Message, want) {
			t.Errorf("message missing %q:\n%s", want, summary.Message)
		}
	}
}

func TestLookupByMobile(t *testing.T) {
	store := &fakeStatusStore{byMobile: map[string]*domain.Grievance{"9876543210": sampleGrievance()}}
	svc := newStatusService(store)

	summary, err := svc.Lookup(context.Background(), "+91 98765 43210", "en")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if summary.Kind != IdentifierMobile || summary.Identifier != "9876543210" {
		t.Fatalf("summary = %+v", summary)
	}
	if !strings.Contains(summary.Message, "9876543210") {
		t.Fatalf("mobile suffix missing:\n%s", summary.Message)
	}
}

func TestLookupMarathiLabels(t *testing.T) {
	store := &fakeStatusStore{byTicket: map[string]*domain.Grievance{"tkt-a1b2c3d4": sampleGrievance()}}
	svc := newStatusService(store)

	summary, err := svc.Lookup(context.Background(), "TKT-a1b2c3d4", "mr")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !strings.Contains(summary.Message, "तिकीट क्रमांक") {
		t.Fatalf("marathi label missing:\n%s", summary.Message)
	}
}

func TestLookupInvalidIdentifier(t *testing.T) {
	store := &fakeStatusStore{}
	svc := newStatusService(store)

	_, err := svc.Lookup(context.Background(), "what is this", "en")
	if !errorutil.IsCode(err, "VALIDATION_FAILED") {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	if store.queries != 0 {
		t.Fatal("store queried for malformed identifier")
	}
}

func TestLookupNotFound(t *testing.T) {
	store := &fakeStatusStore{}
	svc := newStatusService(store)

	_, err := svc.Lookup(context.Background(), "TKT-ffffffff", "en")
	if !errorutil.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	_, err = svc.Lookup(context.Background(), "9876543210", "en")
	if !errorutil.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	domainErr := errorutil.ToDomainError(err)
	if !strings.Contains(domainErr.Message, "9876543210") {
		t.Fatalf("mobile not-found message should name the number: %q", domainErr.Message)
	}
}

func TestLookupStoreFailure(t *testing.T) {
	store := &fakeStatusStore{err: errors.New("connection refused")}
	svc := newStatusService(store)

	_, err := svc.Lookup(context.Background(), "TKT-a1b2c3d4", "en")
	if !errorutil.IsCode(err, "SERVICE_UNAVAILABLE") {
		t.Fatalf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestLookupIdempotent(t *testing.T) {
	grievance := sampleGrievance()
	store := &fakeStatusStore{byTicket: map[string]*domain.Grievance{"tkt-a1b2c3d4": grievance}}
	svc := newStatusService(store)

	before := *grievance
	for i := 0; i < 3; i++ {
		if _, err := svc.Lookup(context.Background(), "TKT-a1b2c3d4", "en"); err != nil {
			t.Fatalf("Lookup #%d: %v", i, err)
		}
	}
	if *grievance != before {
		t.Fatal("lookup mutated the stored record")
	}
}
