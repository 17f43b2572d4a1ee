package chat

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/internal/service"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

type fakeResolver struct {
	summaries map[string]*service.StatusSummary
	failWith  error
	calls     []string
}

func (f *fakeResolver) Lookup(ctx context.Context, identifier, language string) (*service.StatusSummary, error) {
	f.calls = append(f.calls, identifier)
	if f.failWith != nil {
		return nil, f.failWith
	}
	normalized, kind := service.ClassifyIdentifier(identifier)
	if kind == service.IdentifierUnknown {
		return nil, errorutil.NewValidationError("Please provide a valid Ticket ID or 10-digit mobile number.", nil)
	}
	if summary, ok := f.summaries[normalized]; ok {
		return summary, nil
	}
	return nil, errorutil.NewNotFound("Sorry, no ticket found with the provided ID. Please check your Ticket ID and try again.", nil)
}

type fakeSubmitter struct {
	inputs []service.RatingInput
	err    error
}

func (f *fakeSubmitter) Submit(ctx context.Context, input service.RatingInput) (*domain.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, input)
	return &domain.Rating{Rating: input.Rating, SessionID: input.SessionID, TicketID: input.TicketID}, nil
}

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{
		DefaultLanguage:  "en",
		HistoryLimit:     50,
		RegistrationLink: "#grievance",
		TrackTicketLink:  "#view-ticket",
	}
}

func newTestMachine(resolver *fakeResolver, submitter *fakeSubmitter) (*Machine, *MemorySessionStore) {
	if resolver == nil {
		resolver = &fakeResolver{}
	}
	if submitter == nil {
		submitter = &fakeSubmitter{}
	}
	store := NewMemorySessionStore(50)
	machine := NewMachine(resolver, submitter, locale.NewRegistry(), store, testChatConfig(), zap.NewNop())
	return machine, store
}

func knownSummary() *service.StatusSummary {
	return &service.StatusSummary{
		Ticket:      "TKT-a1b2c3d4",
		Status:      domain.GrievanceStatusInProgress,
		CreatedDate: "05-Mar-2026",
		Kind:        service.IdentifierTicket,
		Message:     "The current status of your Ticket is as follows:\nTicket ID: TKT-a1b2c3d4\nStatus: In Progress",
	}
}

func TestGreetingCreatesSession(t *testing.T) {
	machine, _ := newTestMachine(nil, nil)

	result, err := machine.HandleMessage(context.Background(), "", "hello", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.SessionID == "" {
		t.Fatal("no session id assigned")
	}
	if result.Session.State != domain.ChatStateStart {
		t.Fatalf("state = %q", result.Session.State)
	}
	if !strings.Contains(result.Reply, "Hello!") || !strings.Contains(result.Reply, "Question 1") {
		t.Fatalf("reply = %q", result.Reply)
	}
}

func TestStartYesEndsWithRegistrationLink(t *testing.T) {
	machine, _ := newTestMachine(nil, nil)

	result, err := machine.HandleMessage(context.Background(), "", "yes", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateEnd {
		t.Fatalf("state = %q, want end", result.Session.State)
	}
	if !strings.Contains(result.Reply, "#grievance") {
		t.Fatalf("registration link missing: %q", result.Reply)
	}
	if !strings.Contains(result.Reply, "Thank you") {
		t.Fatalf("closing message missing: %q", result.Reply)
	}
}

func TestStartNoEnds(t *testing.T) {
	machine, _ := newTestMachine(nil, nil)

	result, err := machine.HandleMessage(context.Background(), "", "no", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateEnd {
		t.Fatalf("state = %q", result.Session.State)
	}
}

func TestStatusIntentFlow(t *testing.T) {
	resolver := &fakeResolver{summaries: map[string]*service.StatusSummary{"TKT-a1b2c3d4": knownSummary()}}
	machine, _ := newTestMachine(resolver, nil)
	ctx := context.Background()

	result, err := machine.HandleMessage(ctx, "", "check status", "en")
	if err != nil {
		t.Fatalf("intent turn: %v", err)
	}
	sid := result.Session.SessionID
	if result.Session.State != domain.ChatStateQuestion2 {
		t.Fatalf("state = %q, want question2", result.Session.State)
	}

	result, err = machine.HandleMessage(ctx, sid, "yes", "en")
	if err != nil {
		t.Fatalf("yes turn: %v", err)
	}
	if result.Session.State != domain.ChatStateAwaitingTicketID {
		t.Fatalf("state = %q, want awaiting_ticket_id", result.Session.State)
	}
	if !strings.Contains(result.Reply, "Ticket ID") {
		t.Fatalf("prompt missing: %q", result.Reply)
	}

	result, err = machine.HandleMessage(ctx, sid, "TKT-a1b2c3d4", "en")
	if err != nil {
		t.Fatalf("lookup turn: %v", err)
	}
	if result.Session.State != domain.ChatStateQuestion3 {
		t.Fatalf("state = %q, want question3", result.Session.State)
	}
	if result.Session.PendingTicketID != "TKT-a1b2c3d4" {
		t.Fatalf("pending ticket = %q", result.Session.PendingTicketID)
	}
	for _, want := range []string{"In Progress", "#view-ticket", "feedback"} {
		if !strings.Contains(strings.ToLower(result.Reply), strings.ToLower(want)) {
			t.Errorf("reply missing %q:\n%s", want, result.Reply)
		}
	}
}

func TestInvalidIdentifierReprompts(t *testing.T) {
	resolver := &fakeResolver{}
	machine, _ := newTestMachine(resolver, nil)
	ctx := context.Background()

	result, err := machine.HandleMessage(ctx, "", "check status", "en")
	if err != nil {
		t.Fatalf("intent turn: %v", err)
	}
	sid := result.Session.SessionID
	if _, err = machine.HandleMessage(ctx, sid, "yes", "en"); err != nil {
		t.Fatalf("yes turn: %v", err)
	}

	// Repeated garbage keeps re-prompting without a retry cap.
	for i := 0; i < 3; i++ {
		result, err = machine.HandleMessage(ctx, sid, "garbage input", "en")
		if err != nil {
			t.Fatalf("garbage turn #%d: %v", i, err)
		}
		if result.Session.State != domain.ChatStateAwaitingTicketID {
			t.Fatalf("state = %q, want awaiting_ticket_id", result.Session.State)
		}
		if !strings.Contains(result.Reply, "valid Ticket ID") {
			t.Fatalf("validation message missing: %q", result.Reply)
		}
	}
}

func TestTicketNotFoundReprompts(t *testing.T) {
	resolver := &fakeResolver{}
	machine, _ := newTestMachine(resolver, nil)
	ctx := context.Background()

	result, err := machine.HandleMessage(ctx, "", "TKT-ffffffff", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateAwaitingTicketID {
		t.Fatalf("state = %q", result.Session.State)
	}
	if !strings.Contains(result.Reply, "no ticket found") {
		t.Fatalf("reply = %q", result.Reply)
	}
}

func TestEmbeddedIdentifierPreemption(t *testing.T) {
	resolver := &fakeResolver{summaries: map[string]*service.StatusSummary{"TKT-a1b2c3d4": knownSummary()}}
	machine, _ := newTestMachine(resolver, nil)

	result, err := machine.HandleMessage(context.Background(), "", "please check TKT-a1b2c3d4 for me", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateQuestion3 {
		t.Fatalf("state = %q, want question3", result.Session.State)
	}
	if len(resolver.calls) != 1 || resolver.calls[0] != "TKT-a1b2c3d4" {
		t.Fatalf("resolver calls = %v", resolver.calls)
	}
}

func TestRatingFlow(t *testing.T) {
	resolver := &fakeResolver{summaries: map[string]*service.StatusSummary{"TKT-a1b2c3d4": knownSummary()}}
	submitter := &fakeSubmitter{}
	machine, _ := newTestMachine(resolver, submitter)
	ctx := context.Background()

	result, err := machine.HandleMessage(ctx, "", "TKT-a1b2c3d4", "en")
	if err != nil {
		t.Fatalf("lookup turn: %v", err)
	}
	sid := result.Session.SessionID

	result, err = machine.HandleMessage(ctx, sid, "yes", "en")
	if err != nil {
		t.Fatalf("yes turn: %v", err)
	}
	if result.Session.State != domain.ChatStateAwaitingRating || !result.ShowRating {
		t.Fatalf("state = %q, showRating = %v", result.Session.State, result.ShowRating)
	}

	result, err = machine.HandleMessage(ctx, sid, "not a number", "en")
	if err != nil {
		t.Fatalf("invalid rating turn: %v", err)
	}
	if result.Session.State != domain.ChatStateAwaitingRating {
		t.Fatalf("state = %q, want awaiting_rating", result.Session.State)
	}

	result, err = machine.HandleMessage(ctx, sid, "4", "en")
	if err != nil {
		t.Fatalf("rating turn: %v", err)
	}
	if result.Session.State != domain.ChatStateEnd {
		t.Fatalf("state = %q, want end", result.Session.State)
	}
	if len(submitter.inputs) != 1 {
		t.Fatalf("submissions = %d", len(submitter.inputs))
	}
	if submitter.inputs[0].Rating != 4 || submitter.inputs[0].TicketID != "TKT-a1b2c3d4" {
		t.Fatalf("submitted = %+v", submitter.inputs[0])
	}
	if result.Session.PendingTicketID != "" {
		t.Fatal("pending ticket not cleared after rating")
	}
}

func TestRatingDevanagariDigits(t *testing.T) {
	submitter := &fakeSubmitter{}
	machine, store := newTestMachine(nil, submitter)
	ctx := context.Background()

	session := &domain.ConversationSession{
		SessionID: "test_session",
		Language:  "mr",
		State:     domain.ChatStateAwaitingRating,
	}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result, err := machine.HandleMessage(ctx, "test_session", "५", "mr")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateEnd {
		t.Fatalf("state = %q", result.Session.State)
	}
	if len(submitter.inputs) != 1 || submitter.inputs[0].Rating != 5 {
		t.Fatalf("submissions = %+v", submitter.inputs)
	}
}

func TestRatingSubmitFailureKeepsState(t *testing.T) {
	submitter := &fakeSubmitter{err: errorutil.NewServiceUnavailable("Failed to save your rating. Please try again.", nil)}
	machine, store := newTestMachine(nil, submitter)
	ctx := context.Background()

	session := &domain.ConversationSession{
		SessionID: "test_session",
		Language:  "en",
		State:     domain.ChatStateAwaitingRating,
	}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result, err := machine.HandleMessage(ctx, "test_session", "3", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateAwaitingRating {
		t.Fatalf("state = %q, want awaiting_rating", result.Session.State)
	}
	if result.Session.SelectedRating != 3 {
		t.Fatalf("selected rating = %d, want retained 3", result.Session.SelectedRating)
	}
	if !strings.Contains(result.Reply, "Failed to save") {
		t.Fatalf("reply = %q", result.Reply)
	}
}

func TestLanguageSwitchResets(t *testing.T) {
	machine, _ := newTestMachine(nil, nil)
	ctx := context.Background()

	result, err := machine.HandleMessage(ctx, "", "check status", "en")
	if err != nil {
		t.Fatalf("intent turn: %v", err)
	}
	sid := result.Session.SessionID

	result, err = machine.HandleMessage(ctx, sid, "whatever", "mr")
	if err != nil {
		t.Fatalf("switch turn: %v", err)
	}
	if result.Session.Language != "mr" {
		t.Fatalf("language = %q", result.Session.Language)
	}
	if result.Session.State != domain.ChatStateStart {
		t.Fatalf("state = %q, want start after switch", result.Session.State)
	}
	if !strings.Contains(result.Reply, "भाषा") {
		t.Fatalf("reply = %q", result.Reply)
	}
}

func TestSubmitRatingUsesPendingTicket(t *testing.T) {
	submitter := &fakeSubmitter{}
	machine, store := newTestMachine(nil, submitter)
	ctx := context.Background()

	session := &domain.ConversationSession{
		SessionID:       "test_session",
		Language:        "en",
		State:           domain.ChatStateAwaitingRating,
		PendingTicketID: "TKT-a1b2c3d4",
	}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result, err := machine.SubmitRating(ctx, "test_session", 5, "en", "", "great service")
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if result.Session.State != domain.ChatStateEnd {
		t.Fatalf("state = %q", result.Session.State)
	}
	if len(submitter.inputs) != 1 {
		t.Fatalf("submissions = %d", len(submitter.inputs))
	}
	got := submitter.inputs[0]
	if got.TicketID != "TKT-a1b2c3d4" || got.FeedbackText != "great service" {
		t.Fatalf("submitted = %+v", got)
	}
}

func TestResetClearIssuesNewSession(t *testing.T) {
	machine, store := newTestMachine(nil, nil)
	ctx := context.Background()

	first, err := machine.HandleMessage(ctx, "", "check status", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	oldID := first.Session.SessionID

	result, err := machine.Reset(ctx, oldID, "en", true)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if result.Session.SessionID == oldID {
		t.Fatal("clear kept the old session id")
	}
	if result.Session.State != domain.ChatStateStart {
		t.Fatalf("state = %q", result.Session.State)
	}

	old, err := store.Get(ctx, oldID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if old != nil {
		t.Fatal("old session not deleted")
	}
}

func TestRestartKeepsSession(t *testing.T) {
	machine, _ := newTestMachine(nil, nil)
	ctx := context.Background()

	first, err := machine.HandleMessage(ctx, "", "check status", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	result, err := machine.Reset(ctx, first.Session.SessionID, "en", false)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if result.Session.SessionID != first.Session.SessionID {
		t.Fatal("restart changed the session id")
	}
	if result.Session.State != domain.ChatStateStart {
		t.Fatalf("state = %q", result.Session.State)
	}
}

func TestFallbackHelp(t *testing.T) {
	machine, _ := newTestMachine(nil, nil)

	result, err := machine.HandleMessage(context.Background(), "", "tell me a joke", "en")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if result.Session.State != domain.ChatStateStart {
		t.Fatalf("state = %q", result.Session.State)
	}
	if !strings.Contains(result.Reply, "'YES' or 'NO'") {
		t.Fatalf("reply = %q", result.Reply)
	}
}
