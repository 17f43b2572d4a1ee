package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/locale"
	"github.com/spec-kit/grievance-service/internal/service"
	"github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

// StatusResolver resolves identifiers to status summaries.
type StatusResolver interface {
	Lookup(ctx context.Context, identifier, language string) (*service.StatusSummary, error)
}

// RatingSubmitter records satisfaction ratings.
type RatingSubmitter interface {
	Submit(ctx context.Context, input service.RatingInput) (*domain.Rating, error)
}

// TurnResult is what one processed user action yields.
type TurnResult struct {
	Session    *domain.ConversationSession
	Reply      string
	ShowRating bool
}

// Machine sequences the conversation. Every transition takes the session as
// an explicit value and returns the updated one; nothing is held in package
// state, so any number of sessions can run concurrently.
type Machine struct {
	status   StatusResolver
	ratings  RatingSubmitter
	locales  *locale.Registry
	sessions SessionStore
	cfg      config.ChatConfig
	logger   *zap.Logger
}

// NewMachine constructs the state machine.
func NewMachine(status StatusResolver, ratings RatingSubmitter, locales *locale.Registry, sessions SessionStore, cfg config.ChatConfig, logger *zap.Logger) *Machine {
	return &Machine{
		status:   status,
		ratings:  ratings,
		locales:  locales,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// HandleMessage processes one free-text user turn.
func (m *Machine) HandleMessage(ctx context.Context, sessionID, text, language string) (*TurnResult, error) {
	text = strings.TrimSpace(text)
	session, err := m.loadSession(ctx, sessionID, language)
	if err != nil {
		return nil, err
	}

	// A language change restarts the scripted welcome sequence but keeps
	// the session identifier.
	if session.Language != language && m.locales.IsSupported(language) {
		session.Language = language
		resetSession(session)
		catalog := m.locales.Catalog(language)
		reply := catalog.Msg("language_switched") + "\n\n" + catalog.Msg("welcome_script")
		return m.finishTurn(ctx, session, text, reply, false)
	}

	catalog := m.locales.Catalog(session.Language)

	// Identifier pre-emption: an embedded ticket ID or mobile number jumps
	// straight into a status lookup from any state.
	if identifier, _, ok := service.DetectIdentifier(text); ok {
		session.State = domain.ChatStateAwaitingTicketID
		reply := m.resolveIdentifier(ctx, session, catalog, identifier)
		return m.finishTurn(ctx, session, text, reply, false)
	}

	if session.State == domain.ChatStateAwaitingTicketID {
		reply := m.resolveIdentifier(ctx, session, catalog, text)
		return m.finishTurn(ctx, session, text, reply, false)
	}

	if key, ok := catalog.MatchGreeting(text); ok {
		reply := strings.TrimSpace(catalog.Msg(key) + " " + catalog.Msg("welcome"))
		reply += "\n\n" + catalog.Msg("welcome_script")
		return m.finishTurn(ctx, session, text, reply, false)
	}

	if session.State == domain.ChatStateAwaitingRating {
		reply, showRating := m.handleRatingInput(ctx, session, catalog, text)
		return m.finishTurn(ctx, session, text, reply, showRating)
	}

	answer := catalog.MatchYesNo(text)
	switch session.State {
	case domain.ChatStateStart:
		if answer == "yes" {
			session.State = domain.ChatStateEnd
			reply := catalog.Msg("registration_intro") + "\n\n" + m.cfg.RegistrationLink +
				"\n\n" + catalog.Msg("thank_you")
			return m.finishTurn(ctx, session, text, reply, false)
		}
		if answer == "no" {
			session.State = domain.ChatStateEnd
			return m.finishTurn(ctx, session, text, catalog.Msg("thank_you"), false)
		}
	case domain.ChatStateQuestion2:
		if answer == "yes" {
			session.State = domain.ChatStateAwaitingTicketID
			return m.finishTurn(ctx, session, text, m.identifierPrompt(catalog), false)
		}
		if answer == "no" {
			session.State = domain.ChatStateQuestion3
			return m.finishTurn(ctx, session, text, catalog.Msg("feedback_script"), false)
		}
	case domain.ChatStateQuestion3:
		if answer == "yes" {
			session.State = domain.ChatStateAwaitingRating
			return m.finishTurn(ctx, session, text, catalog.Msg("rating_script"), true)
		}
		if answer == "no" {
			session.State = domain.ChatStateEnd
			return m.finishTurn(ctx, session, text, catalog.Msg("thank_you"), false)
		}
	}

	// Ordered keyword intent groups; the first match drives the transition.
	switch matchIntent(catalog, text) {
	case locale.IntentStatus:
		session.State = domain.ChatStateQuestion2
		return m.finishTurn(ctx, session, text, catalog.Msg("status_script"), false)
	case locale.IntentFeedback:
		session.State = domain.ChatStateQuestion3
		return m.finishTurn(ctx, session, text, catalog.Msg("feedback_script"), false)
	case locale.IntentRegister:
		session.State = domain.ChatStateStart
		return m.finishTurn(ctx, session, text, catalog.Msg("register_script"), false)
	}

	reply := catalog.Msg("help_text") + "\n\n" + catalog.Msg("welcome_script")
	return m.finishTurn(ctx, session, text, reply, false)
}

// SubmitRating records a rating for the session and completes the
// conversation. An explicit ticket overrides the pending one; with neither,
// the rating is stored as general service feedback.
func (m *Machine) SubmitRating(ctx context.Context, sessionID string, rating int, language, ticketID, feedback string) (*TurnResult, error) {
	session, err := m.loadSession(ctx, sessionID, language)
	if err != nil {
		return nil, err
	}
	catalog := m.locales.Catalog(session.Language)

	if ticketID == "" {
		ticketID = session.PendingTicketID
	}
	session.SelectedRating = rating

	if _, err := m.ratings.Submit(ctx, service.RatingInput{
		Rating:       rating,
		SessionID:    session.SessionID,
		Language:     session.Language,
		TicketID:     ticketID,
		FeedbackText: feedback,
	}); err != nil {
		// Retryable: the selected rating survives so the user can
		// resubmit without re-rating.
		if saveErr := m.sessions.Save(ctx, session); saveErr != nil {
			m.logger.Warn("session save failed", zap.Error(saveErr))
		}
		return nil, err
	}

	session.State = domain.ChatStateEnd
	session.PendingTicketID = ""
	session.SelectedRating = 0
	reply := catalog.Msg("rating_thank_you")
	return m.finishTurn(ctx, session, fmt.Sprintf("rating:%d", rating), reply, false)
}

// SwitchLanguage resets the conversation in the new language, preserving the
// session identifier.
func (m *Machine) SwitchLanguage(ctx context.Context, sessionID, language string) (*TurnResult, error) {
	if !m.locales.IsSupported(language) {
		return nil, errorutil.NewValidationError("unsupported language", map[string]any{"language": language})
	}
	session, err := m.loadSession(ctx, sessionID, language)
	if err != nil {
		return nil, err
	}
	session.Language = language
	resetSession(session)
	catalog := m.locales.Catalog(language)
	reply := catalog.Msg("language_switched") + "\n\n" + catalog.Msg("welcome_script")
	return m.finishTurn(ctx, session, "", reply, false)
}

// Reset restarts the conversation. Clear issues a fresh session identifier;
// Restart keeps it.
func (m *Machine) Reset(ctx context.Context, sessionID, language string, clear bool) (*TurnResult, error) {
	session, err := m.loadSession(ctx, sessionID, language)
	if err != nil {
		return nil, err
	}
	if clear {
		if err := m.sessions.Delete(ctx, session.SessionID); err != nil {
			m.logger.Warn("session delete failed", zap.Error(err))
		}
		session = &domain.ConversationSession{
			SessionID: NewSessionID(),
			Language:  session.Language,
			State:     domain.ChatStateStart,
		}
	} else {
		resetSession(session)
	}
	catalog := m.locales.Catalog(session.Language)
	return m.finishTurn(ctx, session, "", catalog.Msg("welcome_script"), false)
}

// History returns the retained exchanges for a session, newest first.
func (m *Machine) History(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	return m.sessions.History(ctx, sessionID, limit)
}

func (m *Machine) resolveIdentifier(ctx context.Context, session *domain.ConversationSession, catalog *locale.Catalog, identifier string) string {
	summary, err := m.status.Lookup(ctx, identifier, session.Language)
	if err != nil {
		// Malformed, missing and unreachable all re-prompt; they differ
		// only in the message shown.
		domainErr := errorutil.ToDomainError(err)
		session.State = domain.ChatStateAwaitingTicketID
		return domainErr.Message + "\n\n" + m.identifierPrompt(catalog)
	}

	session.PendingTicketID = summary.Ticket
	session.State = domain.ChatStateQuestion3

	reply := summary.Message
	if m.cfg.TrackTicketLink != "" {
		reply += "\n\n" + fmt.Sprintf(catalog.Msg("track_ticket_help"), m.cfg.TrackTicketLink)
	}
	reply += "\n\n" + catalog.Msg("feedback_script")
	return reply
}

func (m *Machine) handleRatingInput(ctx context.Context, session *domain.ConversationSession, catalog *locale.Catalog, text string) (string, bool) {
	rating, ok := parseRating(text)
	if !ok {
		return catalog.Msg("invalid_rating") + "\n\n" + catalog.Msg("rating_script"), true
	}
	session.SelectedRating = rating
	if _, err := m.ratings.Submit(ctx, service.RatingInput{
		Rating:    rating,
		SessionID: session.SessionID,
		Language:  session.Language,
		TicketID:  session.PendingTicketID,
	}); err != nil {
		return catalog.Msg("rating_failed"), true
	}
	session.State = domain.ChatStateEnd
	session.PendingTicketID = ""
	session.SelectedRating = 0
	return catalog.Msg("rating_thank_you"), false
}

func (m *Machine) identifierPrompt(catalog *locale.Catalog) string {
	return catalog.Msg("ticket_id_prompt") + "\n" + catalog.Msg("mobile_prompt")
}

func (m *Machine) loadSession(ctx context.Context, sessionID, language string) (*domain.ConversationSession, error) {
	if !m.locales.IsSupported(language) {
		language = m.cfg.DefaultLanguage
	}
	if sessionID != "" {
		session, err := m.sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, errorutil.NewServiceUnavailable("session store unavailable", err)
		}
		if session != nil {
			return session, nil
		}
	}
	if sessionID == "" {
		sessionID = NewSessionID()
	}
	return &domain.ConversationSession{
		SessionID: sessionID,
		Language:  language,
		State:     domain.ChatStateStart,
	}, nil
}

func (m *Machine) finishTurn(ctx context.Context, session *domain.ConversationSession, userText, reply string, showRating bool) (*TurnResult, error) {
	session.UpdatedAt = time.Now()
	if err := m.sessions.Save(ctx, session); err != nil {
		return nil, errorutil.NewServiceUnavailable("session store unavailable", err)
	}
	if userText != "" {
		entry := domain.HistoryEntry{
			User:      userText,
			Assistant: reply,
			Language:  session.Language,
			Timestamp: session.UpdatedAt,
		}
		if err := m.sessions.AppendHistory(ctx, session.SessionID, entry); err != nil {
			m.logger.Warn("history append failed", zap.String("session_id", session.SessionID), zap.Error(err))
		}
	}
	m.logger.Info("chat turn",
		zap.String("session_id", session.SessionID),
		zap.String("language", session.Language),
		zap.String("state", string(session.State)))
	return &TurnResult{Session: session, Reply: reply, ShowRating: showRating}, nil
}

func resetSession(session *domain.ConversationSession) {
	session.State = domain.ChatStateStart
	session.PendingTicketID = ""
	session.SelectedRating = 0
}

func matchIntent(catalog *locale.Catalog, text string) locale.Intent {
	lowered := strings.ToLower(text)
	for _, group := range catalog.IntentGroups {
		for _, token := range group.Tokens {
			if strings.Contains(lowered, token) {
				return group.Intent
			}
		}
	}
	return ""
}

var devanagariDigits = strings.NewReplacer(
	"०", "0", "१", "1", "२", "2", "३", "3", "४", "4",
	"५", "5", "६", "6", "७", "7", "८", "8", "९", "9",
)

func parseRating(text string) (int, bool) {
	normalized := strings.TrimSpace(devanagariDigits.Replace(text))
	rating, err := strconv.Atoi(normalized)
	if err != nil || rating < 1 || rating > 5 {
		return 0, false
	}
	return rating, true
}
