package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// SessionStore persists conversation sessions and their chat history.
// Get returns (nil, nil) when no session exists for the identifier.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.ConversationSession, error)
	Save(ctx context.Context, session *domain.ConversationSession) error
	Delete(ctx context.Context, sessionID string) error
	AppendHistory(ctx context.Context, sessionID string, entry domain.HistoryEntry) error
	History(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error)
}

var sessionAdjectives = []string{"sharp", "sleepy", "fluffy", "dazzling", "crazy", "bold", "happy", "silly"}
var sessionAnimals = []string{"lion", "swan", "tiger", "elephant", "zebra", "giraffe", "panda", "koala"}

// NewSessionID generates an opaque, human-distinguishable session identifier.
func NewSessionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("%s_%s_%s_%d",
		sessionAdjectives[rand.Intn(len(sessionAdjectives))],
		sessionAnimals[rand.Intn(len(sessionAnimals))],
		hex,
		time.Now().Unix())
}

// RedisSessionStore keeps sessions in Redis with a TTL, and per-session
// history in a capped list.
type RedisSessionStore struct {
	client       *redis.Client
	ttl          time.Duration
	historyLimit int
}

// NewRedisSessionStore constructs the store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration, historyLimit int) *RedisSessionStore {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &RedisSessionStore{client: client, ttl: ttl, historyLimit: historyLimit}
}

func sessionKey(id string) string { return "chat:session:" + id }
func historyKey(id string) string { return "chat:history:" + id }

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*domain.ConversationSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.ConversationSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *domain.ConversationSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.SessionID), raw, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID), historyKey(sessionID)).Err()
}

func (s *RedisSessionStore) AppendHistory(ctx context.Context, sessionID string, entry domain.HistoryEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, historyKey(sessionID), raw)
	pipe.LTrim(ctx, historyKey(sessionID), 0, int64(s.historyLimit-1))
	pipe.Expire(ctx, historyKey(sessionID), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisSessionStore) History(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	raws, err := s.client.LRange(ctx, historyKey(sessionID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]domain.HistoryEntry, 0, len(raws))
	for _, raw := range raws {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// MemorySessionStore is the fallback store used when Redis is unreachable.
type MemorySessionStore struct {
	mu           sync.Mutex
	sessions     map[string]domain.ConversationSession
	history      map[string][]domain.HistoryEntry
	historyLimit int
}

// NewMemorySessionStore constructs the in-memory store.
func NewMemorySessionStore(historyLimit int) *MemorySessionStore {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &MemorySessionStore{
		sessions:     make(map[string]domain.ConversationSession),
		history:      make(map[string][]domain.HistoryEntry),
		historyLimit: historyLimit,
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*domain.ConversationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := session
	return &copied, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *domain.ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.history, sessionID)
	return nil
}

func (s *MemorySessionStore) AppendHistory(ctx context.Context, sessionID string, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append([]domain.HistoryEntry{entry}, s.history[sessionID]...)
	if len(entries) > s.historyLimit {
		entries = entries[:s.historyLimit]
	}
	s.history[sessionID] = entries
	return nil
}

func (s *MemorySessionStore) History(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.history[sessionID]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	result := make([]domain.HistoryEntry, len(entries))
	copy(result, entries)
	return result, nil
}
