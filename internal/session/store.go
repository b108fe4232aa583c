package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/antonkarev/healthhub/internal/domain"
	apperrors "github.com/antonkarev/healthhub/internal/errors"
	"github.com/antonkarev/healthhub/internal/logger"
	"github.com/antonkarev/healthhub/internal/storage"
)

// History bounds. Oldest entries are dropped on overflow so a long-lived
// session cannot grow without limit.
const (
	maxThreads     = 50
	maxAssessments = 100
)

// TokenSink receives the auth token so outgoing requests carry it. The API
// gateway client satisfies this.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// Store is the single owner of client state: authentication, chat threads
// and assessment history. All mutations go through its methods, and it is
// the only component allowed to touch persistent local storage.
type Store struct {
	authAPI domain.AuthAPI
	kv      storage.KV
	tokens  TokenSink

	mu              sync.RWMutex
	user            *domain.User
	authenticated   bool
	currentThreadID string
	threads         []domain.ChatThread
	assessments     []domain.HealthAssessment
}

// New creates an unauthenticated store.
func New(authAPI domain.AuthAPI, kv storage.KV, tokens TokenSink) *Store {
	return &Store{
		authAPI: authAPI,
		kv:      kv,
		tokens:  tokens,
	}
}

// Login validates credentials remotely. On success the user, the
// authenticated flag and the persisted token+user change together; on any
// failure nothing changes.
func (s *Store) Login(ctx context.Context, creds domain.Credentials) error {
	resp, err := s.authAPI.Login(ctx, creds)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

// Register creates the account server-side first, then establishes the
// session exactly like Login.
func (s *Store) Register(ctx context.Context, reg domain.Registration) error {
	resp, err := s.authAPI.Register(ctx, reg)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

func (s *Store) establish(ctx context.Context, resp *domain.AuthResponse) error {
	// An empty token could be persisted but never hydrated back, so it is
	// rejected up front.
	if resp.Token == "" {
		return apperrors.New(apperrors.ErrorTypeServer, "NO_TOKEN", "Authentication response did not include a token")
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "Failed to encode user")
	}

	// Persist first. If either write fails, both keys are removed and memory
	// is left untouched, so authenticated=true never coexists with a missing
	// persisted token.
	if err := s.kv.Set(ctx, storage.KeyAuthToken, resp.Token); err != nil {
		_ = s.kv.Delete(ctx, storage.KeyAuthToken, storage.KeyUser)
		return apperrors.NewStorageError(err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, string(userJSON)); err != nil {
		_ = s.kv.Delete(ctx, storage.KeyAuthToken, storage.KeyUser)
		return apperrors.NewStorageError(err)
	}

	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()

	s.tokens.SetToken(resp.Token)
	logger.Info("Session established", "user_id", resp.User.ID, "role", resp.User.Role)
	return nil
}

// Logout clears the session, chat threads and assessment history from
// memory and persistent storage together. Calling it twice is a no-op the
// second time.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.user = nil
	s.authenticated = false
	s.currentThreadID = ""
	s.threads = nil
	s.assessments = nil
	s.mu.Unlock()

	s.tokens.ClearToken()
	if err := s.kv.Delete(ctx, storage.KeyAuthToken, storage.KeyUser); err != nil {
		return apperrors.NewStorageError(err)
	}
	if wasAuthenticated {
		logger.Info("Session cleared")
	}
	return nil
}

// InitializeAuth hydrates the session from persistent storage on process
// start, so a restart does not need a network call. Corrupt or partial data
// is discarded and the store stays logged out.
func (s *Store) InitializeAuth(ctx context.Context) {
	token, tokenErr := s.kv.Get(ctx, storage.KeyAuthToken)
	userJSON, userErr := s.kv.Get(ctx, storage.KeyUser)

	if tokenErr != nil || userErr != nil || token == "" {
		// One key without the other is as unusable as none. Clear both.
		if tokenErr == nil || userErr == nil {
			_ = s.kv.Delete(ctx, storage.KeyAuthToken, storage.KeyUser)
		}
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		logger.Warn("Discarding corrupt persisted session", "error", err)
		_ = s.kv.Delete(ctx, storage.KeyAuthToken, storage.KeyUser)
		return
	}

	s.mu.Lock()
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()

	s.tokens.SetToken(token)
	logger.Info("Session restored from storage", "user_id", user.ID)
}

// IsAuthenticated reports whether a user and token are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// SetCurrentThread makes the given thread the active conversation.
func (s *Store) SetCurrentThread(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentThreadID = id
}

// CurrentThreadID returns the active conversation id, empty when none.
func (s *Store) CurrentThreadID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentThreadID
}

// AddThread appends a thread, preserving insertion order. No de-duplication
// by id is attempted. The oldest thread is dropped at the cap.
func (s *Store) AddThread(t domain.ChatThread) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads = append(s.threads, t)
	if len(s.threads) > maxThreads {
		for _, evicted := range s.threads[:len(s.threads)-maxThreads] {
			if evicted.ID == s.currentThreadID {
				s.currentThreadID = ""
			}
		}
		s.threads = s.threads[len(s.threads)-maxThreads:]
	}
}

// Thread returns a copy of the thread with the given id.
func (s *Store) Thread(id string) (domain.ChatThread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.threads {
		if t.ID == id {
			out := t
			out.Messages = append([]domain.Message(nil), t.Messages...)
			return out, true
		}
	}
	return domain.ChatThread{}, false
}

// Threads returns a snapshot of all threads in insertion order.
func (s *Store) Threads() []domain.ChatThread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatThread, len(s.threads))
	for i, t := range s.threads {
		out[i] = t
		out[i].Messages = append([]domain.Message(nil), t.Messages...)
	}
	return out
}

// AppendMessage appends a message to a thread. Threads only ever grow.
func (s *Store) AppendMessage(threadID string, m domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.threads {
		if s.threads[i].ID == threadID {
			s.threads[i].Messages = append(s.threads[i].Messages, m)
			return nil
		}
	}
	return apperrors.New(apperrors.ErrorTypeInternal, "NO_THREAD", "Chat thread not found")
}

// AdoptThreadID renames a locally created thread to the id the server
// assigned, updating the current-thread pointer if it referenced the old id.
func (s *Store) AdoptThreadID(oldID, newID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.threads {
		if s.threads[i].ID == oldID {
			s.threads[i].ID = newID
			break
		}
	}
	if s.currentThreadID == oldID {
		s.currentThreadID = newID
	}
}

// RemoveThread deletes a thread locally. The backend has no delete endpoint,
// so nothing is sent. Clears the current-thread pointer when it names the
// removed thread.
func (s *Store) RemoveThread(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.threads {
		if s.threads[i].ID == id {
			s.threads = append(s.threads[:i], s.threads[i+1:]...)
			break
		}
	}
	if s.currentThreadID == id {
		s.currentThreadID = ""
	}
}

// AddAssessment appends to the assessment history. The oldest entry is
// dropped at the cap.
func (s *Store) AddAssessment(a domain.HealthAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments = append(s.assessments, a)
	if len(s.assessments) > maxAssessments {
		s.assessments = s.assessments[len(s.assessments)-maxAssessments:]
	}
}

// Assessments returns a snapshot of the assessment history in insertion
// order.
func (s *Store) Assessments() []domain.HealthAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.HealthAssessment(nil), s.assessments...)
}
