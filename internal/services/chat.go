package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/domain"
	apperrors "github.com/antonkarev/healthhub/internal/errors"
	"github.com/antonkarev/healthhub/internal/logger"
	"github.com/antonkarev/healthhub/internal/session"
)

// localThreadPrefix marks threads created client-side before the server has
// assigned an id. Local ids are never sent over the wire.
const localThreadPrefix = "local-"

const chatFailureReply = "Sorry, I encountered an error processing your message. Please ensure the backend API is running and try again."

// ChatService maintains the conversation with the assistant. Sends are
// optimistic: the user message lands in the thread immediately, and a
// failure appends a synthetic assistant message instead of dropping the
// turn.
type ChatService struct {
	api   *apiclient.Client
	sess  *session.Store
	guard inflightGuard
}

func NewChatService(api *apiclient.Client, sess *session.Store) *ChatService {
	return &ChatService{api: api, sess: sess}
}

// NewThread creates an empty local thread and makes it current.
func (s *ChatService) NewThread() domain.ChatThread {
	t := domain.ChatThread{
		ID:        localThreadPrefix + uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.sess.AddThread(t)
	s.sess.SetCurrentThread(t.ID)
	return t
}

// DeleteThread removes a thread locally. The backend exposes no delete
// endpoint, so nothing is sent.
func (s *ChatService) DeleteThread(id string) {
	s.sess.RemoveThread(id)
}

// Waiting reports whether a reply is currently outstanding.
func (s *ChatService) Waiting() bool {
	return s.guard.isActive()
}

// Send appends the user message to the current thread, calls the backend
// and appends the reply. When no thread exists yet, the server's thread id
// from the first successful response becomes the current thread id.
func (s *ChatService) Send(ctx context.Context, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("Message cannot be empty")
	}

	if err := s.guard.begin(); err != nil {
		return nil, err
	}
	defer s.guard.end()

	threadID := s.sess.CurrentThreadID()
	if threadID == "" {
		threadID = s.NewThread().ID
	}

	userMsg := domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
	if err := s.sess.AppendMessage(threadID, userMsg); err != nil {
		return nil, err
	}

	payload := map[string]any{"message": content}
	if !strings.HasPrefix(threadID, localThreadPrefix) {
		payload["thread_id"] = threadID
	}

	var resp struct {
		Assistant string `json:"assistant"`
		ThreadID  string `json:"thread_id"`
	}
	if err := s.api.PostJSON(ctx, "/chat", payload, &resp); err != nil {
		// The turn stays visible: a synthetic assistant message reports the
		// failure in place of the reply.
		failure := domain.Message{
			ID:        uuid.NewString(),
			Role:      domain.RoleAssistant,
			Content:   chatFailureReply,
			Timestamp: time.Now(),
		}
		if appendErr := s.sess.AppendMessage(threadID, failure); appendErr != nil {
			logger.Error("Failed to append chat failure message", "error", appendErr)
		}
		return nil, err
	}

	if resp.ThreadID != "" && resp.ThreadID != threadID {
		s.sess.AdoptThreadID(threadID, resp.ThreadID)
		threadID = resp.ThreadID
	}

	reply := domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   resp.Assistant,
		Timestamp: time.Now(),
	}
	if err := s.sess.AppendMessage(threadID, reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
