package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/domain"
	"github.com/antonkarev/healthhub/internal/session"
	"github.com/antonkarev/healthhub/internal/storage"
)

type stubAuthAPI struct{}

func (stubAuthAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	return nil, nil
}

func (stubAuthAPI) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	return nil, nil
}

// newEnv spins up a fake backend and an authenticated session against it.
func newEnv(t *testing.T, handler http.Handler) (*apiclient.Client, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL, 2*time.Second)

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	user := domain.User{ID: "u-1", PatientID: "PAT-001", FirstName: "Jane", Role: domain.RolePatient}
	userJSON, _ := json.Marshal(user)
	kv.Set(ctx, storage.KeyAuthToken, "tok-1")
	kv.Set(ctx, storage.KeyUser, string(userJSON))

	sess := session.New(stubAuthAPI{}, kv, client)
	sess.InitializeAuth(ctx)
	if !sess.IsAuthenticated() {
		t.Fatal("test session failed to hydrate")
	}
	return client, sess
}

// decodeBody reads a JSON request body into a generic map.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	return body
}
