package router

import (
	"context"
	"testing"

	"github.com/antonkarev/healthhub/internal/domain"
	"github.com/antonkarev/healthhub/internal/session"
	"github.com/antonkarev/healthhub/internal/storage"
)

type staticAuthAPI struct{}

func (staticAuthAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{User: domain.User{ID: "u-1"}, Token: "tok"}, nil
}

func (staticAuthAPI) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{User: domain.User{ID: "u-1"}, Token: "tok"}, nil
}

type nopTokens struct{}

func (nopTokens) SetToken(string) {}
func (nopTokens) ClearToken()     {}

func newTestSession() *session.Store {
	return session.New(staticAuthAPI{}, storage.NewMemoryStore(), nopTokens{})
}

func TestGuardRedirectsAndRemembersDestination(t *testing.T) {
	sess := newTestSession()
	rt := New(sess)

	landed := rt.Navigate(PathChatbot)
	if landed != PathLogin {
		t.Fatalf("landed on %s, want %s", landed, PathLogin)
	}
	if rt.Current() != PathLogin {
		t.Errorf("current = %s, want %s", rt.Current(), PathLogin)
	}

	// Log in, then continue to the originally requested path.
	if err := sess.Login(context.Background(), domain.Credentials{}); err != nil {
		t.Fatal(err)
	}
	intended := rt.ConsumeIntended()
	if intended != PathChatbot {
		t.Fatalf("intended = %s, want %s", intended, PathChatbot)
	}
	if landed := rt.Navigate(intended); landed != PathChatbot {
		t.Errorf("landed on %s, want %s", landed, PathChatbot)
	}
}

func TestGuardPassesAuthenticatedNavigation(t *testing.T) {
	sess := newTestSession()
	if err := sess.Login(context.Background(), domain.Credentials{}); err != nil {
		t.Fatal(err)
	}
	rt := New(sess)

	if landed := rt.Navigate(PathPatientDashboard); landed != PathPatientDashboard {
		t.Errorf("landed on %s, want %s", landed, PathPatientDashboard)
	}
}

func TestGuardNeverLoopsOnLogin(t *testing.T) {
	rt := New(newTestSession())
	if landed := rt.Navigate(PathLogin); landed != PathLogin {
		t.Errorf("landed on %s, want %s", landed, PathLogin)
	}
	// Login must not overwrite a previously remembered destination with
	// itself.
	rt.Navigate(PathDepression)
	rt.Navigate(PathLogin)
	if intended := rt.ConsumeIntended(); intended != PathDepression {
		t.Errorf("intended = %s, want %s", intended, PathDepression)
	}
}

func TestConsumeIntendedDefaultsToDashboard(t *testing.T) {
	rt := New(newTestSession())
	if intended := rt.ConsumeIntended(); intended != PathPatientDashboard {
		t.Errorf("intended = %s, want %s", intended, PathPatientDashboard)
	}
}

type doctorAuthAPI struct{ staticAuthAPI }

func (doctorAuthAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{User: domain.User{ID: "d-1", Role: domain.RoleDoctor}, Token: "tok"}, nil
}

func TestConsumeIntendedDefaultsByRole(t *testing.T) {
	sess := session.New(doctorAuthAPI{}, storage.NewMemoryStore(), nopTokens{})
	if err := sess.Login(context.Background(), domain.Credentials{}); err != nil {
		t.Fatal(err)
	}
	rt := New(sess)
	if intended := rt.ConsumeIntended(); intended != PathDoctorDashboard {
		t.Errorf("intended = %s, want %s", intended, PathDoctorDashboard)
	}
}

func TestUnknownPathFallsBackToLanding(t *testing.T) {
	rt := New(newTestSession())
	if landed := rt.Navigate("/does/not/exist"); landed != PathLanding {
		t.Errorf("landed on %s, want %s", landed, PathLanding)
	}
}
