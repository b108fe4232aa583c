package router

import (
	"sync"

	"github.com/antonkarev/healthhub/internal/domain"
	"github.com/antonkarev/healthhub/internal/session"
)

// Route paths, mirroring the application's navigation map.
const (
	PathLanding          = "/"
	PathLogin            = "/login"
	PathRegister         = "/register"
	PathPatientDashboard = "/patient/dashboard"
	PathHealthPrediction = "/patient/health-prediction"
	PathPneumonia        = "/patient/pneumonia-detection"
	PathDepression       = "/patient/depression-assessment"
	PathChatbot          = "/patient/chatbot"
	PathDoctorDashboard  = "/doctor/dashboard"
)

// Router resolves navigation requests through the auth guard. Navigating to
// a protected path while unauthenticated lands on the login screen, and the
// originally requested path is remembered so a successful login can forward
// the user back.
type Router struct {
	sess *session.Store

	mu       sync.Mutex
	routes   map[string]bool // path -> protected
	current  string
	intended string
}

// New creates a router with the application's route table.
func New(sess *session.Store) *Router {
	return &Router{
		sess: sess,
		routes: map[string]bool{
			PathLanding:          false,
			PathLogin:            false,
			PathRegister:         false,
			PathPatientDashboard: true,
			PathHealthPrediction: true,
			PathPneumonia:        true,
			PathDepression:       true,
			PathChatbot:          true,
			PathDoctorDashboard:  true,
		},
		current: PathLanding,
	}
}

// Navigate resolves a requested path and returns where the user actually
// lands. Unknown paths fall back to the landing screen. The guard cannot
// loop: the login path itself is never protected.
func (r *Router) Navigate(path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	protected, known := r.routes[path]
	if !known {
		path = PathLanding
		protected = false
	}

	if protected && !r.sess.IsAuthenticated() {
		r.intended = path
		r.current = PathLogin
		return PathLogin
	}

	r.current = path
	return path
}

// Current returns where the user is now.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// ConsumeIntended returns the path the user originally asked for before
// being redirected to login, and forgets it. With nothing remembered it
// falls back to the dashboard matching the user's role.
func (r *Router) ConsumeIntended() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	path := r.intended
	r.intended = ""
	if path == "" {
		if u := r.sess.User(); u != nil && u.Role == domain.RoleDoctor {
			return PathDoctorDashboard
		}
		return PathPatientDashboard
	}
	return path
}
