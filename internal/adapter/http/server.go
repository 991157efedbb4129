package adapthttp

import (
	"net/http"

	"fittrack/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO wiring. When Enabled is false the
// SSO endpoints respond 404 and only password login is offered.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to the
// application store and its services.
type Server struct {
	store       *app.Store
	today       *app.TodayService
	dashboard   *app.DashboardService
	export      *app.ExportService
	authSvc     *app.AuthService
	oidcConfig  OIDCConfig
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(store *app.Store, today *app.TodayService, dashboard *app.DashboardService, authSvc *app.AuthService) *Server {
	return &Server{store: store, today: today, dashboard: dashboard, authSvc: authSvc}
}

// WithExport enables the workout export endpoint.
func (s *Server) WithExport(export *app.ExportService) *Server {
	s.export = export
	return s
}

// WithOIDC enables the SSO login endpoints.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithoutAuth disables the auth middleware. Test use only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.HandleFunc("POST /auth/logout", s.handleLogout)
	api.HandleFunc("POST /auth/setup", s.handleSetupUser)
	api.HandleFunc("GET /auth/config", s.handleAuthConfig)
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()

	protected.HandleFunc("GET /dashboard", s.handleDashboard)

	protected.HandleFunc("GET /notes", s.handleListNotes)
	protected.HandleFunc("POST /notes", s.handleAddNote)
	protected.HandleFunc("PATCH /notes/{id}", s.handleUpdateNote)
	protected.HandleFunc("DELETE /notes/{id}", s.handleDeleteNote)

	protected.HandleFunc("GET /workouts", s.handleListWorkouts)
	protected.HandleFunc("POST /workouts", s.handleAddWorkout)
	protected.HandleFunc("POST /workouts/start", s.handleStartSession)
	protected.HandleFunc("GET /workouts/{id}", s.handleGetWorkout)
	protected.HandleFunc("PATCH /workouts/{id}", s.handleUpdateWorkout)
	protected.HandleFunc("POST /workouts/{id}/exercises", s.handleAddExercise)
	protected.HandleFunc("POST /workouts/{id}/complete", s.handleCompleteWorkout)
	protected.HandleFunc("POST /workouts/{id}/export", s.handleExportWorkout)

	protected.HandleFunc("GET /goals", s.handleListGoals)
	protected.HandleFunc("POST /goals", s.handleAddGoal)
	protected.HandleFunc("PUT /goals/{id}/progress", s.handleGoalProgress)
	protected.HandleFunc("POST /goals/{id}/complete", s.handleCompleteGoal)

	protected.HandleFunc("GET /today", s.handleToday)
	protected.HandleFunc("PUT /today/water", s.handleTodayWater)
	protected.HandleFunc("POST /today/water/glass", s.handleAddGlass)
	protected.HandleFunc("DELETE /today/water/glass", s.handleRemoveGlass)
	protected.HandleFunc("PUT /today/calories", s.handleTodayCalories)
	protected.HandleFunc("POST /today/tasks", s.handleAddTask)
	protected.HandleFunc("POST /today/tasks/{id}/toggle", s.handleToggleTask)
	protected.HandleFunc("DELETE /today/tasks/{id}", s.handleDeleteTask)

	protected.HandleFunc("GET /targets/{date}", s.handleGetTarget)
	protected.HandleFunc("PATCH /targets/{date}", s.handleUpdateTarget)

	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
