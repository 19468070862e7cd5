package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/jwtx"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"

	_ "github.com/aussiebroadwan/careerhub/api/careerhub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux     *http.ServeMux
	handler http.Handler

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	production   bool

	store       *store.Handle
	AuthService *service.AuthService
	TOTPService *service.TOTPService
	OTPService  *service.OTPService
	UserService *service.UserService
	TaskService *service.TaskService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	production bool,
	st *store.Handle,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		production:   production,
		store:        st,
		logger:       logger,
	}

	// Routes registered on Mux later are still reached through this chain.
	r.handler = httpx.Chain(r.Mux, slogx.HTTPMiddleware(r.logger))

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTwoFactor()
	r.registerProfile()
	r.registerUserTasks()
	r.registerAdmin()
	r.registerUserManagement()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP runs every request through the request logger, then the mux.
//
//	@title			CareerHub API
//	@version		0.1.0
//	@description	CareerHub backend: registration, two-factor login (authenticator app or WhatsApp code), profiles, and admin-managed task assignment.
//	@description
//	@description				Session tokens are HS256 JWTs valid for 30 days.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/careerhub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// secured chains bearer verification, the access gate and a per-user limit.
func (r *Router) secured(h http.HandlerFunc, required domain.Role, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.requireAccess(required),
		httpx.RateLimitByUser(limit),
	)
}

// perAccount applies the strict limit per address and field, then per field
// alone.
func perAccount(h http.HandlerFunc, field string) http.Handler {
	return httpx.Chain(h,
		httpx.RateLimitByIPAndField(httpx.StrictLimit, field),
		httpx.RateLimitByField(httpx.StrictLimit, field),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		OTPService:  r.OTPService,
		Production:  r.production,
	}

	// Credential and code submission endpoints - strict limits by IP
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Note: Rate limited by IP + email and by email alone, so rotating
	// X-Forwarded-For does not reset an account's budget
	r.Mux.Handle("POST /api/auth/login", perAccount(h.HandleLogin, "email"))

	r.Mux.Handle("POST /api/auth/verify-2fa-setup-login", perAccount(h.HandleVerifySetupLogin, "userId"))
	r.Mux.Handle("POST /api/auth/verify-2fa-login", perAccount(h.HandleVerifyLogin, "userId"))
	r.Mux.Handle("POST /api/auth/send-whatsapp-otp", perAccount(h.HandleSendOTP, "userId"))
	r.Mux.Handle("POST /api/auth/verify-whatsapp-otp", perAccount(h.HandleVerifyOTP, "userId"))
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{TOTPService: r.TOTPService}

	r.Mux.Handle("POST /api/auth/enable-2fa",
		r.secured(h.HandleEnable, domain.RoleUser, httpx.ModerateLimit))

	// Strict: prevent brute force of TOTP codes
	r.Mux.Handle("POST /api/auth/verify-2fa-setup",
		r.secured(h.HandleVerifySetup, domain.RoleUser, httpx.StrictLimit))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/user/profile",
		r.secured(h.HandleGet, domain.RoleUser, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/user/update-profile",
		r.secured(h.HandleUpdate, domain.RoleUser, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/user/change-password",
		r.secured(h.HandleChangePassword, domain.RoleUser, httpx.StrictLimit))
	r.Mux.Handle("PATCH /api/user/reset-password",
		r.secured(h.HandleResetPassword, domain.RoleUser, httpx.StrictLimit))
}

func (r *Router) registerUserTasks() {
	h := &UserTaskHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /api/user/tasks",
		r.secured(h.HandleList, domain.RoleUser, httpx.LenientLimit))
	r.Mux.Handle("GET /api/user/tasks/{id}",
		r.secured(h.HandleGet, domain.RoleUser, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/user/tasks/{id}/complete",
		r.secured(h.HandleComplete, domain.RoleUser, httpx.ModerateLimit))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		TaskService: r.TaskService,
		UserService: r.UserService,
	}

	r.Mux.Handle("GET /api/admin/stats",
		r.secured(h.HandleStats, domain.RoleAdmin, httpx.LenientLimit))
	r.Mux.Handle("POST /api/admin/task",
		r.secured(h.HandleCreateTask, domain.RoleAdmin, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/tasks",
		r.secured(h.HandleListTasks, domain.RoleAdmin, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/admin/task/{id}",
		r.secured(h.HandleUpdateTask, domain.RoleAdmin, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/admin/task/{id}/status",
		r.secured(h.HandleUpdateTaskStatus, domain.RoleAdmin, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/admin/task/{id}",
		r.secured(h.HandleDeleteTask, domain.RoleAdmin, httpx.ModerateLimit))
}

func (r *Router) registerUserManagement() {
	h := &UserManagementHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/user-management/users",
		r.secured(h.HandleList, domain.RoleAdmin, httpx.LenientLimit))
	r.Mux.Handle("GET /api/user-management/user/{id}",
		r.secured(h.HandleGet, domain.RoleAdmin, httpx.LenientLimit))
	r.Mux.Handle("POST /api/user-management/create",
		r.secured(h.HandleCreate, domain.RoleAdmin, httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/user-management/user/{id}",
		r.secured(h.HandleUpdate, domain.RoleAdmin, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/user-management/user/{id}",
		r.secured(h.HandleDelete, domain.RoleAdmin, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
