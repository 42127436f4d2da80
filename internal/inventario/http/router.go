package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/jwtx"
	"github.com/mrrinformatica/inventario/pkg/slogx"

	_ "github.com/mrrinformatica/inventario/api/inventario" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	MFAService       *service.MFAService
	UserService      *service.UserService
	EquipmentService *service.EquipmentService
	LicenseService   *service.LicenseService
	TicketService    *service.TicketService
	SettingsService  *service.SettingsService
	AuditService     *service.AuditService
	ApprovalService  *service.ApprovalService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMFA()
	r.registerUsers()
	r.registerEquipment()
	r.registerLicenses()
	r.registerTickets()
	r.registerApprovals()
	r.registerSettings()
	r.registerAudit()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Inventário IT Asset Management API
//	@version		0.1.0
//	@description	REST API for the inventory service: equipment, software licenses,
//	@description	service-desk tickets, user accounts with an optional TOTP second
//	@description	factor, and an append-only audit log.
//
//	@contact.name	MRR Informatica
//	@contact.url	https://github.com/mrrinformatica/inventario
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &LoginHandler{AuthService: r.AuthService}

	// POST /api/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /api/login",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{
		AuthService: r.AuthService,
		MFAService:  r.MFAService,
	}

	// The verify/generate/enable endpoints run before a session exists (the
	// password already checked out, the second factor is pending), so they
	// authenticate by user id from the body and are rate limited by IP.
	r.Mux.Handle("POST /api/verify-2fa",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/generate-2fa",
		httpx.Chain(http.HandlerFunc(h.HandleGenerate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/enable-2fa",
		httpx.Chain(http.HandlerFunc(h.HandleEnable),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Self-service disable requires an authenticated session.
	r.Mux.Handle("POST /api/disable-2fa",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Admin reset of another account's second factor.
	r.Mux.Handle("POST /api/users/{id}/disable-2fa",
		httpx.Chain(http.HandlerFunc(h.HandleDisableForUser),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	manage := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(roleAdmin, roleUserManager),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleAdmin, roleUserManager),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/users", httpx.Chain(http.HandlerFunc(h.HandleCreate), manage...))
	r.Mux.Handle("PUT /api/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), manage...))
	r.Mux.Handle("DELETE /api/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), manage...))

	// Self-service profile update: any authenticated user.
	r.Mux.Handle("PUT /api/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerEquipment() {
	h := &EquipmentHandler{EquipmentService: r.EquipmentService}

	read := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}
	write := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("GET /api/equipment", httpx.Chain(http.HandlerFunc(h.HandleList), read...))
	r.Mux.Handle("POST /api/equipment", httpx.Chain(http.HandlerFunc(h.HandleCreate), write...))
	r.Mux.Handle("PUT /api/equipment/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write...))
	r.Mux.Handle("DELETE /api/equipment/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write...))
	r.Mux.Handle("GET /api/equipment/{id}/history", httpx.Chain(http.HandlerFunc(h.HandleHistory), read...))
}

func (r *Router) registerLicenses() {
	h := &LicensesHandler{LicenseService: r.LicenseService}

	read := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}
	write := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("GET /api/licenses", httpx.Chain(http.HandlerFunc(h.HandleList), read...))
	r.Mux.Handle("POST /api/licenses", httpx.Chain(http.HandlerFunc(h.HandleCreate), write...))
	r.Mux.Handle("PUT /api/licenses/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write...))
	r.Mux.Handle("DELETE /api/licenses/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write...))

	r.Mux.Handle("GET /api/license-totals", httpx.Chain(http.HandlerFunc(h.HandleTotals), read...))
	r.Mux.Handle("POST /api/license-totals",
		httpx.Chain(http.HandlerFunc(h.HandleSaveTotals),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleAdmin, roleUserManager),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTickets() {
	h := &TicketsHandler{TicketService: r.TicketService}

	read := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}
	write := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("GET /api/tickets", httpx.Chain(http.HandlerFunc(h.HandleList), read...))
	r.Mux.Handle("POST /api/tickets", httpx.Chain(http.HandlerFunc(h.HandleCreate), write...))
	r.Mux.Handle("PUT /api/tickets/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write...))
	r.Mux.Handle("DELETE /api/tickets/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write...))
}

func (r *Router) registerApprovals() {
	h := &ApprovalsHandler{ApprovalService: r.ApprovalService}

	review := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(roleAdmin, roleUserManager),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("GET /api/approvals/pending", httpx.Chain(http.HandlerFunc(h.HandlePending), review...))
	r.Mux.Handle("POST /api/approvals/approve", httpx.Chain(http.HandlerFunc(h.HandleApprove), review...))
	r.Mux.Handle("POST /api/approvals/reject", httpx.Chain(http.HandlerFunc(h.HandleReject), review...))
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	// GET is open: the login screen needs the company name and flags before
	// any session exists.
	r.Mux.Handle("GET /api/settings",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/settings/full",
		httpx.Chain(http.HandlerFunc(h.HandleGetFull),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/settings",
		httpx.Chain(http.HandlerFunc(h.HandleSave),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAudit() {
	h := &AuditHandler{AuditService: r.AuditService}

	r.Mux.Handle("GET /api/audit",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health endpoint - also polled by clients leaving demo mode, so the
	// limit stays public.
	r.Mux.Handle("GET /api/status",
		httpx.Chain(StatusHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
