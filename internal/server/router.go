package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"osas/clubport/internal/api"
	"osas/clubport/internal/constants"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/middleware"
)

// RegisterRoutes wires the gateway's HTTP surface onto a chi router.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	cfg := deps.Config
	svc := deps.Services

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.SessionMiddleware(svc.Sessions, cfg.SessionCookie))
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with session and metrics middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(deps.AuditDB, deps.Redis, upSince))

	authHandler := api.NewAuthHandler(svc.Sessions, svc.Upstream, svc.Resolver, svc.Scope,
		cfg.SessionCookie, cfg.AppEnv == "production")

	var auditLog api.AuditLog
	if deps.NavRepo != nil {
		auditLog = deps.NavRepo
	}
	navHandler := api.NewNavHandler(svc.Guard, deps.Audit, auditLog)
	badgesHandler := api.NewBadgesHandler(svc.Inbox, svc.Scope, svc.Upstream)
	scopeHandler := api.NewScopeHandler(svc.Scope)
	docsHandler := api.NewDocsHandler(svc.Docs, svc.Upstream)

	proxy, err := api.NewProxy(cfg.UpstreamBaseURL)
	if err != nil {
		panic("failed to initialize upstream proxy: " + err.Error())
	}

	// Session lifecycle
	r.Route("/auth", func(a chi.Router) {
		a.Group(func(limited chi.Router) {
			limited.Use(middleware.LoginRateLimit)
			limited.Post("/login", authHandler.Login)
			limited.Post("/register", authHandler.Register)
			limited.Post("/forgot-password", authHandler.ForgotPassword)
			limited.Post("/reset-password", authHandler.ResetPassword)
		})
		a.Post("/2fa", authHandler.VerifyTwoFA)
		a.Post("/sso", authHandler.CompleteSSO)
		a.Post("/refresh", authHandler.Refresh)
		a.Post("/logout", authHandler.Logout)
		a.Get("/me", authHandler.Me)
		a.Get("/verify-email", authHandler.VerifyEmail)
		a.Post("/resend-verification", authHandler.ResendVerification)
	})

	// Navigation guard
	r.Route("/nav", func(n chi.Router) {
		n.Get("/routes", navHandler.Routes)
		n.Post("/authorize", navHandler.Authorize)
	})

	// Authenticated gateway features
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Route("/badges", func(b chi.Router) {
			b.Get("/remarks", badgesHandler.Remarks)
			b.Post("/remarks/read", badgesHandler.MarkThreadRead)
			b.Post("/remarks/read-all", badgesHandler.MarkAllRead)
			b.Get("/notifications", badgesHandler.Notifications)
		})

		authed.Route("/scope", func(s chi.Router) {
			s.Get("/", scopeHandler.Get)
			s.Put("/", scopeHandler.Set)
			s.Delete("/", scopeHandler.Clear)
		})

		authed.Get("/docs/{kind}/{id}/pdf", docsHandler.Render)

		authed.With(middleware.RequireRoles(svc.Resolver, constants.RoleAdmin)).
			Get("/audit/navigation", navHandler.RecentEvents)
	})

	// Upstream passthrough. Role gates mirror the page-level restrictions so
	// a plain student can't hit officer endpoints by skipping the UI.
	r.Route("/api", func(a chi.Router) {
		a.Use(middleware.RequireAuth)

		officerGated := middleware.RequireRoles(svc.Resolver,
			constants.RoleAdmin, constants.RoleManager, constants.RoleStudentOfficer)
		adminOnly := middleware.RequireRoles(svc.Resolver, constants.RoleAdmin)

		a.Group(func(officer chi.Router) {
			officer.Use(officerGated)
			for _, prefix := range []string{"/activity-designs", "/utilization-requests", "/liquidation-funds", "/annual-plans"} {
				officer.Handle(prefix, proxy)
				officer.Handle(prefix+"/*", proxy)
			}
		})

		a.Group(func(admin chi.Router) {
			admin.Use(adminOnly)
			admin.Handle("/session-logs", proxy)
			admin.Handle("/session-logs/*", proxy)
		})

		a.Handle("/*", proxy)
	})

	return r
}
