package api

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"osas/clubport/internal/config"
	"osas/clubport/internal/db"
	"osas/clubport/internal/db/repositories"
	"osas/clubport/internal/docs"
	"osas/clubport/internal/guard"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/metrics"
	"osas/clubport/internal/routes"
	"osas/clubport/internal/services"
	"osas/clubport/internal/session"
	"osas/clubport/internal/upstream"
	"osas/clubport/internal/workers"
)

// Services groups the gateway's domain services.
type Services struct {
	Sessions *session.Manager
	Upstream *upstream.Client
	Guard    *guard.Guard
	Resolver *guard.Resolver
	Inbox    *services.RemarksInbox
	Scope    *services.ScopeService
	Docs     *docs.Renderer
}

// Dependencies is everything the router and workers need, wired once at
// startup.
type Dependencies struct {
	Config       config.AppConfig
	Metrics      *metrics.MetricsRegistry
	Services     *Services
	SessionStore *session.GormStore // sweep target; nil when redis backs sessions
	Redis        *redis.Client
	AuditDB      *sqlx.DB
	NavRepo      *repositories.NavigationRepository
	Audit        *workers.AuditFlusher
}

// InitDependencies builds the full service graph from configuration. Redis
// may be nil; the gateway then runs without cross-instance logout broadcast.
func InitDependencies(cfg config.AppConfig, redisClient *redis.Client) (*Dependencies, error) {
	reg := metrics.NewMetricsRegistry()

	gdb, err := db.OpenORM(cfg.SessionDBURL)
	if err != nil {
		return nil, err
	}
	gormStore, err := session.NewGormStore(gdb)
	if err != nil {
		return nil, err
	}
	// Redis holds sessions when available so every gateway instance sees the
	// same records; the gorm store is the single-instance fallback. The
	// sweeper only runs against the gorm store, so it is exposed on the
	// dependency graph only when it is the active backend.
	store := session.ChooseStore(gormStore, redisClient, cfg.SessionTTL)
	sessions := session.NewManager(store, redisClient, cfg.SessionTTL, reg)

	var sweepStore *session.GormStore
	if redisClient == nil {
		sweepStore = gormStore
	}

	scopeSvc, err := services.NewScopeService(gdb)
	if err != nil {
		return nil, err
	}

	var navRepo *repositories.NavigationRepository
	var auditDB *sqlx.DB
	auditDB, err = db.OpenAudit(cfg.AuditDBURL)
	if err != nil {
		logging.Warn("audit database unavailable, navigation auditing disabled", "error", err.Error())
	} else if auditDB != nil {
		navRepo, err = repositories.NewNavigationRepository(auditDB)
		if err != nil {
			return nil, fmt.Errorf("failed to init navigation repository: %w", err)
		}
	}

	api := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, reg)
	resolver := guard.NewResolver(services.NewMembershipService(api), reg)
	navGuard := guard.New(routes.NewTable(), resolver, services.NewRoleCheckService(api), reg)

	return &Dependencies{
		Config:       cfg,
		Metrics:      reg,
		SessionStore: sweepStore,
		Redis:        redisClient,
		AuditDB:      auditDB,
		NavRepo:      navRepo,
		Audit:        workers.NewAuditFlusher(navRepo, 0),
		Services: &Services{
			Sessions: sessions,
			Upstream: api,
			Guard:    navGuard,
			Resolver: resolver,
			Inbox:    services.NewRemarksInbox(api),
			Scope:    scopeSvc,
			Docs:     docs.NewRenderer(cfg.OrgName, cfg.VerifyBaseURL),
		},
	}, nil
}
