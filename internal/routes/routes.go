package routes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/challenge"
	"github.com/Roosterfan/trailhub/internal/config"
	"github.com/Roosterfan/trailhub/internal/discussion"
	"github.com/Roosterfan/trailhub/internal/enrollment"
	"github.com/Roosterfan/trailhub/internal/identity"
	"github.com/Roosterfan/trailhub/internal/leaderboard"
	"github.com/Roosterfan/trailhub/internal/middleware"
	"github.com/Roosterfan/trailhub/internal/notification"
	"github.com/Roosterfan/trailhub/internal/store"
	"github.com/Roosterfan/trailhub/internal/verification"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	if !d.Cfg.IsDev() && d.Cfg.AdminSecret == "" {
		return fmt.Errorf("ADMIN_SECRET is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(cors.New())
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// All services share one gate so that every operation observes and
	// mutates the state as a single unit.
	gate := store.NewGate()
	authz := admin.NewSharedSecret(d.Cfg.AdminSecret)

	users := identity.NewMemoryRepository()
	challenges := challenge.NewMemoryRepository()
	enrollments := enrollment.NewMemoryRepository()
	queue := verification.NewMemoryRepository()
	posts := discussion.NewMemoryRepository()

	notifiers := notification.Fanout{notification.NewLoggerNotifier(d.Logger)}
	if d.DB != nil {
		notifiers = append(notifiers, notification.NewPostgresNotifier(d.DB))
	}

	identitySvc := identity.NewService(users, authz, gate, d.Logger)
	challengeSvc := challenge.NewService(challenges, authz, gate, d.Logger)
	enrollmentSvc := enrollment.NewService(enrollments, users, challenges, queue, gate, d.Logger)
	verificationSvc := verification.NewService(queue, users, enrollments, authz, gate, notifiers, d.Logger)
	boardSvc := leaderboard.NewService(users, enrollments, challenges, queue, gate)
	discussionSvc := discussion.NewService(posts, authz, gate, d.Logger)

	if d.Cfg.SeedChallenges {
		if err := challengeSvc.Seed(context.Background()); err != nil {
			return fmt.Errorf("seed challenges: %w", err)
		}
	}

	loginLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginAttemptsPerMinute)
	RegisterIdentityRoutes(app, identity.NewHandler(identitySvc), enrollment.NewHandler(enrollmentSvc), loginLimiter)
	RegisterChallengeRoutes(app, challenge.NewHandler(challengeSvc), enrollment.NewHandler(enrollmentSvc))
	RegisterVerificationRoutes(app, verification.NewHandler(verificationSvc))
	RegisterLeaderboardRoutes(app, leaderboard.NewHandler(boardSvc))
	RegisterDiscussionRoutes(app, discussion.NewHandler(discussionSvc))

	if d.Cfg.StaticDir != "" {
		app.Static("/", d.Cfg.StaticDir)
	}
	return nil
}
