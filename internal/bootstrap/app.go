package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/planning"
	"planner-backend/internal/plans"
	"planner-backend/internal/shared/config"
	"planner-backend/internal/shared/server"
	"planner-backend/internal/shared/server/middleware"
	"planner-backend/internal/shared/storage/db"
	"planner-backend/internal/shared/storage/object"
	localstore "planner-backend/internal/shared/storage/object/local"
	s3store "planner-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Store        object.ObjectStore
	PlansRepo    plans.Repo
	PlansService *plans.Service
	PlansHandler *plans.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	policy, err := planning.ParseSeverityPolicy(cfg.SeverityPolicy)
	if err != nil {
		return nil, fmt.Errorf("PLANNER_SEVERITY_FALLBACK: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var store object.ObjectStore
	if cfg.ArchiveAssessments {
		store, err = buildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	if err := buildServices(app, policy); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		PlansHandler: app.PlansHandler,
		DB:           app.DB,
		Limiter:      middleware.NewRateLimiter(nil),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		if err = db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App, policy planning.SeverityPolicy) error {
	var repo plans.Repo
	if app.DB != nil {
		repo = &plans.PGRepo{DB: app.DB}
	} else {
		repo = plans.NewMemoryRepo()
	}

	svc := &plans.Service{
		Repo:               repo,
		Store:              app.Store,
		SeverityPolicy:     policy,
		ArchiveAssessments: app.Config.ArchiveAssessments,
	}

	app.PlansRepo = repo
	app.PlansService = svc
	app.PlansHandler = plans.NewHandler(svc)

	if app.PlansHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}
