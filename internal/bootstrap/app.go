// Package bootstrap assembles the application from configuration:
// storage, the LLM client, services, handlers, and finally the router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/jobmatch"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/llm/groq"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
	"resume-analyzer/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	AnalysesRepo    analyses.Repo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo analyses.Repo
	if sqlDB != nil {
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		repo = analyses.NewMemoryRepo()
	}

	advisor, err := buildAdvisor(cfg)
	if err != nil {
		return nil, err
	}

	svc := &analyses.Service{Repo: repo, Advisor: advisor}
	handler := analyses.NewHandler(svc)

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		AnalysesRepo:    repo,
		AnalysesService: svc,
		AnalysisHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: handler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildAdvisor returns a nil advisor when no Groq key is configured; the
// analysis service then always takes the rule-based job-match path.
func buildAdvisor(cfg config.Config) (*jobmatch.Advisor, error) {
	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		log.Printf("bootstrap: GROQ_API_KEY empty; job matching uses the rule-based path only")
		return nil, nil
	}
	client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	return &jobmatch.Advisor{Client: llm.Client(client), Timeout: cfg.LLMTimeout}, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
