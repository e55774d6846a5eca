package di

import (
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/handler"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/hasher"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/mailer"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/repository"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/service"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/config"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/database"
	pkgredis "github.com/MuneelHaider/NeuroFusion-sub000/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *pkgredis.Client // nil when the rate limiter backend is disabled

	// Repositories
	AccountRepo repository.AccountRepository

	// Services
	CredentialService service.CredentialService
	InferenceService  service.InferenceService
	Mailer            mailer.Mailer

	// Handlers
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	ContactHandler   *handler.ContactHandler
	InferenceHandler *handler.InferenceHandler
}

// NewContainer wires the dependency graph from configuration and the
// already-connected infrastructure clients.
func NewContainer(cfg *config.Config, db *database.PostgresDB, redis *pkgredis.Client) *Container {
	c := &Container{
		DB:    db,
		Redis: redis,
	}

	c.AccountRepo = repository.NewPostgresAccountRepository(db.Pool())

	c.CredentialService = service.NewCredentialService(
		c.AccountRepo,
		hasher.New(),
		&service.CredentialServiceConfig{
			JWTSecret: cfg.JWT.Secret,
			TokenTTL:  cfg.JWT.TokenTTL,
		},
	)
	c.InferenceService = service.NewInferenceService(&service.InferenceConfig{
		PythonBin:  cfg.Inference.PythonBin,
		ScriptPath: cfg.Inference.ScriptPath,
		ModelPath:  cfg.Inference.ModelPath,
		Timeout:    cfg.Inference.Timeout,
	})
	c.Mailer = mailer.NewSMTPMailer(&mailer.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		Recipients: cfg.SMTP.Recipients,
	})

	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.CredentialService, cfg.IsProduction())
	c.ContactHandler = handler.NewContactHandler(c.Mailer)
	c.InferenceHandler = handler.NewInferenceHandler(c.InferenceService)

	return c
}
