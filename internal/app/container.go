package app

import (
	"context"
	"log"
	"os"
	"time"

	"skill-finder/internal/config"
	"skill-finder/internal/database"
	dbpostgres "skill-finder/internal/database/postgres"
	"skill-finder/internal/domain/conversation"
	"skill-finder/internal/domain/skill"
	"skill-finder/internal/infrastructure/ai"
	"skill-finder/internal/infrastructure/cache"
	"skill-finder/internal/pkg/jwt"
	"skill-finder/internal/repository"
	"skill-finder/internal/usecase"
	"skill-finder/internal/ws"
)

// Container wires infrastructure and usecases once at startup.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub
	Store *skill.Store

	JWT jwt.Service

	ChatUC         usecase.ChatUsecase
	ConversationUC usecase.ConversationUsecase
	ProfileUC      usecase.ProfileUsecase
	MatchUC        usecase.MatchUsecase
	SkillUC        usecase.SkillUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)
	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	store := skill.NewStore(skill.MustDefaultDictionary())

	turnRepo := repository.NewPostgresTurnRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	loadStoredDefinitions(ctx, skillRepo, store, logger)

	var gen conversation.Generator
	if cfg.AI.Enabled() {
		g, err := ai.NewGenerator(ctx, cfg.AI, logger)
		if err != nil {
			logger.Printf("[AI] Generator unavailable, running deterministic only: %v", err)
		} else {
			gen = g
		}
	}

	analyzer := conversation.NewAnalyzer(store.Current, gen, cfg.AI.Timeout, logger)

	var jwtSvc jwt.Service
	if cfg.Auth.AdminJWTSecret != "" {
		jwtSvc = jwt.NewHMACService(cfg.Auth.AdminJWTSecret, cfg.Auth.AdminTokenTTL)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Store:  store,
		JWT:    jwtSvc,

		ChatUC:         usecase.NewChatUsecase(analyzer, turnRepo, redisCache, logger),
		ConversationUC: usecase.NewConversationUsecase(turnRepo, logger),
		ProfileUC:      usecase.NewProfileUsecase(turnRepo, redisCache, logger),
		MatchUC:        usecase.NewMatchUsecase(analyzer),
		SkillUC:        usecase.NewSkillUsecase(skillRepo, store, logger),
	}, nil
}

// loadStoredDefinitions extends the built-in dictionary with definitions
// persisted through the admin endpoints. A stored row that collides with the
// current dictionary is skipped, not fatal.
func loadStoredDefinitions(ctx context.Context, repo repository.SkillRepository, store *skill.Store, logger *log.Logger) {
	items, err := repo.GetAllSkills(ctx)
	if err != nil {
		if logger != nil {
			logger.Printf("Dictionary load skipped | err=%v", err)
		}
		return
	}

	for _, it := range items {
		def := skill.Definition{Name: it.Name, Category: it.Category, Aliases: it.Aliases}
		if err := store.Extend(def); err != nil {
			if logger != nil {
				logger.Printf("Dictionary extension skipped | name=%s err=%v", it.Name, err)
			}
		}
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
