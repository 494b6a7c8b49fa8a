package app

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"kidpoints/internal/config"
	"kidpoints/internal/db"
	authdomain "kidpoints/internal/domain/auth"
	kidsdomain "kidpoints/internal/domain/kids"
	pointsdomain "kidpoints/internal/domain/points"
	rewardsdomain "kidpoints/internal/domain/rewards"
	tasksdomain "kidpoints/internal/domain/tasks"
	todosdomain "kidpoints/internal/domain/todos"
	kidsrepo "kidpoints/internal/repository/postgres/kids"
	pointsrepo "kidpoints/internal/repository/postgres/points"
	rewardsrepo "kidpoints/internal/repository/postgres/rewards"
	tasksrepo "kidpoints/internal/repository/postgres/tasks"
	todosrepo "kidpoints/internal/repository/postgres/todos"
	usersrepo "kidpoints/internal/repository/postgres/users"
	"kidpoints/internal/seed"
	"kidpoints/internal/transport/httpserver"
	"kidpoints/internal/transport/httpserver/handler"
	"kidpoints/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	usersRepo := usersrepo.NewPostgres(dbConn)
	kidsRepo := kidsrepo.NewPostgres(dbConn)
	tasksRepo := tasksrepo.NewPostgres(dbConn)
	pointsRepo := pointsrepo.NewPostgres(dbConn)
	rewardsRepo := rewardsrepo.NewPostgres(dbConn)
	todosRepo := todosrepo.NewPostgres(dbConn)

	log.Info("app: seeding database")
	err = seed.Run(context.Background(), log, seed.Stores{
		Users:   usersRepo,
		Kids:    kidsRepo,
		Tasks:   tasksRepo,
		Rewards: rewardsRepo,
	})
	if err != nil {
		return nil, err
	}

	codec, err := authdomain.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	kidsService := kidsdomain.NewService(kidsRepo)
	authService := authdomain.NewService(usersRepo, kidsService, codec)
	pointsService := pointsdomain.NewService(pointsRepo, pointsdomain.NoopCache{})
	tasksService := tasksdomain.NewService(tasksRepo, kidsService, pointsService)
	rewardsService := rewardsdomain.NewService(rewardsRepo, pointsService)
	todosService := todosdomain.NewService(todosRepo)

	handlers := handler.New(authService, kidsService, tasksService, pointsService, rewardsService, todosService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, codec)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
