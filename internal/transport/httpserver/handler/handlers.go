package handler

import (
	authdomain "kidpoints/internal/domain/auth"
	kidsdomain "kidpoints/internal/domain/kids"
	pointsdomain "kidpoints/internal/domain/points"
	rewardsdomain "kidpoints/internal/domain/rewards"
	tasksdomain "kidpoints/internal/domain/tasks"
	todosdomain "kidpoints/internal/domain/todos"
	"kidpoints/pkg/logger"
)

type Handlers struct {
	Auth    *authdomain.Service
	Kids    *kidsdomain.Service
	Tasks   *tasksdomain.Service
	Points  *pointsdomain.Service
	Rewards *rewardsdomain.Service
	Todos   *todosdomain.Service

	log logger.Logger
}

func New(
	auth *authdomain.Service,
	kids *kidsdomain.Service,
	tasks *tasksdomain.Service,
	points *pointsdomain.Service,
	rewards *rewardsdomain.Service,
	todos *todosdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Auth:    auth,
		Kids:    kids,
		Tasks:   tasks,
		Points:  points,
		Rewards: rewards,
		Todos:   todos,
		log:     log,
	}
}
