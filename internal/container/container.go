package container

import (
	app "face-diff-bot/internal/application"
	"face-diff-bot/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	ComparisonService *app.ComparisonService
}

func New(userRepo port.UserRepository, baselines port.BaselineRepository, detector port.LandmarkDetector, describer port.ChangeDescriber, threshold float64) *Container {
	userService := app.NewUserService(userRepo)
	comparisonService := app.NewComparisonService(userService, baselines, detector, describer, threshold)

	return &Container{
		UserService:       userService,
		ComparisonService: comparisonService,
	}
}
