package router

import (
	"github.com/tripnote/travel-planner-api/internal/application"
	"github.com/tripnote/travel-planner-api/internal/container"
	pginfra "github.com/tripnote/travel-planner-api/internal/infrastructure/postgres"
	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
	"github.com/tripnote/travel-planner-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	itineraryRepo := pginfra.NewItineraryRepository(pool)
	itemRepo := pginfra.NewItemRepository(pool)
	budgetRepo := pginfra.NewBudgetRepository(pool)

	authService := application.NewAuthService(userRepo, container.GetGoogle(), container.GetJWT(), logger)
	userService := application.NewUserService(userRepo)
	tripService := application.NewTripService(itineraryRepo, itemRepo, budgetRepo)
	currencyService := application.NewCurrencyService(
		container.GetExchange(),
		container.GetRateCache(),
		container.GetConfig().RateCacheTTL,
		logger,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authService, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userService, logger), container.GetJWT(), userRepo))
	r.Add(modules.NewTripModule(handlers.NewTripHandler(tripService, logger), container.GetJWT(), userRepo))
	r.Add(modules.NewCurrencyModule(handlers.NewCurrencyHandler(currencyService, logger)))
	r.Add(modules.NewPlaceModule(handlers.NewPlaceHandler(container.GetKakao(), logger)))
	r.Add(modules.NewTourModule(handlers.NewTourHandler(container.GetTour(), logger)))
	r.Add(modules.NewDeliveryModule(handlers.NewDeliveryHandler()))
}
