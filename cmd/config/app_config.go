package config

import (
	"NutriPlan-Backend/internal/api/handlers"
	"NutriPlan-Backend/internal/api/routes"
	"NutriPlan-Backend/internal/middleware"
	"NutriPlan-Backend/internal/utils"
	"NutriPlan-Backend/internal/utils/storage"
	"NutriPlan-Backend/pkg/assistant"
	"NutriPlan-Backend/pkg/calculator"
	"NutriPlan-Backend/pkg/dietplan"
	"NutriPlan-Backend/pkg/foodscan"
	"NutriPlan-Backend/pkg/meallog"
	"NutriPlan-Backend/pkg/nutrition"
	"NutriPlan-Backend/pkg/profile"
	"NutriPlan-Backend/pkg/subscription"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	profileRepository := profile.NewProfileRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)
	dietPlanRepository := dietplan.NewDietPlanRepository(db)
	mealLogRepository := meallog.NewMealLogRepository(db)
	foodScanRepository := foodscan.NewFoodScanRepository(db)

	// Service
	calculatorService := calculator.NewCalculatorService()
	profileService := profile.NewProfileService(profileRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository)
	planGenerator := dietplan.NewGeminiGenerator()
	dietPlanService := dietplan.NewDietPlanService(
		dietPlanRepository,
		profileRepository,
		subscriptionRepository,
		subscriptionService,
		planGenerator,
	)
	mealLogService := meallog.NewMealLogService(mealLogRepository, subscriptionService)
	foodScanService := foodscan.NewFoodScanService(foodScanRepository, s3)
	nutritionService := nutrition.NewNutritionService()
	assistantService := assistant.NewAssistantService()

	// Handler
	calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
	profileHandler := handlers.NewProfileHandler(profileService)
	dietPlanHandler := handlers.NewDietPlanHandler(dietPlanService, validator)
	mealLogHandler := handlers.NewMealLogHandler(mealLogService)
	foodScanHandler := handlers.NewFoodScanHandler(foodScanService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		CalculatorHandler: calculatorHandler,
		ProfileHandler:    profileHandler,
		DietPlanHandler:   dietPlanHandler,
		MealLogHandler:    mealLogHandler,
		FoodScanHandler:   foodScanHandler,
		NutritionHandler:  nutritionHandler,
		AssistantHandler:  assistantHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
