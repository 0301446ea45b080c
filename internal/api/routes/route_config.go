package routes

import (
	"NutriPlan-Backend/internal/api/handlers"
	"NutriPlan-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	CalculatorHandler handlers.CalculatorHandler
	ProfileHandler    handlers.ProfileHandler
	DietPlanHandler   handlers.DietPlanHandler
	MealLogHandler    handlers.MealLogHandler
	FoodScanHandler   handlers.FoodScanHandler
	NutritionHandler  handlers.NutritionHandler
	AssistantHandler  handlers.AssistantHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Calculators()
	c.Profiles()
	c.DietPlans()
	c.MealLogs()
	c.FoodScans()
	c.Nutrition()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) Calculators() {
	calc := c.App.Group("/api/v1/calculators")
	{
		calc.Post("/bmi", c.CalculatorHandler.BMI)
		calc.Post("/calories", c.CalculatorHandler.Calories)
		calc.Post("/macros", c.CalculatorHandler.Macros)
	}
}

func (c *Config) Profiles() {
	profiles := c.App.Group("/api/v1/profiles")
	{
		profiles.Post("", c.ProfileHandler.CompleteProfile)
		profiles.Get("", c.ProfileHandler.GetProfile)
	}
}

func (c *Config) DietPlans() {
	plans := c.App.Group("/api/v1/diet-plans")
	{
		plans.Post("/generate", c.DietPlanHandler.GeneratePlan)
		plans.Get("", c.DietPlanHandler.GetUserPlans)
		plans.Get("/:userId", c.DietPlanHandler.GetUserPlans)
	}
}

// MealLogs keeps a single entry point so the handler can route by
// resource hint, method, and request shape.
func (c *Config) MealLogs() {
	c.App.All("/api/v1/meal-logs", c.MealLogHandler.Dispatch)
	c.App.All("/api/v1/meal-logs/:resource", c.MealLogHandler.Dispatch)
}

func (c *Config) FoodScans() {
	scans := c.App.Group("/api/v1/food-scans")
	{
		scans.Post("", c.FoodScanHandler.UploadImage)
		scans.Get("/:image_key", c.FoodScanHandler.GetResult)
	}
}

func (c *Config) Nutrition() {
	c.App.Post("/api/v1/nutrition/estimate", c.NutritionHandler.EstimateNutrients)
}

func (c *Config) Assistant() {
	c.App.Post("/api/v1/assistant/chat", c.AssistantHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
