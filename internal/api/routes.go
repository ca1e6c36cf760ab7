package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	symptoms := api.Group("/symptoms")
	symptoms.Get("", handler.GetSymptoms)
	symptoms.Get("/range", handler.GetSymptomsInRange)
	symptoms.Get("/:id", handler.GetSymptom)
	symptoms.Post("", handler.CreateSymptom)
	symptoms.Delete("/:id", handler.DeleteSymptom)

	api.Get("/triggers", handler.GetTriggers)
	api.Post("/triggers", handler.CreateTrigger)
	api.Get("/common-symptoms", handler.GetCommonSymptoms)
	api.Post("/common-symptoms", handler.CreateCommonSymptom)

	medications := api.Group("/medications")
	medications.Get("", handler.GetMedications)
	medications.Get("/active", handler.GetActiveMedications)
	medications.Get("/:id", handler.GetMedication)
	medications.Post("", handler.CreateMedication)
	medications.Patch("/:id", handler.UpdateMedication)
	medications.Delete("/:id", handler.DeleteMedication)

	api.Get("/profile", handler.GetProfile)
	api.Patch("/profile", handler.UpdateProfile)

	saltIntakes := api.Group("/salt-intakes")
	saltIntakes.Get("", handler.GetSaltIntakes)
	saltIntakes.Get("/:id", handler.GetSaltIntake)
	saltIntakes.Post("", handler.CreateSaltIntake)
	saltIntakes.Delete("/:id", handler.DeleteSaltIntake)

	api.Get("/salt-recommendation", handler.GetSaltRecommendation)
	api.Patch("/salt-recommendation", handler.UpdateSaltRecommendation)
	api.Get("/salt-status", handler.GetSaltStatus)

	api.Get("/insights", handler.GetInsights)

	export := api.Group("/export")
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
