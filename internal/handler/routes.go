package handler

import (
	"quiz-deck/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the HTTP API on app.
func SetupRoutes(app *fiber.App, pools *PoolHandler, sessions *SessionHandler, health *HealthHandler) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/health", health.Check)

	api := app.Group("/api")

	p := api.Group("/pools")
	p.Post("/", pools.ImportPool)
	p.Get("/:poolID", vm.ValidatePoolID(), pools.GetPool)
	p.Delete("/:poolID", vm.ValidatePoolID(), pools.DeletePool)
	p.Get("/:poolID/results", vm.ValidatePoolID(), pools.ListResults)

	s := api.Group("/sessions")
	s.Post("/", sessions.StartSession)
	s.Get("/:sessionID", vm.ValidateSessionID(), sessions.GetSession)
	s.Delete("/:sessionID", vm.ValidateSessionID(), sessions.Reset)
	s.Put("/:sessionID/answer", vm.ValidateSessionID(), sessions.Answer)
	s.Post("/:sessionID/next", vm.ValidateSessionID(), sessions.Next)
	s.Post("/:sessionID/previous", vm.ValidateSessionID(), sessions.Previous)
	s.Post("/:sessionID/submit", vm.ValidateSessionID(), sessions.Submit)
	s.Post("/:sessionID/retake", vm.ValidateSessionID(), sessions.Retake)
	s.Get("/:sessionID/results", vm.ValidateSessionID(), sessions.GetResults)
}
