// Package server exposes the HTTP API.
package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/huiyuan-aiad/CountdownVibes/internal/assistant"
	"github.com/huiyuan-aiad/CountdownVibes/internal/service"
	"github.com/huiyuan-aiad/CountdownVibes/internal/ticketmaster"
)

// Server wires the HTTP surface to the services. The assistant may be
// nil when no Gemini key is configured; the chat endpoints then report
// a configuration error instead of failing generically.
type Server struct {
	app        *fiber.App
	countdowns *service.CountdownService
	categories *service.CategoryService
	events     *ticketmaster.Client
	assistant  *assistant.Assistant
	log        *zap.SugaredLogger
}

func New(countdowns *service.CountdownService, categories *service.CategoryService, events *ticketmaster.Client, chat *assistant.Assistant, log *zap.SugaredLogger) *Server {
	s := &Server{
		countdowns: countdowns,
		categories: categories,
		events:     events,
		assistant:  chat,
		log:        log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "CountdownVibes",
		DisableStartupMessage: true,
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")

	// External-facing proxy endpoints
	api.Post("/addEvent", s.handleAddEvent)
	api.Post("/eventSearch", s.handleEventSearch)
	api.Post("/chat", s.handleChat)
	api.Post("/assistant", s.handleAssistant)

	// Countdown store
	countdowns := api.Group("/countdowns")
	countdowns.Get("/", s.handleListCountdowns)
	countdowns.Post("/", s.handleCreateCountdown)
	countdowns.Get("/:id", s.handleGetCountdown)
	countdowns.Put("/:id", s.handleUpdateCountdown)
	countdowns.Delete("/:id", s.handleDeleteCountdown)

	// Category registry
	categories := api.Group("/categories")
	categories.Get("/", s.handleListCategories)
	categories.Post("/", s.handleAddCategory)
	categories.Delete("/:name", s.handleDeleteCategory)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// owner extracts the request's owner id; empty means unauthenticated
// and the services decide whether that is acceptable.
func owner(c *fiber.Ctx) string {
	return c.Get("X-User-ID")
}

// serviceError maps service sentinels to HTTP replies.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrDateRequired),
		errors.Is(err, service.ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateCategory),
		errors.Is(err, service.ErrPredefinedCategory),
		errors.Is(err, service.ErrCategoryInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
