package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/huiyuan-aiad/CountdownVibes/internal/importer"
	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
	"github.com/huiyuan-aiad/CountdownVibes/internal/ticketmaster"
)

type addEventRequest struct {
	Event model.SourceEvent `json:"event"`
}

// handleAddEvent converts an externally-sourced event into the
// countdown shape. It does not persist; the caller decides whether to
// store the result.
func (s *Server) handleAddEvent(c *fiber.Ctx) error {
	var req addEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event data"})
	}

	ownerID := owner(c)
	countdown, err := importer.Import(req.Event, func(name string) string {
		return s.categories.ResolveColor(c.UserContext(), ownerID, name)
	})
	if err != nil {
		if errors.Is(err, importer.ErrInvalidSourceEvent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event data"})
		}
		s.log.Errorw("convert event", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to convert event", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"countdown": countdown})
}

type eventSearchRequest struct {
	Query       string `json:"query"`
	Location    string `json:"location"`
	EventType   string `json:"eventType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	ConfigCheck bool   `json:"configCheck"`
}

func (s *Server) handleEventSearch(c *fiber.Ctx) error {
	var req eventSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Lightweight availability probe; never reaches upstream.
	if req.ConfigCheck {
		if !s.events.Configured() {
			s.log.Error("ticketmaster api key is missing")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "API configuration error"})
		}
		return c.JSON(fiber.Map{"configured": true})
	}

	if !s.events.Configured() {
		s.log.Error("ticketmaster api key is missing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "API configuration error"})
	}

	result, err := s.events.Search(c.UserContext(), ticketmaster.SearchParams{
		Query:     req.Query,
		Location:  req.Location,
		EventType: req.EventType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		var upstream *ticketmaster.UpstreamError
		if errors.As(err, &upstream) {
			s.log.Errorw("ticketmaster api error", "status", upstream.StatusCode)
			return c.Status(upstream.StatusCode).JSON(fiber.Map{"error": "Error from Ticketmaster API", "details": upstream.Details})
		}
		s.log.Errorw("search events", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search events", "details": err.Error()})
	}

	return c.JSON(result)
}
