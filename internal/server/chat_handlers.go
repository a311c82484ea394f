package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/huiyuan-aiad/CountdownVibes/internal/assistant"
	"github.com/huiyuan-aiad/CountdownVibes/internal/ticketmaster"
)

type chatRequest struct {
	Message          string          `json:"message"`
	CountdownContext json.RawMessage `json:"countdownContext"`
	IsEventSearch    bool            `json:"isEventSearch"`
}

// handleChat is a passthrough to the generative model, optionally
// prefixing the user's countdowns or a search-unavailable disclaimer.
func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	if s.assistant == nil {
		s.log.Error("gemini api key is missing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI configuration error"})
	}

	response, err := s.assistant.Reply(c.UserContext(), req.Message, req.CountdownContext, req.IsEventSearch)
	if err != nil {
		s.log.Errorw("chat reply", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}

	return c.JSON(fiber.Map{"response": response})
}

// handleAssistant orchestrates a chat message end to end: detect an
// event-search intent, run the search when the ticketing API is
// configured, otherwise answer through the model (with the disclaimer
// when a search was asked for but is unavailable).
func (s *Server) handleAssistant(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	intent := assistant.Parse(req.Message)

	if intent.EventSearch && s.events.Configured() {
		result, err := s.events.Search(c.UserContext(), ticketmaster.SearchParams{
			Query:     intent.Query,
			Location:  intent.Location,
			EventType: intent.EventType,
		})
		if err != nil {
			s.log.Errorw("assistant event search", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search events", "details": err.Error()})
		}

		response := "I couldn't find any matching events. Try a different search?"
		if len(result.Events) > 0 {
			response = "Here's what I found. Pick an event to add it as a countdown."
		}
		return c.JSON(fiber.Map{
			"response":   response,
			"events":     result.Events,
			"pagination": result.Pagination,
			"_links":     result.Links,
		})
	}

	if s.assistant == nil {
		s.log.Error("gemini api key is missing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI configuration error"})
	}

	response, err := s.assistant.Reply(c.UserContext(), req.Message, req.CountdownContext, intent.EventSearch)
	if err != nil {
		s.log.Errorw("assistant reply", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}
	return c.JSON(fiber.Map{"response": response})
}
