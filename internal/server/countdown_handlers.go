package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
	"github.com/huiyuan-aiad/CountdownVibes/internal/service"
)

type createCountdownRequest struct {
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Category     string    `json:"category"`
	Color        string    `json:"color"`
	Notes        string    `json:"notes"`
	Reminder     bool      `json:"reminder"`
	ReminderDays int       `json:"reminderDays"`
	Image        string    `json:"image"`
}

type updateCountdownRequest struct {
	Title        *string    `json:"title"`
	Date         *time.Time `json:"date"`
	Category     *string    `json:"category"`
	Color        *string    `json:"color"`
	Notes        *string    `json:"notes"`
	Reminder     *bool      `json:"reminder"`
	ReminderDays *int       `json:"reminderDays"`
	Image        *string    `json:"image"`
}

func (s *Server) handleCreateCountdown(c *fiber.Ctx) error {
	var req createCountdownRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	countdown, err := s.countdowns.Create(c.UserContext(), owner(c), service.CountdownInput{
		Title:        req.Title,
		Date:         req.Date,
		Category:     req.Category,
		Color:        req.Color,
		Notes:        req.Notes,
		Reminder:     req.Reminder,
		ReminderDays: req.ReminderDays,
		ImageURL:     req.Image,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"countdown": countdown})
}

func (s *Server) handleGetCountdown(c *fiber.Ctx) error {
	countdown, err := s.countdowns.Get(c.UserContext(), owner(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"countdown": countdown})
}

func (s *Server) handleUpdateCountdown(c *fiber.Ctx) error {
	var req updateCountdownRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	countdown, err := s.countdowns.Update(c.UserContext(), owner(c), c.Params("id"), service.CountdownUpdate{
		Title:        req.Title,
		Date:         req.Date,
		Category:     req.Category,
		Color:        req.Color,
		Notes:        req.Notes,
		Reminder:     req.Reminder,
		ReminderDays: req.ReminderDays,
		ImageURL:     req.Image,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"countdown": countdown})
}

func (s *Server) handleDeleteCountdown(c *fiber.Ctx) error {
	if err := s.countdowns.Delete(c.UserContext(), owner(c), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleListCountdowns(c *fiber.Ctx) error {
	countdowns, err := s.countdowns.List(c.UserContext(), owner(c), repository.CountdownFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"countdowns": countdowns})
}
