package server

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type addCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleListCategories(c *fiber.Ctx) error {
	categories, err := s.categories.List(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (s *Server) handleAddCategory(c *fiber.Ctx) error {
	var req addCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	category, err := s.categories.Add(c.UserContext(), owner(c), req.Name, req.Color)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": category})
}

func (s *Server) handleDeleteCategory(c *fiber.Ctx) error {
	// Names may contain spaces ("Arts & Theatre") and arrive
	// percent-encoded in the path.
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category name"})
	}

	if err := s.categories.Delete(c.UserContext(), owner(c), name); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
