package server

import (
	"showcase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitContactMessage handles POST /api/contact. Public. The record is
// persisted before any notification is attempted; a relay failure never
// changes this response.
func (s *Server) SubmitContactMessage(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.contactService.Submit(c.UserContext(), req.Name, req.Email, req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact message sent successfully",
		"contact": msg,
	})
}

// ListContactMessages handles GET /api/contact. Gated, newest first.
func (s *Server) ListContactMessages(c *fiber.Ctx) error {
	messages, err := s.contactService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}

// DeleteContactMessage handles DELETE /api/contact/:id. Gated.
func (s *Server) DeleteContactMessage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Message"))
	}

	if err := s.contactService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Contact message deleted successfully"})
}
