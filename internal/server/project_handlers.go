package server

import (
	"showcase/internal/models"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListProjects handles GET /api/projects. Public, newest first.
func (s *Server) ListProjects(c *fiber.Ctx) error {
	projects, err := s.projectService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// GetProject handles GET /api/projects/:id. Public.
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project"))
	}

	project, err := s.projectService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// CreateProject handles POST /api/projects. Gated.
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var in service.CreateProjectInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	project, err := s.projectService.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/projects/:id. Gated, partial payload.
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project"))
	}

	var in service.UpdateProjectInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	project, err := s.projectService.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// DeleteProject handles DELETE /api/projects/:id. Gated.
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project"))
	}

	if err := s.projectService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
