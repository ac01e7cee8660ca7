package server

import (
	"showcase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// placeholderProjects is the fixed list served on the project read path
// when no database is reachable. Deliberate degraded-mode behavior, not
// an error.
var placeholderProjects = []models.Project{
	{
		ID:           1,
		Title:        "Auto Mail Reply",
		Description:  "A Python program that fetches unread emails from Google Account and uses integrated LLAMA3 AI model to generate suitable responses. Features automatic email processing for student paper rechecking requests.",
		Technologies: []string{"Python", "LLAMA3 AI", "Gmail API", "SMTP", "IMAP"},
		ImageURL:     "https://images.unsplash.com/photo-1563986768711-b3bde3dc821e?auto=format&fit=crop&w=1074&q=80",
		DemoURL:      "https://github.com/codingsher/Auto_Mail_Reply",
		RepoURL:      "https://github.com/codingsher/Auto_Mail_Reply",
		Featured:     true,
		Order:        1,
	},
	{
		ID:           2,
		Title:        "Car Rental System",
		Description:  "A C++ console application for car rental management that I built when I started my programming journey. Features basic rental operations and file-based data storage.",
		Technologies: []string{"C++", "Console Application", "File Handling", "OOP"},
		ImageURL:     "https://images.unsplash.com/photo-1550355291-bbee04a92027?auto=format&fit=crop&w=1276&q=80",
		DemoURL:      "https://github.com/codingsher/car_rental_system",
		RepoURL:      "https://github.com/codingsher/car_rental_system",
		Featured:     true,
		Order:        2,
	},
	{
		ID:           3,
		Title:        "CalDAV Calendar",
		Description:  "A Python-based calendar application that implements the CalDAV protocol (RFC4791) for synchronizing calendars across devices. Features include creating and modifying calendars, managing events, and searching events by date ranges.",
		Technologies: []string{"Python", "CalDAV Protocol", "RESTful APIs", "iCalendar", "Web Services"},
		ImageURL:     "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?auto=format&fit=crop&w=1168&q=80",
		DemoURL:      "https://github.com/codingsher/CalDAV_Calendar",
		RepoURL:      "https://github.com/codingsher/CalDAV_Calendar",
		Featured:     true,
		Order:        3,
	},
}

// ListPlaceholderProjects serves the fixed project list in degraded mode.
func (s *Server) ListPlaceholderProjects(c *fiber.Ctx) error {
	return c.JSON(placeholderProjects)
}

// GetPlaceholderProject serves a single placeholder entry in degraded mode.
func (s *Server) GetPlaceholderProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err == nil {
		for i := range placeholderProjects {
			if placeholderProjects[i].ID == id {
				return c.JSON(placeholderProjects[i])
			}
		}
	}
	return models.RespondWithError(c, fiber.StatusNotFound,
		models.NewNotFoundError("Project"))
}

// StoreUnavailable answers for every store-backed endpoint while the
// database is down. Write behavior is unsupported in degraded mode.
func (s *Server) StoreUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message": "Database unavailable",
	})
}
