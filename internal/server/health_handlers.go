package server

import (
	"github.com/gofiber/fiber/v2"
)

// Welcome handles GET / with a friendly root payload.
func (s *Server) Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to Portfolio API"})
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the persistent store is reachable.
// Degraded mode is still a 200: the read path keeps serving.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	if s.degraded || s.db == nil {
		return c.JSON(fiber.Map{"status": "degraded", "database": "unavailable"})
	}

	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unready", "database": "unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "connected"})
}
