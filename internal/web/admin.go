package web

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleListUsers(ctx *fiber.Ctx) error {
	list, err := s.auth.ListUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"users": convertUsers(list),
	})
}

func (s *Server) handlePromoteUser(ctx *fiber.Ctx) error {
	id, err := parsePromoteUserRequest(ctx)
	if err != nil {
		return err
	}
	user, err := s.auth.PromoteToAdmin(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"user": convertUser(user),
	})
}

func (s *Server) handleSeedData(ctx *fiber.Ctx) error {
	report, err := s.academy.SeedDemoData(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "demo data seeded",
		"counts":  report,
	})
}

func (s *Server) handleClearData(ctx *fiber.Ctx) error {
	report, err := s.academy.ClearAllData(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "database cleared",
		"counts":  report,
	})
}
