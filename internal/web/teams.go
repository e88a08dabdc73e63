package web

import (
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/normalize"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleListTeams(ctx *fiber.Ctx) error {
	var (
		teams []domain.Team
		err   error
	)
	switch {
	case ctx.Query("search") != "":
		teams, err = s.academy.SearchTeams(ctx.Context(), normalize.Query(ctx.Query("search")))
	case ctx.Query("category") != "":
		teams, err = s.academy.ListTeamsByCategory(ctx.Context(), ctx.Query("category"))
	default:
		teams, err = s.academy.ListTeams(ctx.Context())
	}
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"teams": convertTeams(teams),
	})
}

func (s *Server) handleGetTeam(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	team, err := s.academy.GetTeam(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"team": convertTeam(team),
	})
}

func (s *Server) handleCreateTeam(ctx *fiber.Ctx) error {
	team, err := parseCreateTeamRequest(ctx)
	if err != nil {
		return err
	}
	created, err := s.academy.CreateTeam(ctx.Context(), team)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"team": convertTeam(created),
	})
}

func (s *Server) handleUpdateTeam(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	patch, err := parseUpdateTeamRequest(ctx)
	if err != nil {
		return err
	}
	team, err := s.academy.UpdateTeam(ctx.Context(), id, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"team": convertTeam(team),
	})
}

func (s *Server) handleDeleteTeam(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	if err := s.academy.DeleteTeam(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
	})
}
