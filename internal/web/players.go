package web

import (
	"errors"
	"strconv"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/normalize"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	var (
		players []domain.Player
		err     error
	)
	switch {
	case ctx.Query("search") != "":
		players, err = s.academy.SearchPlayers(ctx.Context(), normalize.Query(ctx.Query("search")))
	case ctx.Query("teamId") != "":
		var teamID int
		teamID, err = strconv.Atoi(ctx.Query("teamId"))
		if err != nil || teamID <= 0 {
			return badRequest(errors.New("teamId must be a positive integer"))
		}
		players, err = s.academy.ListPlayersByTeam(ctx.Context(), teamID)
	case ctx.Query("unassigned") == "true":
		players, err = s.academy.ListUnassignedPlayers(ctx.Context())
	case ctx.Query("min_age") != "" || ctx.Query("max_age") != "":
		var minAge, maxAge int
		minAge, maxAge, err = parseAgeRange(ctx)
		if err != nil {
			return err
		}
		players, err = s.academy.ListPlayersByAgeRange(ctx.Context(), minAge, maxAge)
	default:
		players, err = s.academy.ListPlayers(ctx.Context())
	}
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"players": convertPlayers(players),
	})
}

func parseAgeRange(ctx *fiber.Ctx) (int, int, error) {
	minAge, err := strconv.Atoi(ctx.Query("min_age", "0"))
	if err != nil || minAge < 0 {
		return 0, 0, badRequest(errors.New("min_age must be a non-negative integer"))
	}
	maxAge, err := strconv.Atoi(ctx.Query("max_age", "99"))
	if err != nil || maxAge < minAge {
		return 0, 0, badRequest(errors.New("max_age must be an integer not below min_age"))
	}
	return minAge, maxAge, nil
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	player, err := s.academy.GetPlayer(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"player": convertPlayer(player),
	})
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	player, err := parseCreatePlayerRequest(ctx)
	if err != nil {
		return err
	}
	created, err := s.academy.CreatePlayer(ctx.Context(), player)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"player": convertPlayer(created),
	})
}

func (s *Server) handleUpdatePlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	patch, err := parseUpdatePlayerRequest(ctx)
	if err != nil {
		return err
	}
	player, err := s.academy.UpdatePlayer(ctx.Context(), id, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"player": convertPlayer(player),
	})
}

func (s *Server) handleDeletePlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	if err := s.academy.DeletePlayer(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
	})
}

func (s *Server) handleAssignTeam(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	teamID, err := parseAssignTeamRequest(ctx)
	if err != nil {
		return err
	}
	player, err := s.academy.AssignToTeam(ctx.Context(), id, teamID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"player": convertPlayer(player),
	})
}

func (s *Server) handleRemoveFromTeam(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	player, err := s.academy.RemoveFromTeam(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"player": convertPlayer(player),
	})
}
