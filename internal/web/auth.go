package web

import (
	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleRegister(ctx *fiber.Ctx) error {
	req, err := parseRegisterRequest(ctx)
	if err != nil {
		return err
	}
	user, token, err := s.auth.Register(ctx.Context(), req.Email, req.Password, req.Name, users.Role(req.Role))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  convertUser(user),
		"token": token,
	})
}

func (s *Server) handleLogin(ctx *fiber.Ctx) error {
	req, err := parseLoginRequest(ctx)
	if err != nil {
		return err
	}
	user, token, err := s.auth.Login(ctx.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"user":  convertUser(user),
		"token": token,
	})
}

func (s *Server) handleVerify(ctx *fiber.Ctx) error {
	req, err := parseVerifyRequest(ctx)
	if err != nil {
		return err
	}
	user, err := s.auth.VerifyToken(ctx.Context(), req.Token)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"user": convertUser(user),
	})
}
