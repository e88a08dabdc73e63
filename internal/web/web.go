package web

import (
	"database/sql"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	embedded "github.com/ThomasSalomon/chicosAPP-V2"
	authservice "github.com/ThomasSalomon/chicosAPP-V2/auth/service"
	authstorage "github.com/ThomasSalomon/chicosAPP-V2/auth/storage"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/config"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/service"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"
)

type Server struct {
	auth    *authservice.Service
	academy *service.AcademyService
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

const userKey = "user"

func New(l *logrus.Logger, academy *service.AcademyService, cfg config.Server, authService *authservice.Service) (*Server, error) {
	server := Server{
		academy: academy,
		auth:    authService,
		cfg:     cfg,
		log: l.WithFields(map[string]interface{}{
			"from": "web",
		}),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: server.handleError,
	})

	guard := func(c *fiber.Ctx) error {
		user, err := authService.Authorize(c.Context(), bearerToken(c), c.Method(), c.Path())
		if err != nil {
			return err
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	}
	app.Use(webpath.Teams, guard)
	app.Use(webpath.Players, guard)
	app.Use(webpath.Admin, guard)

	app.Get(webpath.Home, server.handleDashboard)

	app.Post(webpath.AuthRegister, server.handleRegister)
	app.Post(webpath.AuthLogin, server.handleLogin)
	app.Post(webpath.AuthVerify, server.handleVerify)

	app.Get(webpath.Teams, server.handleListTeams)
	app.Post(webpath.Teams, server.handleCreateTeam)
	app.Get(webpath.TeamByID, server.handleGetTeam)
	app.Put(webpath.TeamByID, server.handleUpdateTeam)
	app.Delete(webpath.TeamByID, server.handleDeleteTeam)

	app.Get(webpath.Players, server.handleListPlayers)
	app.Post(webpath.Players, server.handleCreatePlayer)
	app.Get(webpath.PlayerByID, server.handleGetPlayer)
	app.Put(webpath.PlayerByID, server.handleUpdatePlayer)
	app.Delete(webpath.PlayerByID, server.handleDeletePlayer)
	app.Put(webpath.PlayerTeam, server.handleAssignTeam)
	app.Delete(webpath.PlayerTeam, server.handleRemoveFromTeam)

	app.Get(webpath.AdminUsers, server.handleListUsers)
	app.Post(webpath.AdminUsers, server.handlePromoteUser)
	app.Post(webpath.AdminSeed, server.handleSeedData)
	app.Delete(webpath.AdminClear, server.handleClearData)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if s.cfg.CertFile != "" && s.cfg.KeyFile != "" {
		return s.app.ListenTLS(addr, s.cfg.CertFile, s.cfg.KeyFile)
	}
	return s.app.Listen(addr)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	switch {
	case errors.Is(err, errBadRequest):
		code = fiber.StatusBadRequest
		message = strings.Join(messages(err), "; ")
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		code = fiber.StatusNotFound
		message = "not found"
	case errors.Is(err, authservice.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, authservice.ErrNotAuthorized):
		code = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, authservice.ErrForbidden):
		code = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, authstorage.ErrEmailTaken):
		code = fiber.StatusConflict
		message = err.Error()
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	return ctx.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	teams, err := s.academy.ListTeams(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("index", fiber.Map{
		"Title": "Academia de Fútbol",
		"Teams": teams,
		"Path":  webpath.Path(),
	}, "layouts/main")
}
