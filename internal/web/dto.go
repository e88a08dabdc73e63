package web

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errBadRequest marks validation failures so the error handler can answer
// 400 with the joined messages instead of a generic 500.
var errBadRequest = errors.New("bad request")

const dateLayout = "2006-01-02"

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func badRequest(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errBadRequest, err)
}

type multierr interface {
	Unwrap() []error
}

func messages(err error) []string {
	var merr multierr
	if errors.As(err, &merr) {
		var msgs []string
		for _, e := range merr.Unwrap() {
			msgs = append(msgs, messages(e)...)
		}
		return msgs
	}
	if errors.Is(err, errBadRequest) {
		return nil
	}
	return []string{err.Error()}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func parseRegisterRequest(ctx *fiber.Ctx) (registerRequest, error) {
	var req registerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return registerRequest{}, badRequest(err)
	}
	var err error
	err = errors.Join(err, validateEmail(req.Email))
	err = errors.Join(err, validatePassword(req.Password))
	if req.Name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	if req.Role != "" && !users.Role(req.Role).Valid() {
		err = errors.Join(err, errors.New("unknown role"))
	}
	if err != nil {
		return registerRequest{}, badRequest(err)
	}
	return req, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func parseLoginRequest(ctx *fiber.Ctx) (loginRequest, error) {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return loginRequest{}, badRequest(err)
	}
	var err error
	err = errors.Join(err, validateEmail(req.Email))
	err = errors.Join(err, validatePassword(req.Password))
	if err != nil {
		return loginRequest{}, badRequest(err)
	}
	return req, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

func parseVerifyRequest(ctx *fiber.Ctx) (verifyRequest, error) {
	var req verifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return verifyRequest{}, badRequest(err)
	}
	if req.Token == "" {
		return verifyRequest{}, badRequest(errors.New("token is required"))
	}
	return req, nil
}

type promoteUserRequest struct {
	UserID string `json:"userId"`
}

func parsePromoteUserRequest(ctx *fiber.Ctx) (uuid.UUID, error) {
	var req promoteUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return uuid.Nil, badRequest(err)
	}
	id, err := uuid.Parse(req.UserID)
	if err != nil {
		return uuid.Nil, badRequest(errors.New("userId must be a valid uuid"))
	}
	return id, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegexp.MatchString(email) {
		return errors.New("email is not valid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type createTeamRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	CoachName   string `json:"coach_name"`
	Description string `json:"description"`
	MaxPlayers  int    `json:"max_players"`
}

func parseCreateTeamRequest(ctx *fiber.Ctx) (domain.Team, error) {
	var req createTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return domain.Team{}, badRequest(err)
	}
	var err error
	if req.Name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	if req.Category == "" {
		err = errors.Join(err, errors.New("category is required"))
	}
	if req.MaxPlayers < 0 {
		err = errors.Join(err, errors.New("max_players must be positive"))
	}
	if err != nil {
		return domain.Team{}, badRequest(err)
	}
	return domain.Team{
		Name:        req.Name,
		Category:    req.Category,
		CoachName:   req.CoachName,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
	}, nil
}

type updateTeamRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	CoachName   *string `json:"coach_name"`
	Description *string `json:"description"`
	MaxPlayers  *int    `json:"max_players"`
}

func parseUpdateTeamRequest(ctx *fiber.Ctx) (domain.TeamPatch, error) {
	var req updateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return domain.TeamPatch{}, badRequest(err)
	}
	var err error
	if req.Name != nil && *req.Name == "" {
		err = errors.Join(err, errors.New("name must not be empty"))
	}
	if req.Category != nil && *req.Category == "" {
		err = errors.Join(err, errors.New("category must not be empty"))
	}
	if req.MaxPlayers != nil && *req.MaxPlayers <= 0 {
		err = errors.Join(err, errors.New("max_players must be positive"))
	}
	if err != nil {
		return domain.TeamPatch{}, badRequest(err)
	}
	return domain.TeamPatch{
		Name:        req.Name,
		Category:    req.Category,
		CoachName:   req.CoachName,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
	}, nil
}

type createPlayerRequest struct {
	Name             string `json:"name"`
	BirthDate        string `json:"birth_date"`
	Position         string `json:"position"`
	TeamID           *int   `json:"team_id"`
	ParentName       string `json:"parent_name"`
	ParentPhone      string `json:"parent_phone"`
	ParentEmail      string `json:"parent_email"`
	MedicalNotes     string `json:"medical_notes"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	Active           *bool  `json:"is_active"`
}

func parseCreatePlayerRequest(ctx *fiber.Ctx) (domain.Player, error) {
	var req createPlayerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return domain.Player{}, badRequest(err)
	}
	var err error
	if req.Name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	birthDate, dateErr := parseBirthDate(req.BirthDate)
	err = errors.Join(err, dateErr)
	position := domain.Position(req.Position)
	if position != "" && !position.Valid() {
		err = errors.Join(err, errors.New("unknown position"))
	}
	if req.ParentEmail != "" && !emailRegexp.MatchString(req.ParentEmail) {
		err = errors.Join(err, errors.New("parent_email is not valid"))
	}
	if err != nil {
		return domain.Player{}, badRequest(err)
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return domain.Player{
		Name:             req.Name,
		BirthDate:        birthDate,
		Position:         position,
		Active:           active,
		TeamID:           req.TeamID,
		ParentName:       req.ParentName,
		ParentPhone:      req.ParentPhone,
		ParentEmail:      req.ParentEmail,
		MedicalNotes:     req.MedicalNotes,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}, nil
}

type updatePlayerRequest struct {
	Name             *string `json:"name"`
	BirthDate        *string `json:"birth_date"`
	Position         *string `json:"position"`
	TeamID           *int    `json:"team_id"`
	ParentName       *string `json:"parent_name"`
	ParentPhone      *string `json:"parent_phone"`
	ParentEmail      *string `json:"parent_email"`
	MedicalNotes     *string `json:"medical_notes"`
	EmergencyContact *string `json:"emergency_contact"`
	EmergencyPhone   *string `json:"emergency_phone"`
	Active           *bool   `json:"is_active"`
}

func parseUpdatePlayerRequest(ctx *fiber.Ctx) (domain.PlayerPatch, error) {
	var req updatePlayerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return domain.PlayerPatch{}, badRequest(err)
	}
	var err error
	patch := domain.PlayerPatch{
		Name:             req.Name,
		TeamID:           req.TeamID,
		ParentName:       req.ParentName,
		ParentPhone:      req.ParentPhone,
		ParentEmail:      req.ParentEmail,
		MedicalNotes:     req.MedicalNotes,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Active:           req.Active,
	}
	if req.Name != nil && *req.Name == "" {
		err = errors.Join(err, errors.New("name must not be empty"))
	}
	if req.BirthDate != nil {
		birthDate, dateErr := parseBirthDate(*req.BirthDate)
		if dateErr != nil {
			err = errors.Join(err, dateErr)
		} else {
			patch.BirthDate = &birthDate
		}
	}
	if req.Position != nil {
		position := domain.Position(*req.Position)
		if position != "" && !position.Valid() {
			err = errors.Join(err, errors.New("unknown position"))
		} else {
			patch.Position = &position
		}
	}
	if req.ParentEmail != nil && *req.ParentEmail != "" && !emailRegexp.MatchString(*req.ParentEmail) {
		err = errors.Join(err, errors.New("parent_email is not valid"))
	}
	if err != nil {
		return domain.PlayerPatch{}, badRequest(err)
	}
	return patch, nil
}

func parseBirthDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("birth_date is required")
	}
	birthDate, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errors.New("birth_date must be formatted as " + dateLayout)
	}
	if birthDate.After(time.Now()) {
		return time.Time{}, errors.New("birth_date must be in the past")
	}
	return birthDate, nil
}

type assignTeamRequest struct {
	TeamID int `json:"team_id"`
}

func parseAssignTeamRequest(ctx *fiber.Ctx) (int, error) {
	var req assignTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return 0, badRequest(err)
	}
	if req.TeamID <= 0 {
		return 0, badRequest(errors.New("team_id is required"))
	}
	return req.TeamID, nil
}

func parseID(ctx *fiber.Ctx) (int, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, badRequest(errors.New("id must be a positive integer"))
	}
	return id, nil
}
