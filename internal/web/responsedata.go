package web

import (
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
)

type teamResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	CoachName   string `json:"coach_name,omitempty"`
	Description string `json:"description,omitempty"`
	MaxPlayers  int    `json:"max_players"`
	PlayerCount int    `json:"player_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func convertTeam(team domain.Team) teamResponse {
	return teamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Category:    team.Category,
		CoachName:   team.CoachName,
		Description: team.Description,
		MaxPlayers:  team.MaxPlayers,
		PlayerCount: team.PlayerCount,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
}

func convertTeams(teams []domain.Team) []teamResponse {
	list := make([]teamResponse, 0, len(teams))
	for _, team := range teams {
		list = append(list, convertTeam(team))
	}
	return list
}

type playerResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	BirthDate        string `json:"birth_date"`
	Age              int    `json:"age"`
	Position         string `json:"position"`
	TeamID           *int   `json:"team_id"`
	ParentName       string `json:"parent_name,omitempty"`
	ParentPhone      string `json:"parent_phone,omitempty"`
	ParentEmail      string `json:"parent_email,omitempty"`
	MedicalNotes     string `json:"medical_notes,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	IsActive         bool   `json:"is_active"`
	RegistrationDate string `json:"registration_date"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func convertPlayer(player domain.Player) playerResponse {
	return playerResponse{
		ID:               player.ID,
		Name:             player.Name,
		BirthDate:        player.BirthDate.Format(dateLayout),
		Age:              player.Age(time.Now()),
		Position:         string(player.Position),
		TeamID:           player.TeamID,
		ParentName:       player.ParentName,
		ParentPhone:      player.ParentPhone,
		ParentEmail:      player.ParentEmail,
		MedicalNotes:     player.MedicalNotes,
		EmergencyContact: player.EmergencyContact,
		EmergencyPhone:   player.EmergencyPhone,
		IsActive:         player.Active,
		RegistrationDate: player.RegistrationDate.Format(time.RFC3339),
		CreatedAt:        player.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        player.UpdatedAt.Format(time.RFC3339),
	}
}

func convertPlayers(players []domain.Player) []playerResponse {
	list := make([]playerResponse, 0, len(players))
	for _, player := range players {
		list = append(list, convertPlayer(player))
	}
	return list
}

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}

func convertUser(user users.User) userResponse {
	return userResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		RegisteredAt: user.RegisteredAt.Format(time.RFC3339),
	}
}

func convertUsers(list []users.User) []userResponse {
	out := make([]userResponse, 0, len(list))
	for _, user := range list {
		out = append(out, convertUser(user))
	}
	return out
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
