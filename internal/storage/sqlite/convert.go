package sqlite

import (
	"github.com/ThomasSalomon/chicosAPP-V2/gen/model"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
)

func convertTeamToDomain(team model.Teams) domain.Team {
	return domain.Team{
		ID:          int(team.ID),
		Name:        team.Name,
		Category:    team.Category,
		CoachName:   fromNullableString(team.CoachName),
		Description: fromNullableString(team.Description),
		MaxPlayers:  int(team.MaxPlayers),
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func convertTeamFromDomain(team domain.Team) model.Teams {
	return model.Teams{
		ID:          int32(team.ID),
		Name:        team.Name,
		Category:    team.Category,
		CoachName:   toNullableString(team.CoachName),
		Description: toNullableString(team.Description),
		MaxPlayers:  int32(team.MaxPlayers),
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func convertTeamsToDomain(teams []model.Teams) []domain.Team {
	converted := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		converted = append(converted, convertTeamToDomain(team))
	}
	return converted
}

func convertPlayerToDomain(player model.Players) domain.Player {
	var teamID *int
	if player.TeamID != nil {
		id := int(*player.TeamID)
		teamID = &id
	}
	return domain.Player{
		ID:               int(player.ID),
		Name:             player.Name,
		BirthDate:        player.BirthDate,
		Position:         domain.Position(fromNullableString(player.Position)),
		TeamID:           teamID,
		ParentName:       fromNullableString(player.ParentName),
		ParentPhone:      fromNullableString(player.ParentPhone),
		ParentEmail:      fromNullableString(player.ParentEmail),
		MedicalNotes:     fromNullableString(player.MedicalNotes),
		EmergencyContact: fromNullableString(player.EmergencyContact),
		EmergencyPhone:   fromNullableString(player.EmergencyPhone),
		Active:           player.IsActive != 0,
		RegistrationDate: player.RegistrationDate,
		CreatedAt:        player.CreatedAt,
		UpdatedAt:        player.UpdatedAt,
	}
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	var teamID *int32
	if player.TeamID != nil {
		id := int32(*player.TeamID)
		teamID = &id
	}
	return model.Players{
		ID:               int32(player.ID),
		Name:             player.Name,
		BirthDate:        player.BirthDate,
		Position:         toNullableString(string(player.Position)),
		TeamID:           teamID,
		ParentName:       toNullableString(player.ParentName),
		ParentPhone:      toNullableString(player.ParentPhone),
		ParentEmail:      toNullableString(player.ParentEmail),
		MedicalNotes:     toNullableString(player.MedicalNotes),
		EmergencyContact: toNullableString(player.EmergencyContact),
		EmergencyPhone:   toNullableString(player.EmergencyPhone),
		IsActive:         boolToInt(player.Active),
		RegistrationDate: player.RegistrationDate,
		CreatedAt:        player.CreatedAt,
		UpdatedAt:        player.UpdatedAt,
	}
}

func convertPlayersToDomain(players []model.Players) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayerToDomain(player))
	}
	return converted
}

// is_active is stored as 0/1, the domain uses a bool.
func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func fromNullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toNullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
