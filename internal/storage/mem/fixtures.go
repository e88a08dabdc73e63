package mem

import (
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
)

func intPtr(v int) *int { return &v }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixtureTeams() []domain.Team {
	return []domain.Team{
		{
			ID:          1,
			Name:        "Leones FC",
			Category:    "Sub-10",
			CoachName:   "Carlos Mendoza",
			Description: "Equipo de fútbol Leones FC - Entrenando futuros campeones",
			MaxPlayers:  25,
			CreatedAt:   date(2024, time.February, 1),
			UpdatedAt:   date(2024, time.February, 1),
		},
		{
			ID:          2,
			Name:        "Águilas United",
			Category:    "Sub-12",
			CoachName:   "Ana Rodríguez",
			Description: "Equipo de fútbol Águilas United - Entrenando futuros campeones",
			MaxPlayers:  25,
			CreatedAt:   date(2024, time.March, 15),
			UpdatedAt:   date(2024, time.March, 15),
		},
	}
}

func fixturePlayers() []domain.Player {
	registered := date(2024, time.February, 5)
	return []domain.Player{
		{
			ID:               1,
			Name:             "Mateo García Flores",
			BirthDate:        date(2016, time.March, 14),
			Position:         domain.PositionForward,
			TeamID:           intPtr(1),
			ParentName:       "Elena García",
			ParentPhone:      "+57 310 5550101",
			ParentEmail:      "elena.garcia@gmail.com",
			EmergencyContact: "Pedro Flores",
			EmergencyPhone:   "+57 311 5550102",
			Active:           true,
			RegistrationDate: registered,
			CreatedAt:        registered,
			UpdatedAt:        registered,
		},
		{
			ID:               2,
			Name:             "Sara López Ruiz",
			BirthDate:        date(2015, time.August, 2),
			Position:         domain.PositionGoalkeeper,
			TeamID:           intPtr(1),
			ParentName:       "Carmen Ruiz",
			ParentPhone:      "+57 312 5550103",
			ParentEmail:      "carmen.ruiz@hotmail.com",
			MedicalNotes:     "Alergia al polen",
			EmergencyContact: "Luis López",
			EmergencyPhone:   "+57 313 5550104",
			Active:           true,
			RegistrationDate: registered,
			CreatedAt:        registered,
			UpdatedAt:        registered,
		},
		{
			ID:               3,
			Name:             "Nicolás Torres Medina",
			BirthDate:        date(2014, time.January, 20),
			Position:         domain.PositionDefender,
			TeamID:           intPtr(2),
			ParentName:       "Sofía Medina",
			ParentPhone:      "+57 314 5550105",
			ParentEmail:      "sofia.medina@yahoo.com",
			EmergencyContact: "Diego Torres",
			EmergencyPhone:   "+57 315 5550106",
			Active:           true,
			RegistrationDate: registered,
			CreatedAt:        registered,
			UpdatedAt:        registered,
		},
		{
			ID:               4,
			Name:             "Valentina Rivera Gómez",
			BirthDate:        date(2017, time.November, 9),
			Position:         domain.PositionMidfielder,
			TeamID:           nil,
			ParentName:       "María Gómez",
			ParentPhone:      "+57 316 5550107",
			ParentEmail:      "maria.gomez@outlook.com",
			EmergencyContact: "Jorge Rivera",
			EmergencyPhone:   "+57 317 5550108",
			Active:           true,
			RegistrationDate: registered,
			CreatedAt:        registered,
			UpdatedAt:        registered,
		},
		{
			ID:               5,
			Name:             "Emilio Castro Vargas",
			BirthDate:        date(2015, time.May, 30),
			Position:         domain.PositionForward,
			TeamID:           intPtr(2),
			ParentName:       "Paula Vargas",
			ParentPhone:      "+57 318 5550109",
			ParentEmail:      "paula.vargas@gmail.com",
			EmergencyContact: "Andrés Castro",
			EmergencyPhone:   "+57 319 5550110",
			Active:           false,
			RegistrationDate: registered,
			CreatedAt:        registered,
			UpdatedAt:        registered,
		},
	}
}
