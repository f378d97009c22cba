package dto

import "github.com/BruksfildServices01/office-scheduler/internal/models"

type CapacityDayDTO struct {
	DayOfWeek           string `json:"dayOfWeek"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotsTotal          int    `json:"slotsTotal"`
	SlotsAvailable      int    `json:"slotsAvailable"`
	IsActive            bool   `json:"isActive"`
	AcceptingNewClients *bool  `json:"acceptingNewClients"`
}

func NewCapacityDayDTO(c *models.CapacityCell) CapacityDayDTO {
	return CapacityDayDTO{
		DayOfWeek:           c.DayOfWeek,
		StartTime:           c.StartTime,
		EndTime:             c.EndTime,
		SlotsTotal:          c.SlotsTotal,
		SlotsAvailable:      c.SlotsAvailable,
		IsActive:            c.IsActive,
		AcceptingNewClients: c.AcceptingNewClients,
	}
}

func NewCapacityDayDTOs(cells []models.CapacityCell) []CapacityDayDTO {
	out := make([]CapacityDayDTO, 0, len(cells))
	for i := range cells {
		out = append(out, NewCapacityDayDTO(&cells[i]))
	}
	return out
}
