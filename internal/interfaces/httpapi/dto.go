package httpapi

import (
	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/livematch"
	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/schedule"
)

type scheduleBoardDTO struct {
	Query    string             `json:"query"`
	Empty    bool               `json:"empty"`
	Sections []schedule.Section `json:"sections"`
}

type liveListDTO struct {
	Items []livematch.Card `json:"items"`
	Total int              `json:"total"`
}
