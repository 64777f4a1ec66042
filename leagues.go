package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// league is one joinable competition shown on the leagues screen.
type league struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Reward  string `json:"reward"`
	Players int    `json:"players"`
}

// leaderboardEntry is one row of a league's leaderboard.
type leaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score string `json:"score"`
}

// Placeholder league content until real multiplayer lands. Served from code
// so the screen has something to render in every environment.
var leagues = []league{
	{ID: 1, Name: "Neon Night Run", Reward: "Cyber Badge", Players: 124},
	{ID: 2, Name: "Office Step War", Reward: "$50 Pot", Players: 8},
	{ID: 3, Name: "Marathon Prep", Reward: "Gold Skin", Players: 4500},
}

var leaderboards = map[int][]leaderboardEntry{
	1: {
		{Rank: 1, Name: "SpeedDemon", Score: "12,400"},
		{Rank: 2, Name: "SarahConnor", Score: "11,200"},
		{Rank: 3, Name: "CyberRunner", Score: "9,800"},
		{Rank: 4, Name: "SlowPoke", Score: "5,000"},
	},
}

// getLeagues returns the active leagues list. GET /api/leagues.
func (h *Handler) getLeagues(c *gin.Context) {
	c.JSON(http.StatusOK, leagues)
}

// getLeaderboard returns a league's leaderboard. GET /api/leagues/:id/leaderboard.
// Leagues without a dedicated board share the default one.
func (h *Handler) getLeaderboard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid league id")
		return
	}
	found := false
	for _, l := range leagues {
		if l.ID == id {
			found = true
			break
		}
	}
	if !found {
		apiError(c, http.StatusNotFound, "league not found")
		return
	}

	board, ok := leaderboards[id]
	if !ok {
		board = leaderboards[1]
	}
	c.JSON(http.StatusOK, board)
}
