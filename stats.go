package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getDailySnapshot returns the ledger snapshot for a given date.
// GET /api/stats/daily?date=YYYY-MM-DD (defaults to today).
// A date nobody has touched comes back with all counters at zero.
func (h *Handler) getDailySnapshot(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", todayKey())

	// Validate date format before querying — an invalid value silently returns no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	snap, err := h.ledger.snapshotForDate(c, userID, date)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch daily stats")
		return
	}

	c.JSON(http.StatusOK, snap)
}

// getWeekStrip returns snapshots for the seven days centred on today — the
// shape the home screen's calendar strip renders. GET /api/stats/week.
// Past days use the *current* calorie goal; historical ratios shift when the
// goal changes, which is the documented behaviour.
func (h *Handler) getWeekStrip(c *gin.Context) {
	userID := c.GetInt("user_id")
	today := time.Now()

	strip := make([]daySnapshot, 0, 7)
	for i := -3; i <= 3; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		snap, err := h.ledger.snapshotForDate(c, userID, date)
		if err != nil {
			apiError(c, http.StatusInternalServerError, "failed to fetch week stats")
			return
		}
		strip = append(strip, snap)
	}

	c.JSON(http.StatusOK, strip)
}

// postStatsDelta applies one increment to a day's counter and returns the
// updated record. POST /api/stats/:field with field one of steps/water/calories.
//
// Steps accept any signed delta: the app shell owns the single pedometer
// subscription and forwards each sensor callback here once. Water and
// calories are discrete user actions and must be positive.
func (h *Handler) postStatsDelta(c *gin.Context) {
	userID := c.GetInt("user_id")
	field := c.Param("field")

	if !validStatFields[field] {
		apiError(c, http.StatusBadRequest, "field must be one of: steps, water, calories")
		return
	}

	var body statsDeltaRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = todayKey()
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if field != fieldSteps && body.Delta <= 0 {
		apiError(c, http.StatusBadRequest, "delta must be positive")
		return
	}
	if body.Delta == 0 {
		apiError(c, http.StatusBadRequest, "delta is required")
		return
	}

	rec, err := h.ledger.applyDelta(c, userID, body.Date, field, body.Delta)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update daily stats")
		return
	}

	c.JSON(http.StatusOK, rec)
}
