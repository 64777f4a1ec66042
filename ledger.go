package main

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Derived-metric constants for the daily snapshot.
const (
	kmPerStep          = 0.0008 // average stride, matches the app's distance card
	dailyStepTarget    = 10000
	defaultCalorieGoal = 2500 // shown before the metrics engine ever writes a TDEE
)

// Ledger field names accepted by applyDelta. Reject unknown fields with an
// error rather than silently dropping the delta.
const (
	fieldSteps    = "steps"
	fieldWater    = "water"
	fieldCalories = "calories"
)

var validStatFields = map[string]bool{
	fieldSteps:    true,
	fieldWater:    true,
	fieldCalories: true,
}

// statsStore is the persistence boundary of the daily ledger: per-day counter
// records keyed by (user, ISO date) plus the global calorie goal. dayRecord
// never creates — a missing date reads back as found=false. putDayRecord
// always upserts the full record as a unit so a partial write can't leave a
// day's counters inconsistent.
type statsStore interface {
	dayRecord(ctx context.Context, userID int, date string) (dailyRecord, bool, error)
	putDayRecord(ctx context.Context, userID int, date string, rec dailyRecord) error
	calorieGoal(ctx context.Context, userID int) (int, error)
	setCalorieGoal(ctx context.Context, userID, goal int) error
}

// dailyLedger owns all mutations of per-day activity records. Every
// read-modify-write goes through a single mutex so a sensor step delta
// landing at the same time as a water or meal increment can never lose an
// update. Dates are independent partitions, but one lock for all of them is
// plenty at this write rate.
type dailyLedger struct {
	mu    sync.Mutex
	store statsStore
}

func newDailyLedger(store statsStore) *dailyLedger {
	return &dailyLedger{store: store}
}

// todayKey returns the local calendar day as an ISO date string — the key
// under which all of today's counters live.
func todayKey() string {
	return time.Now().Format("2006-01-02")
}

// getRecord returns the record for date, or a zero-value record if the date
// has never been written. Reads never materialize a row.
func (l *dailyLedger) getRecord(ctx context.Context, userID int, date string) (dailyRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, _, err := l.store.dayRecord(ctx, userID, date)
	return rec, err
}

// applyDelta adds delta to one counter of the given date's record and
// persists the whole record back. Steps accept any signed delta (the sensor
// contract) but the stored count never goes below zero; water and calories
// are discrete user actions and must be positive. Returns the updated record.
func (l *dailyLedger) applyDelta(ctx context.Context, userID int, date, field string, delta int) (dailyRecord, error) {
	if !validStatFields[field] {
		return dailyRecord{}, fmt.Errorf("unknown stat field %q", field)
	}
	if field != fieldSteps && delta <= 0 {
		return dailyRecord{}, fmt.Errorf("delta for %s must be positive, got %d", field, delta)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, _, err := l.store.dayRecord(ctx, userID, date)
	if err != nil {
		return dailyRecord{}, err
	}

	switch field {
	case fieldSteps:
		rec.Steps += delta
		if rec.Steps < 0 {
			rec.Steps = 0
		}
	case fieldWater:
		rec.WaterCups += delta
	case fieldCalories:
		rec.Calories += delta
	}

	if err := l.store.putDayRecord(ctx, userID, date, rec); err != nil {
		return dailyRecord{}, err
	}
	return rec, nil
}

// setCalorieGoal persists tdee as the user's current calorie goal. The goal
// is global, not date-scoped: progress ratios for any date are computed
// against whatever goal is current when the snapshot is taken.
func (l *dailyLedger) setCalorieGoal(ctx context.Context, userID, tdee int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.setCalorieGoal(ctx, userID, tdee)
}

// snapshotForDate projects the record for date into its display shape:
// stored counters plus derived distance and clamped progress ratios.
func (l *dailyLedger) snapshotForDate(ctx context.Context, userID int, date string) (daySnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, _, err := l.store.dayRecord(ctx, userID, date)
	if err != nil {
		return daySnapshot{}, err
	}
	goal, err := l.store.calorieGoal(ctx, userID)
	if err != nil {
		return daySnapshot{}, err
	}
	if goal <= 0 {
		goal = defaultCalorieGoal
	}

	stepProgress := float64(rec.Steps) / dailyStepTarget
	if stepProgress > 1 {
		stepProgress = 1
	}
	calorieProgress := float64(rec.Calories) / float64(goal)
	if calorieProgress > 1 {
		calorieProgress = 1
	}

	return daySnapshot{
		Date:            date,
		Steps:           rec.Steps,
		WaterCups:       rec.WaterCups,
		Calories:        rec.Calories,
		DistanceKm:      float64(rec.Steps) * kmPerStep,
		StepProgress:    stepProgress,
		CalorieGoal:     goal,
		CalorieProgress: calorieProgress,
	}, nil
}
