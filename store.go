package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgStatsStore implements statsStore on top of the daily_stats and
// profile_settings tables. The UNIQUE(user_id, date) constraint on
// daily_stats makes putDayRecord a single atomic upsert — all three counters
// land together or not at all.
type pgStatsStore struct {
	db *pgxpool.Pool
}

func (s *pgStatsStore) dayRecord(ctx context.Context, userID int, date string) (dailyRecord, bool, error) {
	var rec dailyRecord
	err := s.db.QueryRow(ctx,
		"SELECT steps, water_cups, calories FROM daily_stats WHERE user_id = $1 AND date = $2",
		userID, date).Scan(&rec.Steps, &rec.WaterCups, &rec.Calories)
	if errors.Is(err, pgx.ErrNoRows) {
		return dailyRecord{}, false, nil
	}
	if err != nil {
		return dailyRecord{}, false, err
	}
	return rec, true, nil
}

func (s *pgStatsStore) putDayRecord(ctx context.Context, userID int, date string, rec dailyRecord) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO daily_stats (user_id, date, steps, water_cups, calories)
		 VALUES (@userID, @date, @steps, @waterCups, @calories)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			steps      = EXCLUDED.steps,
			water_cups = EXCLUDED.water_cups,
			calories   = EXCLUDED.calories`,
		pgx.NamedArgs{
			"userID":    userID,
			"date":      date,
			"steps":     rec.Steps,
			"waterCups": rec.WaterCups,
			"calories":  rec.Calories,
		})
	return err
}

// calorieGoal returns the stored goal, or 0 when no goal has been written yet
// (the ledger substitutes its default for 0).
func (s *pgStatsStore) calorieGoal(ctx context.Context, userID int) (int, error) {
	var goal int
	err := s.db.QueryRow(ctx,
		"SELECT calorie_goal FROM profile_settings WHERE user_id = $1", userID).Scan(&goal)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return goal, nil
}

func (s *pgStatsStore) setCalorieGoal(ctx context.Context, userID, goal int) error {
	_, err := s.db.Exec(ctx,
		"UPDATE profile_settings SET calorie_goal = $2 WHERE user_id = $1", userID, goal)
	return err
}
