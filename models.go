package main

import (
	"time"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// profileSettings maps to profile_settings. One row per user holding the
// bio-data the metrics engine runs on, plus the current calorie goal.
// Numeric bio fields are TEXT columns: the app shell submits raw text-input
// strings and the engine decides at computation time whether they parse.
type profileSettings struct {
	UserID         int    `json:"user_id"         db:"user_id"`
	Name           string `json:"name"            db:"name"`
	Image          string `json:"image"           db:"image"`
	WeightKg       string `json:"weight_kg"       db:"weight_kg"`
	HeightCm       string `json:"height_cm"       db:"height_cm"`
	AgeYears       string `json:"age_years"       db:"age_years"`
	Sex            string `json:"sex"             db:"sex"`
	ActivityFactor string `json:"activity_factor" db:"activity_factor"`

	// CalorieGoal is the persisted TDEE, global (not date-scoped). Overwritten
	// every time the metrics engine runs successfully after a profile change.
	CalorieGoal int `json:"calorie_goal" db:"calorie_goal"`

	// Computed fields — populated server-side by the metrics engine; not stored.
	// db:"-" tells RowToStructByName to skip these during scanning. They stay
	// nil (omitted from JSON) when the engine skips a half-edited profile.
	BMI            *float64 `json:"bmi,omitempty"            db:"-"`
	BMR            *int     `json:"bmr,omitempty"            db:"-"`
	TDEE           *int     `json:"tdee,omitempty"           db:"-"`
	Classification *string  `json:"classification,omitempty" db:"-"`
}

// dailyRecord is one calendar day's activity counters. Exactly one record
// exists per (user, date); a day nobody touched reads back as all zeros.
type dailyRecord struct {
	Steps     int `json:"steps"      db:"steps"`
	WaterCups int `json:"water_cups" db:"water_cups"`
	Calories  int `json:"calories"   db:"calories"`
}

// daySnapshot is a dailyRecord projected for display: stored counters plus
// the derived distance and progress ratios. Progress ratios are clamped to 1.
type daySnapshot struct {
	Date            string  `json:"date"`
	Steps           int     `json:"steps"`
	WaterCups       int     `json:"water_cups"`
	Calories        int     `json:"calories"`
	DistanceKm      float64 `json:"distance_km"`
	StepProgress    float64 `json:"step_progress"`
	CalorieGoal     int     `json:"calorie_goal"`
	CalorieProgress float64 `json:"calorie_progress"`
}

/* ─── Request types ──────────────────────────────────────────────────── */

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers — only non-nil fields get written to the database.
// Numeric bio fields are deliberately not range-checked here: the original
// app saves whatever the user typed and the metrics engine skips computation
// until the values parse again.
type patchProfileRequest struct {
	Name           *string `json:"name"`
	Image          *string `json:"image"`
	WeightKg       *string `json:"weight_kg"`
	HeightCm       *string `json:"height_cm"`
	AgeYears       *string `json:"age_years"`
	Sex            *string `json:"sex"`
	ActivityFactor *string `json:"activity_factor"`
}

// statsDeltaRequest is the request body for POST /api/stats/:field.
// Date defaults to today when omitted.
type statsDeltaRequest struct {
	Date  string `json:"date"`
	Delta int    `json:"delta"`
}
