package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// getProfile returns the user's bio-data with computed metrics attached.
// GET /api/profile. The bmi/bmr/tdee/classification fields are omitted when
// any bio field fails to parse — the app keeps showing its last-known values.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	s, err := queryOne[profileSettings](h.db, c,
		"SELECT * FROM profile_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	populateComputedMetrics(&s)

	c.JSON(http.StatusOK, s)
}

// patchProfile updates only the provided bio-data fields, then re-runs the
// metrics engine and propagates the new TDEE into the calorie goal.
// PATCH /api/profile. Uses pointer fields in the request body to distinguish
// "not provided" from empty — only non-nil fields get updated.
//
// If the resulting profile no longer parses, the computation is skipped and
// the previously stored calorie goal stays as-is (stale on purpose: a
// half-edited profile must not zero out the home screen's progress ring).
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate activity_factor before saving — an unknown factor silently breaks
	// all future TDEE calculations with no visible error. Weight/height/age are
	// stored as submitted; the engine decides at compute time whether they parse.
	if body.ActivityFactor != nil {
		if _, ok := activityFactors[*body.ActivityFactor]; !ok {
			apiError(c, http.StatusBadRequest, "activity_factor must be one of: 1.2, 1.55, 1.9")
			return
		}
	}

	// Build SET clause dynamically — only update fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.Name != nil {
		setClauses = append(setClauses, "name = @name")
		args["name"] = *body.Name
	}
	if body.Image != nil {
		setClauses = append(setClauses, "image = @image")
		args["image"] = *body.Image
	}
	if body.WeightKg != nil {
		setClauses = append(setClauses, "weight_kg = @weightKg")
		args["weightKg"] = *body.WeightKg
	}
	if body.HeightCm != nil {
		setClauses = append(setClauses, "height_cm = @heightCm")
		args["heightCm"] = *body.HeightCm
	}
	if body.AgeYears != nil {
		setClauses = append(setClauses, "age_years = @ageYears")
		args["ageYears"] = *body.AgeYears
	}
	if body.Sex != nil {
		setClauses = append(setClauses, "sex = @sex")
		args["sex"] = *body.Sex
	}
	if body.ActivityFactor != nil {
		setClauses = append(setClauses, "activity_factor = @activityFactor")
		args["activityFactor"] = *body.ActivityFactor
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE profile_settings SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	s, err := queryOne[profileSettings](h.db, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	// Goal propagation: every successful metrics run overwrites the global
	// calorie goal with the fresh TDEE.
	if _, _, tdee, ok := computeMetrics(&s); ok {
		if err := h.ledger.setCalorieGoal(c, userID, tdee); err != nil {
			log.Printf("[patchProfile] goal update failed for user %d: %v", userID, err)
		} else {
			s.CalorieGoal = tdee
		}
	}

	populateComputedMetrics(&s)

	c.JSON(http.StatusOK, s)
}

// resetProfile is the factory-reset action: wipes all daily records and puts
// the profile back to its first-use defaults. POST /api/profile/reset.
// Runs in one transaction so a failure can't leave a half-wiped account.
func (h *Handler) resetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	tx, err := h.db.Begin(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to reset profile")
		return
	}
	defer tx.Rollback(c)

	if _, err := tx.Exec(c,
		"DELETE FROM daily_stats WHERE user_id = $1", userID); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to reset profile")
		return
	}
	if _, err := tx.Exec(c,
		`UPDATE profile_settings SET
			name            = @name,
			image           = @image,
			weight_kg       = @weightKg,
			height_cm       = @heightCm,
			age_years       = @ageYears,
			sex             = @sex,
			activity_factor = @activityFactor,
			calorie_goal    = 0
		 WHERE user_id = @userID`,
		pgx.NamedArgs{
			"userID":         userID,
			"name":           defaultName,
			"image":          defaultImage,
			"weightKg":       defaultWeightKg,
			"heightCm":       defaultHeightCm,
			"ageYears":       defaultAgeYears,
			"sex":            defaultSex,
			"activityFactor": defaultActivityFactor,
		}); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to reset profile")
		return
	}
	if err := tx.Commit(c); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to reset profile")
		return
	}

	c.Status(http.StatusNoContent)
}
