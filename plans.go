package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// planExercise is one movement in a workout plan. Link points at a video
// search so the app can open form tutorials without hosting any media.
type planExercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Link string `json:"link"`
}

// workoutPlan is one entry in the workout catalog.
type workoutPlan struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	Duration  string         `json:"duration"`
	Category  string         `json:"category"`
	Image     string         `json:"image"`
	Exercises []planExercise `json:"exercises"`
}

// workoutPlans is the static workout catalog served to the plans screen.
// Curated content, not user data — lives in code, not the database.
var workoutPlans = []workoutPlan{
	{
		ID:       1,
		Title:    "Lower Body Power",
		Duration: "45 mins",
		Category: "Lower Body",
		Image:    "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?q=80&w=800&auto=format&fit=crop",
		Exercises: []planExercise{
			{Name: "Barbell Squats", Sets: "4 sets x 8 reps", Link: "https://www.youtube.com/results?search_query=how+to+barbell+squat"},
			{Name: "Romanian Deadlifts", Sets: "3 sets x 10 reps", Link: "https://www.youtube.com/results?search_query=how+to+romanian+deadlift"},
			{Name: "Leg Press", Sets: "3 sets x 12 reps", Link: "https://www.youtube.com/results?search_query=how+to+leg+press"},
			{Name: "Calf Raises", Sets: "4 sets x 15 reps", Link: "https://www.youtube.com/results?search_query=standing+calf+raise"},
		},
	},
	{
		ID:       2,
		Title:    "Upper Body Hypertrophy",
		Duration: "60 mins",
		Category: "Upper Body",
		Image:    "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=800&auto=format&fit=crop",
		Exercises: []planExercise{
			{Name: "Incline Bench Press", Sets: "4 sets x 10 reps", Link: "https://www.youtube.com/results?search_query=incline+dumbbell+press"},
			{Name: "Lat Pulldowns", Sets: "3 sets x 12 reps", Link: "https://www.youtube.com/results?search_query=lat+pulldown+form"},
			{Name: "Overhead Press", Sets: "3 sets x 8 reps", Link: "https://www.youtube.com/results?search_query=dumbbell+overhead+press"},
			{Name: "Bicep Curls", Sets: "3 sets x 12 reps", Link: "https://www.youtube.com/results?search_query=dumbbell+bicep+curls"},
		},
	},
	{
		ID:       3,
		Title:    "HIIT Cardio Blast",
		Duration: "20 mins",
		Category: "Cardio",
		Image:    "https://images.unsplash.com/photo-1599058945522-28d584b6f0ff?q=80&w=800&auto=format&fit=crop",
		Exercises: []planExercise{
			{Name: "Burpees", Sets: "30 seconds", Link: "https://www.youtube.com/results?search_query=how+to+do+burpees"},
			{Name: "Mountain Climbers", Sets: "45 seconds", Link: "https://www.youtube.com/results?search_query=mountain+climbers+exercise"},
			{Name: "Jump Squats", Sets: "30 seconds", Link: "https://www.youtube.com/results?search_query=jump+squats"},
			{Name: "High Knees", Sets: "45 seconds", Link: "https://www.youtube.com/results?search_query=high+knees+exercise"},
		},
	},
	{
		ID:       4,
		Title:    "Core Crusher",
		Duration: "15 mins",
		Category: "Abs",
		Image:    "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?q=80&w=800&auto=format&fit=crop",
		Exercises: []planExercise{
			{Name: "Plank", Sets: "3 x 60 seconds", Link: "https://www.youtube.com/results?search_query=plank+form"},
			{Name: "Russian Twists", Sets: "3 sets x 20 reps", Link: "https://www.youtube.com/results?search_query=russian+twists"},
			{Name: "Leg Raises", Sets: "3 sets x 15 reps", Link: "https://www.youtube.com/results?search_query=hanging+leg+raises"},
			{Name: "Bicycle Crunches", Sets: "3 sets x 20 reps", Link: "https://www.youtube.com/results?search_query=bicycle+crunches"},
		},
	},
}

// getWorkoutPlans returns the full workout catalog. GET /api/plans.
func (h *Handler) getWorkoutPlans(c *gin.Context) {
	c.JSON(http.StatusOK, workoutPlans)
}

// getWorkoutPlan returns a single plan by ID. GET /api/plans/:id.
func (h *Handler) getWorkoutPlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid plan id")
		return
	}
	for _, p := range workoutPlans {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	apiError(c, http.StatusNotFound, "plan not found")
}
