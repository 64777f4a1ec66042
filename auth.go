package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a pre-computed bcrypt hash used when a login username isn't found.
// Running bcrypt against it (instead of returning early) keeps response time
// constant, preventing timing-based username enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// signup creates a user plus their profile_settings row with default bio-data.
// POST /api/signup (public). Returns the auth token so the app can log the new
// user straight in.
func (h *Handler) signup(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.TrimSpace(body.Email)
	if body.Username == "" || body.Email == "" || body.Password == "" {
		apiError(c, http.StatusBadRequest, "username, email, and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create user")
		return
	}
	authToken := uuid.New().String()

	var userID int
	err = h.db.QueryRow(c,
		`INSERT INTO users (username, email, password, auth_token)
		 VALUES (@username, @email, @password, @authToken) RETURNING id`,
		pgx.NamedArgs{
			"username":  body.Username,
			"email":     body.Email,
			"password":  string(hash),
			"authToken": authToken,
		}).Scan(&userID)
	if err != nil {
		// Almost always the UNIQUE constraint on username/email.
		apiError(c, http.StatusConflict, "username or email already taken")
		return
	}

	if _, err := h.db.Exec(c,
		`INSERT INTO profile_settings (user_id, name, image, weight_kg, height_cm, age_years, sex, activity_factor)
		 VALUES (@userID, @name, @image, @weightKg, @heightCm, @ageYears, @sex, @activityFactor)`,
		pgx.NamedArgs{
			"userID":         userID,
			"name":           strings.ToUpper(body.Username),
			"image":          defaultImage,
			"weightKg":       defaultWeightKg,
			"heightCm":       defaultHeightCm,
			"ageYears":       defaultAgeYears,
			"sex":            defaultSex,
			"activityFactor": defaultActivityFactor,
		}); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": authToken, "user_id": userID})
}

// login verifies username/password and returns the user's auth token.
// POST /api/login (public — no auth required).
func (h *Handler) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, lookupErr := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE username = @username",
		pgx.NamedArgs{"username": body.Username})

	// Always run bcrypt to keep response time constant regardless of whether the
	// username was found — prevents timing-based username enumeration.
	hashToCheck := string(dummyHash)
	if lookupErr == nil {
		hashToCheck = u.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(body.Password))

	if lookupErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if compareErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": u.AuthToken, "user_id": u.ID})
}

// authMiddleware validates the Bearer token and sets user_id on the context.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		var userID int
		err := h.db.QueryRow(c, "SELECT id FROM users WHERE auth_token = $1", token).Scan(&userID)
		if err != nil {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
