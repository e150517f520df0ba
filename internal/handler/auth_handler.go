package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ledger-service/internal/model"
	"ledger-service/pkg/database"
	"ledger-service/pkg/jwtutil"
	"ledger-service/pkg/logger"
	"ledger-service/prometheus"
)

// Login authenticates a user against the legacy user table and returns
// the user's identity and company scope plus a token for the
// management endpoints. Only active accounts may log in.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username and password are required"})
	}

	if req.Username == "" || req.Password == "" {
		prometheus.RecordAuthError("missing_fields")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username and password are required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().
		Where("user_name = ? AND is_active = ?", req.Username, "Y").
		First(&user)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Error("Login lookup failed", zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error during login process"})
		}
		log.Warn("Unknown or inactive user", zap.String("username", req.Username))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or user is inactive"})
	}

	if !user.CheckPassword(req.Password) {
		log.Warn("Invalid password", zap.String("username", req.Username))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid password"})
	}

	token, err := jwtutil.GenerateToken(user.UserName, user.UserID, user.RightsCompID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error during login process"})
	}

	log.Info("User logged in",
		zap.String("username", user.UserName),
		zap.Int("user_id", user.UserID),
		zap.Int("company_id", user.RightsCompID))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"user": echo.Map{
			"UserId":       user.UserID,
			"IsAllComp":    user.IsAllComp,
			"RightsCompId": user.RightsCompID,
			"companyId":    user.RightsCompID,
		},
	})
}
