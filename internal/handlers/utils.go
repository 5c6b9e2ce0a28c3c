package handlers

import (
	"fmt"

	"finboard/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getIdentityFromContext resolves the authenticated caller set by the auth
// middleware. Returns ErrUnauthorized if the context carries no identity.
func getIdentityFromContext(c echo.Context) (models.Identity, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return models.Identity{}, ErrUnauthorized
	}

	email, _ := c.Get("user_email").(string)

	return models.Identity{
		UserID: userID,
		Email:  email,
	}, nil
}

func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
