package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/models"
)

const invalidBodyMessage = "Invalid request body"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// validationProblems reports the joined problem list when err carries one.
func validationProblems(err error) (string, bool) {
	var problems *models.ValidationError
	if !errors.As(err, &problems) {
		return "", false
	}
	return problems.Error(), true
}

func validationMessage(problems ...string) string {
	return (&models.ValidationError{Problems: problems}).Error()
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseDayQuery reads an optional YYYY-MM-DD query value in location.
func parseDayQuery(c *fiber.Ctx, key string, location *time.Location) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, location)
	if err != nil {
		return nil, false
	}
	return &day, true
}
