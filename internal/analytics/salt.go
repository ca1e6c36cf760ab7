package analytics

import (
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

type SaltStatus string

const (
	SaltDanger  SaltStatus = "danger"
	SaltWarning SaltStatus = "warning"
	SaltSuccess SaltStatus = "success"
	SaltCaution SaltStatus = "caution"
)

// SaltDailyStatus grades a day's total against the recommendation. Totals
// at or above one and a half times the target read as caution.
func SaltDailyStatus(total float64, recommendation models.SaltRecommendation) SaltStatus {
	switch {
	case total < recommendation.MinDailyAmount:
		return SaltDanger
	case total < recommendation.DailyTarget:
		return SaltWarning
	case total < recommendation.DailyTarget*1.5:
		return SaltSuccess
	default:
		return SaltCaution
	}
}

func SaltTotalForDay(intakes []models.SaltIntake, day time.Time, location *time.Location) float64 {
	target := DateAtLocation(day, location)
	total := 0.0
	for _, intake := range intakes {
		if DateAtLocation(intake.Date, location).Equal(target) {
			total += intake.Amount
		}
	}
	return total
}
