package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmconnect/trader/internal/domain/models"
)

const queryDateLayout = "2006-01-02"

// parseCriteria extracts the view parameters from request query values.
// Dates are interpreted in the application's reporting timezone so the
// calendar-day filter matches local wall clocks.
func parseCriteria(c *gin.Context, loc *time.Location) (models.Criteria, error) {
	criteria := models.Criteria{
		Search:     c.Query("search"),
		Commission: models.CommissionFilter(c.DefaultQuery("commission", string(models.CommissionAll))),
	}

	switch criteria.Commission {
	case models.CommissionAll, models.CommissionWith, models.CommissionWithout:
	default:
		return models.Criteria{}, fmt.Errorf("invalid commission filter %q", criteria.Commission)
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation(queryDateLayout, raw, loc)
		if err != nil {
			return models.Criteria{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
		}
		criteria.Date = date
	}

	return criteria, nil
}
