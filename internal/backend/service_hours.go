package backend

import (
	"context"
	"net/http"

	"github.com/Renal37/canteen-admin/internal/models"
)

type serviceHoursResponse struct {
	BreakfastStart string `json:"breakfastStart" validate:"required"`
	BreakfastEnd   string `json:"breakfastEnd" validate:"required"`
	LunchStart     string `json:"lunchStart" validate:"required"`
	LunchEnd       string `json:"lunchEnd" validate:"required"`
}

func (s serviceHoursResponse) toModel() models.ServiceHours {
	return models.ServiceHours{
		BreakfastStart: s.BreakfastStart,
		BreakfastEnd:   s.BreakfastEnd,
		LunchStart:     s.LunchStart,
		LunchEnd:       s.LunchEnd,
	}
}

// ServiceHours GET /service-hours/public, без авторизации.
func (c *Client) ServiceHours(ctx context.Context) (models.ServiceHours, error) {
	var parsed serviceHoursResponse
	if err := c.do(ctx, http.MethodGet, "/service-hours/public", false, nil, &parsed); err != nil {
		return models.ServiceHours{}, err
	}

	if err := c.check(&parsed); err != nil {
		return models.ServiceHours{}, err
	}

	return parsed.toModel(), nil
}

// UpdateServiceHours PATCH /admin/service-hours. Возвращает сохраненные бэкендом часы.
func (c *Client) UpdateServiceHours(ctx context.Context, hours models.ServiceHours) (models.ServiceHours, error) {
	var parsed serviceHoursResponse
	if err := c.do(ctx, http.MethodPatch, "/admin/service-hours", true, hours, &parsed); err != nil {
		return models.ServiceHours{}, err
	}

	if err := c.check(&parsed); err != nil {
		return models.ServiceHours{}, err
	}

	return parsed.toModel(), nil
}
