package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Renal37/canteen-admin/internal/models"
)

type advertisementResponse struct {
	ID       string `json:"_id" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

// ListAdvertisements GET /admin/advertisements.
func (c *Client) ListAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	var parsed []advertisementResponse
	if err := c.do(ctx, http.MethodGet, "/admin/advertisements", true, nil, &parsed); err != nil {
		return nil, err
	}

	result := make([]models.Advertisement, 0, len(parsed))
	for i := range parsed {
		if err := c.check(&parsed[i]); err != nil {
			return nil, fmt.Errorf("advertisement #%d: %w", i, err)
		}

		result = append(result, models.Advertisement{
			ID:       parsed[i].ID,
			ImageURL: parsed[i].ImageURL,
			IsActive: *parsed[i].IsActive,
		})
	}

	return result, nil
}

// CreateAdvertisement POST /admin/advertisements, multipart с изображением.
func (c *Client) CreateAdvertisement(ctx context.Context, image models.Upload) error {
	body, contentType, err := multipartBody(nil, &image)
	if err != nil {
		return err
	}

	return c.send(ctx, http.MethodPost, "/admin/advertisements", true, contentType, body, nil)
}

// ToggleAdvertisement PATCH /admin/advertisements/{id}/toggle.
func (c *Client) ToggleAdvertisement(ctx context.Context, adID string) error {
	path := fmt.Sprintf("/admin/advertisements/%s/toggle", url.PathEscape(adID))
	return c.do(ctx, http.MethodPatch, path, true, struct{}{}, nil)
}

// DeleteAdvertisement DELETE /admin/advertisements/{id}.
func (c *Client) DeleteAdvertisement(ctx context.Context, adID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/advertisements/"+url.PathEscape(adID), true, nil, nil)
}
