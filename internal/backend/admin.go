package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token" validate:"required"`
}

// Login POST /admin/login. Возвращает bearer-токен администратора.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var parsed loginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", false, loginRequest{email, password}, &parsed); err != nil {
		return "", err
	}

	if err := c.check(&parsed); err != nil {
		return "", err
	}

	return parsed.Token, nil
}

type canteenStatusResponse struct {
	IsOpen *bool `json:"isOpen" validate:"required"`
}

// CanteenStatus GET /canteen-status/public, без авторизации.
func (c *Client) CanteenStatus(ctx context.Context) (models.CanteenStatus, error) {
	return c.canteenStatus(ctx, http.MethodGet, "/canteen-status/public", false)
}

// ToggleCanteen PATCH /admin/canteen-status.
func (c *Client) ToggleCanteen(ctx context.Context) (models.CanteenStatus, error) {
	return c.canteenStatus(ctx, http.MethodPatch, "/admin/canteen-status", true)
}

func (c *Client) canteenStatus(ctx context.Context, method, path string, authorized bool) (models.CanteenStatus, error) {
	var body any
	if method != http.MethodGet {
		body = struct{}{}
	}

	var parsed canteenStatusResponse
	if err := c.do(ctx, method, path, authorized, body, &parsed); err != nil {
		return models.CanteenStatus{}, err
	}

	if err := c.check(&parsed); err != nil {
		return models.CanteenStatus{}, err
	}

	return models.CanteenStatus{IsOpen: *parsed.IsOpen}, nil
}

type feedbackResponse struct {
	ID           string             `json:"_id" validate:"required"`
	StudentName  string             `json:"studentName"`
	FeedbackText string             `json:"feedbackText"`
	IsRead       bool               `json:"isRead"`
	CreatedAt    *utils.RFC3339Date `json:"createdAt" validate:"required"`
}

// ListFeedback GET /admin/feedback.
func (c *Client) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var parsed []feedbackResponse
	if err := c.do(ctx, http.MethodGet, "/admin/feedback", true, nil, &parsed); err != nil {
		return nil, err
	}

	result := make([]models.Feedback, 0, len(parsed))
	for i := range parsed {
		if err := c.check(&parsed[i]); err != nil {
			return nil, fmt.Errorf("feedback #%d: %w", i, err)
		}

		result = append(result, models.Feedback{
			ID:           parsed[i].ID,
			StudentName:  parsed[i].StudentName,
			FeedbackText: parsed[i].FeedbackText,
			IsRead:       parsed[i].IsRead,
			CreatedAt:    *parsed[i].CreatedAt,
		})
	}

	return result, nil
}

// MarkFeedbackRead PATCH /admin/feedback/{id}/read.
func (c *Client) MarkFeedbackRead(ctx context.Context, feedbackID string) error {
	path := fmt.Sprintf("/admin/feedback/%s/read", url.PathEscape(feedbackID))
	return c.do(ctx, http.MethodPatch, path, true, struct{}{}, nil)
}

// MarkAllFeedbackRead POST /admin/feedback/mark-all-read.
func (c *Client) MarkAllFeedbackRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/feedback/mark-all-read", true, struct{}{}, nil)
}
