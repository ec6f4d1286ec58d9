package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Renal37/canteen-admin/internal/models"
)

// subCategoryRef подкатегория блюда: бэкенд отдает либо объект, либо только id.
type subCategoryRef struct {
	models.MenuSubCategory
}

func (s *subCategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		s.ID = id
		return nil
	}

	return json.Unmarshal(data, &s.MenuSubCategory)
}

type menuItemResponse struct {
	ID          string          `json:"_id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Price       *float64        `json:"price" validate:"required,gte=0"`
	Category    string          `json:"category" validate:"required"`
	Stock       *int            `json:"stock" validate:"omitempty,gte=0"`
	SubCategory *subCategoryRef `json:"subCategory"`
	ImageURL    string          `json:"imageUrl"`
}

func (m menuItemResponse) toModel() models.MenuItem {
	item := models.MenuItem{
		ID:       m.ID,
		Name:     m.Name,
		Price:    *m.Price,
		Category: m.Category,
		ImageURL: m.ImageURL,
	}
	if m.Stock != nil {
		item.Stock = *m.Stock
	}
	if m.SubCategory != nil && m.SubCategory.ID != "" {
		subCategory := m.SubCategory.MenuSubCategory
		item.SubCategory = &subCategory
	}
	return item
}

// ListMenu GET /admin/menu.
func (c *Client) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var parsed []menuItemResponse
	if err := c.do(ctx, http.MethodGet, "/admin/menu", true, nil, &parsed); err != nil {
		return nil, err
	}

	result := make([]models.MenuItem, 0, len(parsed))
	for i := range parsed {
		if err := c.check(&parsed[i]); err != nil {
			return nil, fmt.Errorf("menu item #%d: %w", i, err)
		}
		result = append(result, parsed[i].toModel())
	}

	return result, nil
}

// GetMenuItem GET /admin/menu/{id}.
func (c *Client) GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error) {
	var parsed menuItemResponse
	path := "/admin/menu/" + url.PathEscape(itemID)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &parsed); err != nil {
		return nil, err
	}

	if err := c.check(&parsed); err != nil {
		return nil, err
	}

	item := parsed.toModel()
	return &item, nil
}

// CreateMenuItem POST /menu, multipart с необязательным изображением.
func (c *Client) CreateMenuItem(ctx context.Context, input models.MenuItemInput, image *models.Upload) error {
	return c.sendMenuItem(ctx, http.MethodPost, "/menu", input, image)
}

// UpdateMenuItem PUT /menu/{id}. Без изображения бэкенд оставляет прежнее.
func (c *Client) UpdateMenuItem(ctx context.Context, itemID string, input models.MenuItemInput, image *models.Upload) error {
	return c.sendMenuItem(ctx, http.MethodPut, "/menu/"+url.PathEscape(itemID), input, image)
}

// DeleteMenuItem DELETE /menu/{id}.
func (c *Client) DeleteMenuItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(itemID), true, nil, nil)
}

func (c *Client) sendMenuItem(ctx context.Context, method, path string, input models.MenuItemInput, image *models.Upload) error {
	fields := [][2]string{
		{"name", input.Name},
		{"category", input.Category},
	}
	if input.Price != nil {
		fields = append(fields, [2]string{"price", strconv.FormatFloat(*input.Price, 'f', -1, 64)})
	}
	if input.Stock != nil {
		fields = append(fields, [2]string{"stock", strconv.Itoa(*input.Stock)})
	}
	if input.SubCategory != "" {
		fields = append(fields, [2]string{"subCategory", input.SubCategory})
	}

	body, contentType, err := multipartBody(fields, image)
	if err != nil {
		return err
	}

	return c.send(ctx, method, path, true, contentType, body, nil)
}

// multipartBody собирает форму целиком в памяти.
func multipartBody(fields [][2]string, image *models.Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := form.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", field[0], err)
		}
	}

	if image != nil {
		part, err := form.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, "", fmt.Errorf("failed to copy image: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish form: %w", err)
	}

	return &buf, form.FormDataContentType(), nil
}
