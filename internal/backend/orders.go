package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
)

type orderItemResponse struct {
	Name     string   `json:"name" validate:"required"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

type orderResponse struct {
	ID            string              `json:"_id" validate:"required"`
	BillNumber    string              `json:"billNumber"`
	StudentName   string              `json:"studentName"`
	OrderDate     *utils.RFC3339Date  `json:"orderDate" validate:"required"`
	Items         []orderItemResponse `json:"items" validate:"dive"`
	TotalAmount   *float64            `json:"totalAmount" validate:"required,gte=0"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status" validate:"required"`
}

func (o orderResponse) toModel() models.Order {
	items := make([]models.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = models.OrderItem{
			Name:     item.Name,
			Quantity: *item.Quantity,
			Price:    *item.Price,
		}
	}

	return models.Order{
		ID:            o.ID,
		BillNumber:    o.BillNumber,
		StudentName:   o.StudentName,
		OrderDate:     *o.OrderDate,
		Items:         items,
		TotalAmount:   *o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Status:        models.OrderStatus(o.Status),
	}
}

// ListOrders GET /admin/orders. Возвращает либо полностью валидный список, либо ErrDecode.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var parsed []orderResponse
	if err := c.do(ctx, http.MethodGet, "/admin/orders", true, nil, &parsed); err != nil {
		return nil, err
	}

	result := make([]models.Order, 0, len(parsed))
	seen := make(map[string]struct{}, len(parsed))

	for i := range parsed {
		if err := c.check(&parsed[i]); err != nil {
			return nil, fmt.Errorf("order #%d: %w", i, err)
		}

		if _, ok := seen[parsed[i].ID]; ok {
			return nil, fmt.Errorf("%w: duplicate order id %q", ErrDecode, parsed[i].ID)
		}
		seen[parsed[i].ID] = struct{}{}

		result = append(result, parsed[i].toModel())
	}

	return result, nil
}

// MarkReady PATCH /admin/orders/{id}/mark-ready.
func (c *Client) MarkReady(ctx context.Context, orderID string) (*models.Order, error) {
	return c.patchOrder(ctx, orderID, "mark-ready")
}

// MarkDelivered PATCH /admin/orders/{id}/mark-delivered.
func (c *Client) MarkDelivered(ctx context.Context, orderID string) (*models.Order, error) {
	return c.patchOrder(ctx, orderID, "mark-delivered")
}

func (c *Client) patchOrder(ctx context.Context, orderID, action string) (*models.Order, error) {
	var parsed orderResponse
	path := fmt.Sprintf("/admin/orders/%s/%s", url.PathEscape(orderID), action)

	if err := c.do(ctx, http.MethodPatch, path, true, struct{}{}, &parsed); err != nil {
		return nil, err
	}

	if err := c.check(&parsed); err != nil {
		return nil, err
	}

	order := parsed.toModel()
	return &order, nil
}
