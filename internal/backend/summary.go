package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
)

type billDetailResponse struct {
	BillNumber    string             `json:"billNumber"`
	StudentName   string             `json:"studentName"`
	OrderDate     *utils.RFC3339Date `json:"orderDate" validate:"required"`
	TotalAmount   *float64           `json:"totalAmount" validate:"required,gte=0"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
}

type dailySummaryResponse struct {
	TotalOrders  *int                 `json:"totalOrders" validate:"required,gte=0"`
	TotalRevenue *float64             `json:"totalRevenue" validate:"required,gte=0"`
	BillDetails  []billDetailResponse `json:"billDetails" validate:"dive"`
}

// DailySummary GET /admin/daily-summary?date=YYYY-MM-DD.
// Дата передается как локальная календарная, без приведения к UTC.
func (c *Client) DailySummary(ctx context.Context, date utils.LocalDate) (*models.DailySummary, error) {
	query := url.Values{}
	query.Set("date", date.String())

	var parsed dailySummaryResponse
	if err := c.do(ctx, http.MethodGet, "/admin/daily-summary?"+query.Encode(), true, nil, &parsed); err != nil {
		return nil, err
	}

	if err := c.check(&parsed); err != nil {
		return nil, err
	}

	bills := make([]models.BillDetail, len(parsed.BillDetails))
	for i, bill := range parsed.BillDetails {
		bills[i] = models.BillDetail{
			BillNumber:    bill.BillNumber,
			StudentName:   bill.StudentName,
			OrderDate:     *bill.OrderDate,
			TotalAmount:   *bill.TotalAmount,
			PaymentMethod: bill.PaymentMethod,
			Status:        models.OrderStatus(bill.Status),
		}
	}

	return &models.DailySummary{
		Date:         date,
		TotalOrders:  *parsed.TotalOrders,
		TotalRevenue: *parsed.TotalRevenue,
		BillDetails:  bills,
	}, nil
}
