package models

import "github.com/Renal37/canteen-admin/internal/utils"

type BillDetail struct {
	BillNumber    string            `json:"billNumber"`
	StudentName   string            `json:"studentName"`
	OrderDate     utils.RFC3339Date `json:"orderDate"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        OrderStatus       `json:"status"`
}

type DailySummary struct {
	Date         utils.LocalDate `json:"date"`
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue float64         `json:"totalRevenue"`
	BillDetails  []BillDetail    `json:"billDetails"`
}
