package entity

import "github.com/shopspring/decimal"

// DashboardStats métricas del panel de administración.
type DashboardStats struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalPurchases  decimal.Decimal `json:"total_purchases"`
	NetEarnings     decimal.Decimal `json:"net_earnings"`
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	AcceptedOrders  int             `json:"accepted_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
	TotalProducts   int             `json:"total_products"`
}

// TopProduct producto más vendido (solo órdenes aceptadas o enviadas).
type TopProduct struct {
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
