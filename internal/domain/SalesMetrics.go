package domain

// SalesMetrics agrega os quatro indicadores exibidos nos cartões do dashboard.
// AvgOrderValue é zero quando não há pedidos no período filtrado.
type SalesMetrics struct {
	TotalSales     float64 `json:"total_sales"`
	TotalOrders    int     `json:"total_orders"`    // Faturas distintas
	TotalCustomers int     `json:"total_customers"` // Clientes distintos
	AvgOrderValue  float64 `json:"avg_order_value"`

	Formatted MetricsDisplay `json:"formatted"`
}

// MetricsDisplay carrega os valores já formatados para exibição direta
// (moeda com separador de milhar, contagens com separador de milhar)
type MetricsDisplay struct {
	TotalSales     string `json:"total_sales"`
	TotalOrders    string `json:"total_orders"`
	TotalCustomers string `json:"total_customers"`
	AvgOrderValue  string `json:"avg_order_value"`
}
