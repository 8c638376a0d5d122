// Package insighting calcula os indicadores exibidos nos cartões do
// dashboard: receita total, pedidos distintos, clientes distintos e ticket
// médio.
package insighting

import (
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Service struct {
	store  dataset.Provider
	filter filtering.Filterer
}

func NewService(store dataset.Provider, filter filtering.Filterer) Insighter {
	return &Service{
		store:  store,
		filter: filter,
	}
}

// GetSalesMetrics é uma redução pura e determinística sobre o conjunto
// filtrado. O ticket médio é zero quando não há pedidos no período.
func (s *Service) GetSalesMetrics(opts domain.FilterOptions) (*domain.SalesMetrics, error) {
	ds, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	records := s.filter.Apply(ds, opts)

	var totalSales float64
	orders := make(map[string]struct{})
	customers := make(map[string]struct{})

	for _, record := range records {
		totalSales += record.TotalPrice
		orders[record.InvoiceNo] = struct{}{}
		customers[record.CustomerID] = struct{}{}
	}

	metrics := &domain.SalesMetrics{
		TotalSales:     totalSales,
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
	}

	// Guarda explícita contra divisão por zero
	if metrics.TotalOrders > 0 {
		metrics.AvgOrderValue = totalSales / float64(metrics.TotalOrders)
	}

	metrics.Formatted = domain.MetricsDisplay{
		TotalSales:     utils.FormatCurrency(metrics.TotalSales),
		TotalOrders:    utils.FormatCount(metrics.TotalOrders),
		TotalCustomers: utils.FormatCount(metrics.TotalCustomers),
		AvgOrderValue:  utils.FormatCurrency(metrics.AvgOrderValue),
	}

	return metrics, nil
}
