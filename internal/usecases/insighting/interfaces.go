package insighting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Insighter define a interface para os indicadores agregados do dashboard
type Insighter interface {
	// GetSalesMetrics calcula os quatro indicadores sobre o conjunto filtrado
	GetSalesMetrics(opts domain.FilterOptions) (*domain.SalesMetrics, error)
}
