package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesMetrics calcula os quatro cartões do dashboard para o filtro da
// query string
func GetSalesMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts, err := parseFilterOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		metrics, err := service.GetSalesMetrics(opts)
		if err != nil {
			logger.WithError(err).Error("metrics: erro ao calcular indicadores")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_orders":    metrics.TotalOrders,
			"total_customers": metrics.TotalCustomers,
			"country":         opts.CountryOrAll(),
		}).Info("metrics: indicadores calculados")

		writeJSON(w, r, metrics)
	})
}
