package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// chart fatora o fluxo comum dos sete gráficos: parse dos filtros, cálculo da
// visão e resposta JSON
func chart(surface string, view func(domain.FilterOptions) (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts, err := parseFilterOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		payload, err := view(opts)
		if err != nil {
			logger.WithError(err).Errorf("%s: erro ao calcular a visão", surface)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"country": opts.CountryOrAll(),
		}).Debugf("%s: visão calculada", surface)

		writeJSON(w, r, payload)
	})
}

func GetMonthlySales(service charting.Charter) http.Handler {
	return chart("monthly-sales", func(opts domain.FilterOptions) (any, error) {
		return service.MonthlySales(opts)
	})
}

func GetCountryMonthlySales(service charting.Charter) http.Handler {
	return chart("country-monthly-sales", func(opts domain.FilterOptions) (any, error) {
		return service.CountryMonthlySales(opts)
	})
}

func GetHourlySales(service charting.Charter) http.Handler {
	return chart("hourly-sales", func(opts domain.FilterOptions) (any, error) {
		return service.HourlySales(opts)
	})
}

func GetTopProducts(service charting.Charter) http.Handler {
	return chart("top-products", func(opts domain.FilterOptions) (any, error) {
		return service.TopProducts(opts)
	})
}

func GetTopCountries(service charting.Charter) http.Handler {
	return chart("top-countries", func(opts domain.FilterOptions) (any, error) {
		return service.TopCountries(opts)
	})
}

func GetCustomerOrderDistribution(service charting.Charter) http.Handler {
	return chart("customer-orders", func(opts domain.FilterOptions) (any, error) {
		return service.CustomerOrderDistribution(opts)
	})
}

func GetCorrelation(service charting.Charter) http.Handler {
	return chart("correlation", func(opts domain.FilterOptions) (any, error) {
		return service.Correlation(opts)
	})
}
