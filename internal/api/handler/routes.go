package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dataset(store dataset.Provider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetSummary(store),
		},
	}
}

func Metrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetSalesMetrics(service),
		},
	}
}

func Charts(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/monthly-sales",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/v1/charts/country-monthly-sales",
			Method:  http.MethodGet,
			Handler: GetCountryMonthlySales(service),
		},
		{
			Path:    "/v1/charts/hourly-sales",
			Method:  http.MethodGet,
			Handler: GetHourlySales(service),
		},
		{
			Path:    "/v1/charts/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/v1/charts/top-countries",
			Method:  http.MethodGet,
			Handler: GetTopCountries(service),
		},
		{
			Path:    "/v1/charts/customer-orders",
			Method:  http.MethodGet,
			Handler: GetCustomerOrderDistribution(service),
		},
		{
			Path:    "/v1/charts/correlation",
			Method:  http.MethodGet,
			Handler: GetCorrelation(service),
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export/monthly-sales",
			Method:  http.MethodGet,
			Handler: DownloadMonthlySales(service),
		},
	}
}

func Dashboard(insighter insighting.Insighter, charter charting.Charter, store dataset.Provider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(insighter, charter, store),
		},
	}
}
