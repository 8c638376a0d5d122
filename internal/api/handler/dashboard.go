package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDashboard recalcula os quatro cartões e as sete visões em uma única
// resposta, o equivalente a uma interação completa do usuário com o filtro
func GetDashboard(insighter insighting.Insighter, charter charting.Charter, store dataset.Provider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts, err := parseFilterOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		ds, err := store.Snapshot()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao obter snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset indisponível", nil)
			return
		}

		board := &domain.Dashboard{
			LastUpdated: ds.LastUpdated(),
		}

		// As visões são independentes entre si; qualquer falha aborta o painel
		steps := []func() error{
			func() (err error) { board.Metrics, err = insighter.GetSalesMetrics(opts); return },
			func() (err error) { board.MonthlySales, err = charter.MonthlySales(opts); return },
			func() (err error) { board.CountryMonthlySales, err = charter.CountryMonthlySales(opts); return },
			func() (err error) { board.HourlySales, err = charter.HourlySales(opts); return },
			func() (err error) { board.TopProducts, err = charter.TopProducts(opts); return },
			func() (err error) { board.TopCountries, err = charter.TopCountries(opts); return },
			func() (err error) { board.CustomerOrders, err = charter.CustomerOrderDistribution(opts); return },
			func() (err error) { board.Correlation, err = charter.Correlation(opts); return },
		}

		for _, step := range steps {
			if err = step(); err != nil {
				break
			}
		}
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar o painel")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"country": opts.CountryOrAll(),
		}).Info("dashboard: painel completo calculado")

		writeJSON(w, r, board)
	})
}
