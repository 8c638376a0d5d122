package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDatasetSummary devolve os metadados que a interface usa para montar os
// controles: limites de data observados, lista de países e data da última
// atualização
func GetDatasetSummary(store dataset.Provider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ds, err := store.Snapshot()
		if err != nil {
			logger.WithError(err).Error("dataset: erro ao obter snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset indisponível", nil)
			return
		}

		// "All" vem primeiro, seguido dos países observados em ordem alfabética
		countries := make([]string, 0, len(ds.Countries)+1)
		countries = append(countries, domain.AllCountries)
		countries = append(countries, ds.Countries...)

		summary := domain.DatasetSummary{
			SnapshotID:  ds.SnapshotID,
			TotalRows:   len(ds.Records),
			MinDate:     ds.MinDate.Format("2006-01-02"),
			MaxDate:     ds.MaxDate.Format("2006-01-02"),
			Countries:   countries,
			LastUpdated: ds.LastUpdated(),
			LoadedAt:    ds.LoadedAt,
		}

		logger.WithFields(log.Fields{
			"snapshot_id": ds.SnapshotID,
			"rows":        summary.TotalRows,
		}).Debug("dataset: resumo servido")

		writeJSON(w, r, summary)
	})
}
