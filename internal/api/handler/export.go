package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DownloadMonthlySales serve a agregação mensal como anexo CSV
func DownloadMonthlySales(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts, err := parseFilterOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		data, err := service.MonthlySalesCSV(opts)
		if err != nil {
			logger.WithError(err).Error("export: erro ao gerar o CSV de vendas mensais")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"bytes": len(data),
		}).Info("export: CSV de vendas mensais gerado")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exporting.MonthlySalesFilename))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))

		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Error("export: erro ao escrever a resposta")
		}
	})
}
