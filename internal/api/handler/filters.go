package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// parseFilterOptions lê os filtros da query string. Datas ausentes ficam
// nulas e assumem os limites do dataset nos casos de uso; país ausente
// equivale a "All". Um país desconhecido apenas filtra para vazio, como um
// select que a interface restringe por construção.
func parseFilterOptions(r *http.Request) (domain.FilterOptions, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.FilterOptions{}, err
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.FilterOptions{}, err
	}

	return domain.FilterOptions{
		StartDate: startDate,
		EndDate:   endDate,
		Country:   query.Get("country"),
	}, nil
}
