// Package filtering restringe o dataset ao intervalo de datas e ao país
// escolhidos na barra lateral do dashboard.
package filtering

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Filterer interface {
	// Apply resolve os filtros contra os limites observados do dataset e
	// devolve a subsequência de registros correspondente
	Apply(ds *domain.Dataset, opts domain.FilterOptions) []domain.SalesRecord
}

type Service struct{}

func NewService() Filterer {
	return &Service{}
}

// Apply aplica o intervalo inclusivo [start, end] com granularidade de dia e,
// quando o país não é "All", a igualdade exata de país. A ordem de entrada é
// preservada; start > end resulta em um conjunto vazio, sem erro.
func (s *Service) Apply(ds *domain.Dataset, opts domain.FilterOptions) []domain.SalesRecord {
	start := utils.TruncateToDay(ds.MinDate)
	if opts.StartDate != nil {
		start = utils.TruncateToDay(*opts.StartDate)
	}

	end := utils.TruncateToDay(ds.MaxDate)
	if opts.EndDate != nil {
		end = utils.TruncateToDay(*opts.EndDate)
	}

	country := opts.CountryOrAll()

	return filterRecords(ds.Records, start, end, country)
}

func filterRecords(records []domain.SalesRecord, start, end time.Time, country string) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))

	for _, record := range records {
		day := utils.TruncateToDay(record.InvoiceDate)
		if day.Before(start) || day.After(end) {
			continue
		}
		if country != domain.AllCountries && record.Country != country {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}
