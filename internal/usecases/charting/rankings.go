package charting

import (
	"math"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// TopProducts agrupa por descrição de produto e soma as quantidades vendidas.
// O resultado fica em ordem ascendente, como o gráfico de barras horizontais
// espera (o maior produto por último).
func (s *Service) TopProducts(opts domain.FilterOptions) ([]domain.ProductRanking, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	groups := groupSum(records,
		func(r domain.SalesRecord) string { return r.Description },
		func(r domain.SalesRecord) float64 { return float64(r.Quantity) },
	)

	groups = topAscending(groups, s.rankingLimit)

	ranking := make([]domain.ProductRanking, 0, len(groups))
	for _, entry := range groups {
		ranking = append(ranking, domain.ProductRanking{
			Description: entry.group,
			Quantity:    int(math.Round(entry.value)),
		})
	}

	return ranking, nil
}

// TopCountries agrupa por país e soma a receita, em ordem ascendente
func (s *Service) TopCountries(opts domain.FilterOptions) ([]domain.CountryRanking, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	groups := groupSum(records,
		func(r domain.SalesRecord) string { return r.Country },
		func(r domain.SalesRecord) float64 { return r.TotalPrice },
	)

	groups = topAscending(groups, s.rankingLimit)

	ranking := make([]domain.CountryRanking, 0, len(groups))
	for _, entry := range groups {
		ranking = append(ranking, domain.CountryRanking{
			Country: entry.group,
			Sales:   entry.value,
		})
	}

	return ranking, nil
}
