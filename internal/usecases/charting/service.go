// Package charting implementa as agregações por trás de cada gráfico do
// dashboard. Cada visão é um recálculo completo e independente sobre o
// conjunto filtrado, espelhando o comportamento do dashboard a cada interação.
package charting

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
)

// monthKeyLayout mantém a ordenação lexicográfica igual à cronológica
const monthKeyLayout = "2006-01"

type Service struct {
	store        dataset.Provider
	filter       filtering.Filterer
	rankingLimit int
}

func NewService(store dataset.Provider, filter filtering.Filterer, rankingLimit int) Charter {
	if rankingLimit <= 0 {
		rankingLimit = 10
	}

	return &Service{
		store:        store,
		filter:       filter,
		rankingLimit: rankingLimit,
	}
}

func (s *Service) filtered(opts domain.FilterOptions) ([]domain.SalesRecord, error) {
	ds, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.filter.Apply(ds, opts), nil
}

// MonthlySales soma TotalPrice por mês-calendário de InvoiceDate
func (s *Service) MonthlySales(opts domain.FilterOptions) ([]domain.MonthlySalesPoint, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	return monthlySalesOf(records), nil
}

func monthlySalesOf(records []domain.SalesRecord) []domain.MonthlySalesPoint {
	sums := make(map[string]float64)
	for _, record := range records {
		sums[record.InvoiceDate.Format(monthKeyLayout)] += record.TotalPrice
	}

	points := make([]domain.MonthlySalesPoint, 0, len(sums))
	for month, sales := range sums {
		points = append(points, domain.MonthlySalesPoint{Month: month, Sales: sales})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})

	return points
}

// CountryMonthlySales restringe a série mensal aos 10 países de maior receita
// no período filtrado, preservando a ordem do ranking (maior primeiro)
func (s *Service) CountryMonthlySales(opts domain.FilterOptions) ([]domain.CountrySalesSeries, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	topCountries := s.rankCountriesBySales(records)

	byCountry := make(map[string][]domain.SalesRecord, len(topCountries))
	for _, record := range records {
		byCountry[record.Country] = append(byCountry[record.Country], record)
	}

	series := make([]domain.CountrySalesSeries, 0, len(topCountries))
	for _, entry := range topCountries {
		series = append(series, domain.CountrySalesSeries{
			Country: entry.group,
			Sales:   entry.value,
			Points:  monthlySalesOf(byCountry[entry.group]),
		})
	}

	return series, nil
}

// HourlySales soma TotalPrice pela hora do dia (0-23) de InvoiceDate
func (s *Service) HourlySales(opts domain.FilterOptions) ([]domain.HourlySalesPoint, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	sums := make(map[int]float64)
	for _, record := range records {
		sums[record.InvoiceDate.Hour()] += record.TotalPrice
	}

	points := make([]domain.HourlySalesPoint, 0, len(sums))
	for hour, sales := range sums {
		points = append(points, domain.HourlySalesPoint{Hour: hour, Sales: sales})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Hour < points[j].Hour
	})

	return points, nil
}

// aggregate é um grupo somado, na ordem de primeira aparição no conjunto
type aggregate struct {
	group string
	value float64
}

// groupSum soma value(record) por key(record), preservando a ordem de
// primeira aparição de cada grupo. É essa ordem que desempata os rankings.
func groupSum(records []domain.SalesRecord, key func(domain.SalesRecord) string, value func(domain.SalesRecord) float64) []aggregate {
	index := make(map[string]int)
	var groups []aggregate

	for _, record := range records {
		k := key(record)
		if i, ok := index[k]; ok {
			groups[i].value += value(record)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, aggregate{group: k, value: value(record)})
	}

	return groups
}

// topAscending ordena os grupos de forma ascendente pelo valor agregado
// (desempate estável pela primeira aparição) e mantém apenas os últimos limit
func topAscending(groups []aggregate, limit int) []aggregate {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].value < groups[j].value
	})

	if len(groups) > limit {
		groups = groups[len(groups)-limit:]
	}

	return groups
}

// rankCountriesBySales devolve os países de maior receita em ordem
// descendente, limitados ao tamanho do ranking configurado
func (s *Service) rankCountriesBySales(records []domain.SalesRecord) []aggregate {
	groups := groupSum(records,
		func(r domain.SalesRecord) string { return r.Country },
		func(r domain.SalesRecord) float64 { return r.TotalPrice },
	)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].value > groups[j].value
	})

	if len(groups) > s.rankingLimit {
		groups = groups[:s.rankingLimit]
	}

	return groups
}
