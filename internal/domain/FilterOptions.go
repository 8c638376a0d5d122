package domain

import (
	"time"
)

// AllCountries é o valor de seleção que desativa a restrição por país
const AllCountries = "All"

// FilterOptions descreve os filtros escolhidos pelo usuário no dashboard.
// Datas nulas assumem os limites observados do dataset; país vazio equivale
// a "All". O intervalo é inclusivo e ignora a hora do dia.
type FilterOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	Country   string
}

// CountryOrAll retorna o país selecionado, tratando vazio como "All"
func (f FilterOptions) CountryOrAll() string {
	if f.Country == "" {
		return AllCountries
	}
	return f.Country
}
