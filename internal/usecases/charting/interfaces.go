package charting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Charter define as sete visões agregadas servidas aos gráficos do dashboard.
// Todas operam sobre o conjunto filtrado e retornam resultados vazios, nunca
// erro, quando o filtro não seleciona nenhuma linha.
type Charter interface {
	// MonthlySales soma a receita por mês-calendário, em ordem cronológica
	MonthlySales(opts domain.FilterOptions) ([]domain.MonthlySalesPoint, error)

	// CountryMonthlySales devolve a série mensal dos 10 países de maior
	// receita, na ordem do ranking
	CountryMonthlySales(opts domain.FilterOptions) ([]domain.CountrySalesSeries, error)

	// HourlySales soma a receita por hora do dia, em ordem crescente de hora
	HourlySales(opts domain.FilterOptions) ([]domain.HourlySalesPoint, error)

	// TopProducts devolve os 10 produtos com maior quantidade vendida,
	// em ordem ascendente de quantidade
	TopProducts(opts domain.FilterOptions) ([]domain.ProductRanking, error)

	// TopCountries devolve os 10 países com maior receita, em ordem
	// ascendente de receita
	TopCountries(opts domain.FilterOptions) ([]domain.CountryRanking, error)

	// CustomerOrderDistribution monta o histograma de pedidos por cliente
	CustomerOrderDistribution(opts domain.FilterOptions) ([]domain.OrdersPerCustomerBin, error)

	// Correlation calcula a matriz de correlação de Pearson entre
	// Quantity, UnitPrice e TotalPrice
	Correlation(opts domain.FilterOptions) (*domain.CorrelationMatrix, error)
}
