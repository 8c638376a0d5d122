package domain

// MonthlySalesPoint é um ponto da série mensal de vendas. Month usa o formato
// yyyy-mm para manter a ordenação lexicográfica igual à cronológica.
type MonthlySalesPoint struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// CountrySalesSeries é a série mensal de um país dentro do top 10 por receita.
// As séries são emitidas na ordem do ranking (maior receita primeiro).
type CountrySalesSeries struct {
	Country string              `json:"country"`
	Sales   float64             `json:"sales"` // Receita total do país no período
	Points  []MonthlySalesPoint `json:"points"`
}

// HourlySalesPoint é a soma de vendas em uma hora do dia (0-23).
// Apenas horas observadas no conjunto filtrado são emitidas.
type HourlySalesPoint struct {
	Hour  int     `json:"hour"`
	Sales float64 `json:"sales"`
}

// ProductRanking é uma entrada do top 10 de produtos por quantidade vendida.
// A lista é ordenada de forma ascendente pela quantidade, como no gráfico de
// barras horizontais do dashboard.
type ProductRanking struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// CountryRanking é uma entrada do top 10 de países por receita, ascendente
type CountryRanking struct {
	Country string  `json:"country"`
	Sales   float64 `json:"sales"`
}

// OrdersPerCustomerBin é uma faixa do histograma de pedidos por cliente:
// quantos clientes fizeram exatamente Orders pedidos (faturas distintas)
type OrdersPerCustomerBin struct {
	Orders    int `json:"orders"`
	Customers int `json:"customers"`
}

// CorrelationMatrix é a matriz de correlação de Pearson entre as colunas
// numéricas do dataset. Values segue a ordem de Columns em ambas as dimensões;
// a diagonal vale exatamente 1.0 e os demais valores são arredondados para
// duas casas decimais. Com menos de duas linhas filtradas, Values fica vazio.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Dashboard reúne o payload completo de uma interação: os quatro cartões e as
// sete visões, recalculados do zero sobre o conjunto filtrado.
type Dashboard struct {
	Metrics             *SalesMetrics          `json:"metrics"`
	MonthlySales        []MonthlySalesPoint    `json:"monthly_sales"`
	CountryMonthlySales []CountrySalesSeries   `json:"country_monthly_sales"`
	HourlySales         []HourlySalesPoint     `json:"hourly_sales"`
	TopProducts         []ProductRanking       `json:"top_products"`
	TopCountries        []CountryRanking       `json:"top_countries"`
	CustomerOrders      []OrdersPerCustomerBin `json:"customer_orders"`
	Correlation         *CorrelationMatrix     `json:"correlation"`
	LastUpdated         string                 `json:"last_updated"`
}
