package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
)

func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func datasetOf(records []domain.SalesRecord) *domain.Dataset {
	min, max := records[0].InvoiceDate, records[0].InvoiceDate
	for _, r := range records {
		if r.InvoiceDate.Before(min) {
			min = r.InvoiceDate
		}
		if r.InvoiceDate.After(max) {
			max = r.InvoiceDate
		}
	}
	return &domain.Dataset{Records: records, MinDate: min, MaxDate: max}
}

func newCharter(t *testing.T, records []domain.SalesRecord, limit int) Charter {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockProvider(ctrl)
	store.EXPECT().Snapshot().Return(datasetOf(records), nil).AnyTimes()

	return NewService(store, filtering.NewService(), limit)
}

func datePtr(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// invertedRange seleciona zero linhas em qualquer dataset de teste
var invertedRange = domain.FilterOptions{
	StartDate: datePtr(2030, 1, 1),
	EndDate:   datePtr(2020, 1, 1),
}

func TestService_MonthlySales(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", TotalPrice: 10, InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", TotalPrice: 20, InvoiceDate: day(2021, 2, 10, 11)},
	}

	charter := newCharter(t, records, 10)

	points, err := charter.MonthlySales(domain.FilterOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.MonthlySalesPoint{
		{Month: "2021-01", Sales: 10},
		{Month: "2021-02", Sales: 20},
	}, points)
}

func TestService_MonthlySales_IntervaloInvertido(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", TotalPrice: 10, InvoiceDate: day(2021, 1, 5, 10)},
	}

	charter := newCharter(t, records, 10)

	points, err := charter.MonthlySales(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestService_CountryMonthlySales(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", TotalPrice: 100, InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", TotalPrice: 50, InvoiceDate: day(2021, 2, 5, 10)},
		{InvoiceNo: "3", CustomerID: "B", Country: "Germany", TotalPrice: 80, InvoiceDate: day(2021, 1, 7, 10)},
		{InvoiceNo: "4", CustomerID: "C", Country: "Portugal", TotalPrice: 5, InvoiceDate: day(2021, 1, 9, 10)},
	}

	// Limite 2: Portugal fica fora do ranking
	charter := newCharter(t, records, 2)

	series, err := charter.CountryMonthlySales(domain.FilterOptions{})
	require.NoError(t, err)

	require.Len(t, series, 2)

	// A ordem das séries segue o ranking de receita, maior primeiro
	assert.Equal(t, "France", series[0].Country)
	assert.Equal(t, 150.0, series[0].Sales)
	assert.Equal(t, []domain.MonthlySalesPoint{
		{Month: "2021-01", Sales: 100},
		{Month: "2021-02", Sales: 50},
	}, series[0].Points)

	assert.Equal(t, "Germany", series[1].Country)
	assert.Equal(t, 80.0, series[1].Sales)
}

func TestService_HourlySales(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", TotalPrice: 10, InvoiceDate: day(2021, 1, 5, 14)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", TotalPrice: 5, InvoiceDate: day(2021, 1, 6, 9)},
		{InvoiceNo: "3", CustomerID: "A", Country: "France", TotalPrice: 7, InvoiceDate: day(2021, 1, 7, 14)},
	}

	charter := newCharter(t, records, 10)

	points, err := charter.HourlySales(domain.FilterOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.HourlySalesPoint{
		{Hour: 9, Sales: 5},
		{Hour: 14, Sales: 17},
	}, points)
}

func TestService_TopProducts(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", Description: "MUG", Quantity: 5, InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", Description: "LANTERN", Quantity: 5, InvoiceDate: day(2021, 1, 5, 11)},
		{InvoiceNo: "3", CustomerID: "A", Country: "France", Description: "HEART", Quantity: 12, InvoiceDate: day(2021, 1, 5, 12)},
		{InvoiceNo: "4", CustomerID: "A", Country: "France", Description: "COSY", Quantity: 1, InvoiceDate: day(2021, 1, 5, 13)},
		{InvoiceNo: "5", CustomerID: "A", Country: "France", Description: "MUG", Quantity: 3, InvoiceDate: day(2021, 1, 5, 14)},
	}

	// Limite 3: COSY (menor quantidade) fica fora
	charter := newCharter(t, records, 3)

	ranking, err := charter.TopProducts(domain.FilterOptions{})
	require.NoError(t, err)

	// Ascendente por quantidade; MUG soma as duas linhas (5+3)
	assert.Equal(t, []domain.ProductRanking{
		{Description: "LANTERN", Quantity: 5},
		{Description: "MUG", Quantity: 8},
		{Description: "HEART", Quantity: 12},
	}, ranking)
}

func TestService_TopProducts_EmpateEstavel(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", Description: "PRIMEIRO", Quantity: 5, InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", Description: "SEGUNDO", Quantity: 5, InvoiceDate: day(2021, 1, 5, 11)},
	}

	charter := newCharter(t, records, 10)

	ranking, err := charter.TopProducts(domain.FilterOptions{})
	require.NoError(t, err)

	// Valores iguais preservam a ordem de primeira aparição
	assert.Equal(t, []domain.ProductRanking{
		{Description: "PRIMEIRO", Quantity: 5},
		{Description: "SEGUNDO", Quantity: 5},
	}, ranking)
}

func TestService_TopCountries(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", TotalPrice: 100, InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "B", Country: "Germany", TotalPrice: 300, InvoiceDate: day(2021, 1, 6, 10)},
		{InvoiceNo: "3", CustomerID: "C", Country: "Portugal", TotalPrice: 50, InvoiceDate: day(2021, 1, 7, 10)},
	}

	charter := newCharter(t, records, 2)

	ranking, err := charter.TopCountries(domain.FilterOptions{})
	require.NoError(t, err)

	// No máximo limit grupos, ascendente, todos do conjunto filtrado
	assert.Equal(t, []domain.CountryRanking{
		{Country: "France", Sales: 100},
		{Country: "Germany", Sales: 300},
	}, ranking)
}

func TestService_CustomerOrderDistribution(t *testing.T) {
	records := []domain.SalesRecord{
		// Cliente A: faturas 1 e 2 (duas linhas na fatura 1)
		{InvoiceNo: "1", CustomerID: "A", Country: "France", InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "1", CustomerID: "A", Country: "France", InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", InvoiceDate: day(2021, 1, 6, 10)},
		// Cliente B: fatura 3
		{InvoiceNo: "3", CustomerID: "B", Country: "France", InvoiceDate: day(2021, 1, 7, 10)},
		// Cliente C: fatura 4
		{InvoiceNo: "4", CustomerID: "C", Country: "France", InvoiceDate: day(2021, 1, 8, 10)},
	}

	charter := newCharter(t, records, 10)

	bins, err := charter.CustomerOrderDistribution(domain.FilterOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.OrdersPerCustomerBin{
		{Orders: 1, Customers: 2}, // B e C
		{Orders: 2, Customers: 1}, // A
	}, bins)
}

func TestService_Correlation(t *testing.T) {
	// Preço unitário constante: correlação indefinida com as demais colunas,
	// reportada como zero; quantidade e total perfeitamente correlacionados
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", Quantity: 1, UnitPrice: 2, TotalPrice: 2, InvoiceDate: day(2021, 1, 5, 10)},
		{InvoiceNo: "2", CustomerID: "A", Country: "France", Quantity: 2, UnitPrice: 2, TotalPrice: 4, InvoiceDate: day(2021, 1, 6, 10)},
		{InvoiceNo: "3", CustomerID: "A", Country: "France", Quantity: 3, UnitPrice: 2, TotalPrice: 6, InvoiceDate: day(2021, 1, 7, 10)},
	}

	charter := newCharter(t, records, 10)

	matrix, err := charter.Correlation(domain.FilterOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Quantity", "UnitPrice", "TotalPrice"}, matrix.Columns)
	require.Len(t, matrix.Values, 3)

	// A diagonal vale exatamente 1.0
	for i := range matrix.Values {
		assert.Equal(t, 1.0, matrix.Values[i][i])
	}

	assert.Equal(t, 0.0, matrix.Values[0][1]) // Quantity x UnitPrice: indefinida -> 0
	assert.Equal(t, 1.0, matrix.Values[0][2]) // Quantity x TotalPrice: linear perfeita
	assert.Equal(t, matrix.Values[0][2], matrix.Values[2][0])
}

func TestService_Correlation_PoucasLinhas(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", Quantity: 1, UnitPrice: 2, TotalPrice: 2, InvoiceDate: day(2021, 1, 5, 10)},
	}

	charter := newCharter(t, records, 10)

	matrix, err := charter.Correlation(invertedRange)
	require.NoError(t, err)

	assert.Equal(t, []string{"Quantity", "UnitPrice", "TotalPrice"}, matrix.Columns)
	assert.Empty(t, matrix.Values)
}

func TestService_TodasAsVisoesVaziasSemErro(t *testing.T) {
	records := []domain.SalesRecord{
		{InvoiceNo: "1", CustomerID: "A", Country: "France", Quantity: 1, UnitPrice: 2, TotalPrice: 2, InvoiceDate: day(2021, 1, 5, 10)},
	}

	charter := newCharter(t, records, 10)

	monthly, err := charter.MonthlySales(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, monthly)

	countryMonthly, err := charter.CountryMonthlySales(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, countryMonthly)

	hourly, err := charter.HourlySales(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, hourly)

	products, err := charter.TopProducts(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, products)

	countries, err := charter.TopCountries(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, countries)

	bins, err := charter.CustomerOrderDistribution(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, bins)

	matrix, err := charter.Correlation(invertedRange)
	require.NoError(t, err)
	assert.Empty(t, matrix.Values)
}
