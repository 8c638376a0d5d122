package handler

import (
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	datasetmocks "github.com/vfg2006/sales-dashboard-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	chartingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/charting/mocks"
	exportingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting/mocks"
	insightingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting/mocks"
)

func TestGetSalesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := insightingmocks.NewMockInsighter(ctrl)
	service.EXPECT().
		GetSalesMetrics(gomock.Any()).
		DoAndReturn(func(opts domain.FilterOptions) (*domain.SalesMetrics, error) {
			// Os parâmetros da query chegam interpretados ao caso de uso
			require.NotNil(t, opts.StartDate)
			assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), *opts.StartDate)
			assert.Equal(t, "France", opts.Country)

			return &domain.SalesMetrics{
				TotalSales:    30,
				TotalOrders:   2,
				AvgOrderValue: 15,
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics?start_date=2021-01-01&end_date=2021-02-28&country=France", nil)
	rec := httptest.NewRecorder()

	GetSalesMetrics(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var metrics domain.SalesMetrics
	require.NoError(t, stdjson.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Equal(t, 30.0, metrics.TotalSales)
	assert.Equal(t, 2, metrics.TotalOrders)
}

func TestGetSalesMetrics_DataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := insightingmocks.NewMockInsighter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics?start_date=01-01-2021", nil)
	rec := httptest.NewRecorder()

	GetSalesMetrics(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr struct {
		Code string `json:"code"`
	}
	require.NoError(t, stdjson.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "VAL_002", apiErr.Code)
}

func TestGetMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := chartingmocks.NewMockCharter(ctrl)
	service.EXPECT().
		MonthlySales(gomock.Any()).
		Return([]domain.MonthlySalesPoint{
			{Month: "2021-01", Sales: 10},
			{Month: "2021-02", Sales: 20},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/monthly-sales", nil)
	rec := httptest.NewRecorder()

	GetMonthlySales(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var points []domain.MonthlySalesPoint
	require.NoError(t, stdjson.Unmarshal(rec.Body.Bytes(), &points))
	assert.Len(t, points, 2)
	assert.Equal(t, "2021-01", points[0].Month)
}

func TestDownloadMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := exportingmocks.NewMockExporter(ctrl)
	service.EXPECT().
		MonthlySalesCSV(gomock.Any()).
		Return([]byte("Month,Sales\n2021-01,10.00\n"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/export/monthly-sales", nil)
	rec := httptest.NewRecorder()

	DownloadMonthlySales(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=monthly_sales.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Month,Sales\n2021-01,10.00\n", rec.Body.String())
}

func TestGetDatasetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := datasetmocks.NewMockProvider(ctrl)
	store.EXPECT().
		Snapshot().
		Return(&domain.Dataset{
			SnapshotID: "abc123",
			Records:    make([]domain.SalesRecord, 3),
			MinDate:    time.Date(2020, 12, 1, 8, 26, 0, 0, time.UTC),
			MaxDate:    time.Date(2021, 12, 9, 12, 50, 0, 0, time.UTC),
			Countries:  []string{"France", "Germany"},
			LoadedAt:   time.Now(),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dataset", nil)
	rec := httptest.NewRecorder()

	GetDatasetSummary(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.DatasetSummary
	require.NoError(t, stdjson.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "abc123", summary.SnapshotID)
	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, []string{"All", "France", "Germany"}, summary.Countries)
	assert.Equal(t, "2021-12-09", summary.LastUpdated)
	assert.Equal(t, "2020-12-01", summary.MinDate)
}

func TestGetDatasetSummary_DatasetIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := datasetmocks.NewMockProvider(ctrl)
	store.EXPECT().
		Snapshot().
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/dataset", nil)
	rec := httptest.NewRecorder()

	GetDatasetSummary(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
