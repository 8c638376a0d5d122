package charting

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// correlationColumns são as colunas numéricas exibidas no mapa de calor
var correlationColumns = []string{"Quantity", "UnitPrice", "TotalPrice"}

// Correlation calcula a correlação de Pearson par a par entre as três colunas
// numéricas. A diagonal vale exatamente 1.0; os demais valores são
// arredondados para duas casas. Variância zero (correlação indefinida) é
// reportada como 0 para manter o payload serializável. Com menos de duas
// linhas a matriz sai sem valores.
func (s *Service) Correlation(opts domain.FilterOptions) (*domain.CorrelationMatrix, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	matrix := &domain.CorrelationMatrix{
		Columns: correlationColumns,
		Values:  [][]float64{},
	}

	if len(records) < 2 {
		return matrix, nil
	}

	series := [][]float64{
		make([]float64, len(records)),
		make([]float64, len(records)),
		make([]float64, len(records)),
	}
	for i, record := range records {
		series[0][i] = float64(record.Quantity)
		series[1][i] = record.UnitPrice
		series[2][i] = record.TotalPrice
	}

	values := make([][]float64, len(series))
	for i := range series {
		values[i] = make([]float64, len(series))
		for j := range series {
			if i == j {
				values[i][j] = 1.0
				continue
			}

			r := stat.Correlation(series[i], series[j], nil)
			if math.IsNaN(r) {
				r = 0
			}
			values[i][j] = utils.RoundWithTwoDecimalPlace(r)
		}
	}

	matrix.Values = values
	return matrix, nil
}
