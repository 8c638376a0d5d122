// Package exporting gera o artefato de download do dashboard: a agregação
// mensal de vendas reencodada como CSV.
package exporting

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
)

// MonthlySalesFilename é o nome sugerido para o arquivo baixado
const MonthlySalesFilename = "monthly_sales.csv"

type Exporter interface {
	// MonthlySalesCSV devolve a série mensal como CSV com colunas Month,Sales
	MonthlySalesCSV(opts domain.FilterOptions) ([]byte, error)
}

type Service struct {
	charter charting.Charter
}

func NewService(charter charting.Charter) Exporter {
	return &Service{
		charter: charter,
	}
}

// MonthlySalesCSV monta o CSV em memória, sem tocar o disco, pronto para ser
// servido como anexo na resposta HTTP
func (s *Service) MonthlySalesCSV(opts domain.FilterOptions) ([]byte, error) {
	points, err := s.charter.MonthlySales(opts)
	if err != nil {
		return nil, err
	}

	buffer := bytes.NewBuffer(make([]byte, 0, 4*1024))
	writer := csv.NewWriter(buffer)

	if err := writer.Write([]string{"Month", "Sales"}); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	for _, point := range points {
		row := []string{point.Month, strconv.FormatFloat(point.Sales, 'f', 2, 64)}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return buffer.Bytes(), nil
}
