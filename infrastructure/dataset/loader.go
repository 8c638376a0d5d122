// Package dataset carrega o arquivo de vendas para a memória e serve o
// snapshot imutável usado por todas as consultas do dashboard.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Colunas obrigatórias do arquivo, sensíveis a maiúsculas
var requiredColumns = []string{
	"InvoiceNo",
	"Description",
	"Quantity",
	"InvoiceDate",
	"UnitPrice",
	"CustomerID",
	"Country",
}

// Formatos aceitos para InvoiceDate. O primeiro é o da base de referência
// (m/d/aaaa h:mm, sem zeros à esquerda).
var dateLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type Loader struct {
	path     string
	encoding string
}

func NewLoader(path, encoding string) *Loader {
	return &Loader{
		path:     path,
		encoding: encoding,
	}
}

// Load lê e limpa o arquivo de vendas. Qualquer falha de arquivo ou de schema
// é fatal para a sessão: não há recuperação parcial nem retry.
func (l *Loader) Load() (*domain.Dataset, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo de vendas %q", l.path)
	}
	defer file.Close()

	decoder, err := decoderFor(l.encoding)
	if err != nil {
		return nil, err
	}

	var reader io.Reader = file
	if decoder != nil {
		reader = transform.NewReader(file, decoder)
	}

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1 // Linhas curtas são tratadas na limpeza

	header, err := csvReader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do arquivo de vendas")
	}

	columns, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records, dropped, err := l.readRecords(csvReader, columns)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.Errorf("arquivo de vendas %q não possui linhas válidas após a limpeza", l.path)
	}

	snapshotID, err := utils.GenerateShortID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do snapshot")
	}

	ds := &domain.Dataset{
		SnapshotID: snapshotID,
		Records:    records,
		Countries:  distinctCountries(records),
		LoadedAt:   time.Now(),
	}
	ds.MinDate, ds.MaxDate = dateBounds(records)

	log.L.WithFields(log.Fields{
		"snapshot_id":       snapshotID,
		"rows":              len(records),
		"dropped_customer":  dropped.missingCustomer,
		"dropped_quantity":  dropped.nonPositiveQuantity,
		"dropped_malformed": dropped.malformed,
		"dropped_duplicate": dropped.duplicates,
		"min_date":          ds.MinDate.Format("2006-01-02"),
		"max_date":          ds.MaxDate.Format("2006-01-02"),
	}).Info("dataset: arquivo de vendas carregado")

	return ds, nil
}

// droppedCounters acumula os descartes de cada etapa da limpeza
type droppedCounters struct {
	missingCustomer     int
	nonPositiveQuantity int
	malformed           int
	duplicates          int
}

func (l *Loader) readRecords(csvReader *csv.Reader, columns map[string]int) ([]domain.SalesRecord, droppedCounters, error) {
	var (
		records []domain.SalesRecord
		dropped droppedCounters
		seen    = make(map[string]struct{})
	)

	width := len(columns)

	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, dropped, errors.Wrap(err, "erro ao ler linha do arquivo de vendas")
		}

		if len(row) < width {
			dropped.malformed++
			continue
		}

		// Linhas sem cliente são descartadas antes de qualquer parse
		customerID := strings.TrimSpace(row[columns["CustomerID"]])
		if customerID == "" {
			dropped.missingCustomer++
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(row[columns["Quantity"]]))
		if err != nil {
			dropped.malformed++
			continue
		}
		if quantity <= 0 {
			dropped.nonPositiveQuantity++
			continue
		}

		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(row[columns["UnitPrice"]]), 64)
		if err != nil {
			dropped.malformed++
			continue
		}

		invoiceDate, err := parseInvoiceDate(strings.TrimSpace(row[columns["InvoiceDate"]]))
		if err != nil {
			dropped.malformed++
			continue
		}

		// Duplicatas exatas: todas as colunas brutas iguais, a primeira vence
		key := dedupKey(row, columns)
		if _, exists := seen[key]; exists {
			dropped.duplicates++
			continue
		}
		seen[key] = struct{}{}

		records = append(records, domain.SalesRecord{
			InvoiceNo:   strings.TrimSpace(row[columns["InvoiceNo"]]),
			Description: strings.TrimSpace(row[columns["Description"]]),
			Quantity:    quantity,
			InvoiceDate: invoiceDate,
			UnitPrice:   unitPrice,
			CustomerID:  customerID,
			Country:     strings.TrimSpace(row[columns["Country"]]),
			TotalPrice:  float64(quantity) * unitPrice,
		})
	}

	return records, dropped, nil
}

// decoderFor resolve o decoder do charset configurado. UTF-8 dispensa decoder.
func decoderFor(name string) (transform.Transformer, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, errors.Errorf("encoding %q não suportado para o arquivo de vendas", name)
	}
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		// O BOM só aparece quando o arquivo foi reexportado como UTF-8
		index[strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF")] = i
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("arquivo de vendas sem as colunas obrigatórias: %s", strings.Join(missing, ", "))
	}

	return index, nil
}

func parseInvoiceDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// dedupKey monta a chave de deduplicação com as sete colunas brutas
func dedupKey(row []string, columns map[string]int) string {
	parts := make([]string, 0, len(requiredColumns))
	for _, column := range requiredColumns {
		parts = append(parts, row[columns[column]])
	}
	return strings.Join(parts, "\x1f")
}

func distinctCountries(records []domain.SalesRecord) []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, r := range records {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		countries = append(countries, r.Country)
	}
	sort.Strings(countries)
	return countries
}

func dateBounds(records []domain.SalesRecord) (time.Time, time.Time) {
	min, max := records[0].InvoiceDate, records[0].InvoiceDate
	for _, r := range records[1:] {
		if r.InvoiceDate.Before(min) {
			min = r.InvoiceDate
		}
		if r.InvoiceDate.After(max) {
			max = r.InvoiceDate
		}
	}
	return min, max
}
