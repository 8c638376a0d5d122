package domain

import (
	"time"
)

// SalesRecord representa um item de linha do dataset de vendas: um produto
// dentro de uma fatura. A mesma fatura (InvoiceNo) pode aparecer em várias
// linhas.
type SalesRecord struct {
	InvoiceNo   string    `json:"invoice_no"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	InvoiceDate time.Time `json:"invoice_date"`
	UnitPrice   float64   `json:"unit_price"`
	CustomerID  string    `json:"customer_id"`
	Country     string    `json:"country"`
	TotalPrice  float64   `json:"total_price"` // Derivado: Quantity * UnitPrice
}

// Dataset é a tabela imutável carregada uma única vez no início do processo.
// Nenhum registro é alterado ou removido após a carga.
type Dataset struct {
	SnapshotID string        `json:"snapshot_id"`
	Records    []SalesRecord `json:"-"`
	MinDate    time.Time     `json:"min_date"`
	MaxDate    time.Time     `json:"max_date"`
	Countries  []string      `json:"countries"` // Distintos, ordenados alfabeticamente
	LoadedAt   time.Time     `json:"loaded_at"`
}

// LastUpdated retorna a data mais recente presente no dataset no formato yyyy-mm-dd
func (d *Dataset) LastUpdated() string {
	if d == nil || d.MaxDate.IsZero() {
		return ""
	}
	return d.MaxDate.Format("2006-01-02")
}

// DatasetSummary é o resumo exposto para a montagem dos controles do dashboard
type DatasetSummary struct {
	SnapshotID  string    `json:"snapshot_id"`
	TotalRows   int       `json:"total_rows"`
	MinDate     string    `json:"min_date"`
	MaxDate     string    `json:"max_date"`
	Countries   []string  `json:"countries"` // "All" seguido dos países observados
	LastUpdated string    `json:"last_updated"`
	LoadedAt    time.Time `json:"loaded_at"`
}
