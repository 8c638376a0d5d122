package charting

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// CustomerOrderDistribution conta as faturas distintas de cada cliente e
// monta o histograma: para cada número de pedidos observado, quantos clientes
// fizeram exatamente aquele número. Como a contagem de pedidos é inteira, as
// faixas têm largura um.
func (s *Service) CustomerOrderDistribution(opts domain.FilterOptions) ([]domain.OrdersPerCustomerBin, error) {
	records, err := s.filtered(opts)
	if err != nil {
		return nil, err
	}

	invoicesByCustomer := make(map[string]map[string]struct{})
	for _, record := range records {
		invoices, ok := invoicesByCustomer[record.CustomerID]
		if !ok {
			invoices = make(map[string]struct{})
			invoicesByCustomer[record.CustomerID] = invoices
		}
		invoices[record.InvoiceNo] = struct{}{}
	}

	customersByOrderCount := make(map[int]int)
	for _, invoices := range invoicesByCustomer {
		customersByOrderCount[len(invoices)]++
	}

	bins := make([]domain.OrdersPerCustomerBin, 0, len(customersByOrderCount))
	for orders, customers := range customersByOrderCount {
		bins = append(bins, domain.OrdersPerCustomerBin{
			Orders:    orders,
			Customers: customers,
		})
	}

	sort.Slice(bins, func(i, j int) bool {
		return bins[i].Orders < bins[j].Orders
	})

	return bins, nil
}
