package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer aplica o agrupamento de milhares do locale inglês ($1,234.56),
// o mesmo formato exibido nos cartões do dashboard
var printer = message.NewPrinter(language.English)

// FormatCurrency formata um valor monetário com duas casas e separador de milhar
func FormatCurrency(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatCount formata uma contagem inteira com separador de milhar
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
