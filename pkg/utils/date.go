package utils

import "time"

// ParseDate interpreta uma data no formato yyyy-mm-dd vinda da query string.
// String vazia retorna nil, indicando que o chamador deve usar o padrão.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay descarta a hora do dia, mantendo apenas a data
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
