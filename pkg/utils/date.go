package utils

import "time"

// ParseDate interpreta datas no formato de dia ISO (2006-01-02)
func ParseDate(dateStr string) (*time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
