package utils

// MinInt64 retorna o menor entre dois valores
func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
