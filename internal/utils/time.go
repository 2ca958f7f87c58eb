package utils

import "time"

func FormatTimeISO(t time.Time) string {
	return t.Format(time.RFC3339)
}
