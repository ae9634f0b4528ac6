package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// encodeList stores a string list as a JSON array.
func encodeList(items []string) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(b), nil
}

// decodeList reads a JSON array column. Plain text that is not an array is
// treated as a single item so hand-edited databases still load.
func decodeList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" || raw == "null" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{raw}
	}
	return items
}

// floatOrZero returns the column value, or 0 when it is NULL.
func floatOrZero(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return v.Float64
}
