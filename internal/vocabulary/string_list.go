package vocabulary

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list of words persisted as a JSON array in a text column.
// Scanning also accepts the legacy comma, semicolon or pipe separated text and NULL.
type StringList []string

// ParseStringList normalizes a stored list value into trimmed, non-empty entries.
// Duplicates are dropped case-insensitively and the first spelling is kept.
func ParseStringList(raw string) StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StringList{}
	}

	if strings.HasPrefix(raw, "[") {
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			return compact(values)
		}
	}

	return compact(strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	}))
}

func compact(values []string) StringList {
	result := make(StringList, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = ParseStringList(v)
	case []byte:
		*l = ParseStringList(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	values := compact(l)
	data, err := json.Marshal([]string(values))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	return string(data), nil
}
