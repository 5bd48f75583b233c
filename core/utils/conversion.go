package utils

import (
	"strconv"
	"strings"

	"menu-manager/core/apperror"
)

// ParseID parses a single non-negative identifier from a path parameter.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 0 {
		return 0, apperror.InvalidArgument("invalid identifier %q", raw)
	}
	return id, nil
}

// ParseIDs parses a comma separated identifier list such as "1,2,3".
// An empty string yields an empty list. Duplicates are dropped, order is kept.
func ParseIDs(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	seen := make(map[int]struct{}, len(parts))
	for _, part := range parts {
		id, err := ParseID(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// ToBool converts a query flag to bool. It accepts "1" and "true" in any case.
func ToBool(val string) bool {
	return val == "1" || strings.EqualFold(val, "true")
}
