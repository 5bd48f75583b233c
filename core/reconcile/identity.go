package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is the identity of an entity. An entity is Pending until it is first persisted, after
// which it is Persisted with a table-scoped identifier that never changes.
//
// The zero value is Pending, so a JSON document that omits "id" or sets it to null decodes
// to a transient entity.
type ID struct {
	value     int
	persisted bool
}

// Pending returns the identity of a transient entity.
func Pending() ID {
	return ID{}
}

// Persisted returns the identity of a stored entity.
func Persisted(value int) ID {
	return ID{value: value, persisted: true}
}

// Value returns the identifier and whether the entity is persisted.
func (id ID) Value() (int, bool) {
	return id.value, id.persisted
}

// IsPending reports whether the entity has not been persisted yet.
func (id ID) IsPending() bool {
	return !id.persisted
}

func (id ID) String() string {
	if !id.persisted {
		return "pending"
	}
	return strconv.Itoa(id.value)
}

// MarshalJSON encodes a pending identity as null and a persisted one as a number.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.persisted {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(id.value)), nil
}

// UnmarshalJSON accepts null or a non-negative integer.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*id = Pending()
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("identifier must be an integer or null: %w", err)
	}
	if v < 0 {
		return fmt.Errorf("identifier must not be negative, got %d", v)
	}

	*id = Persisted(v)
	return nil
}
