package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ActionsJSON stores a definition's action list as raw JSON. The bytes are
// kept opaque at the persistence layer: the pipeline compiler owns parsing
// and its degrade-on-malformed semantics, so nothing here rejects bad
// operator input.
type ActionsJSON json.RawMessage

func (a ActionsJSON) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return []byte(a), nil
}

func (a *ActionsJSON) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*a = ActionsJSON(append([]byte(nil), v...))
	case string:
		*a = ActionsJSON(v)
	default:
		return fmt.Errorf("expected []byte or string, got %T", value)
	}
	return nil
}

func (a ActionsJSON) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

func (a *ActionsJSON) UnmarshalJSON(data []byte) error {
	*a = ActionsJSON(append([]byte(nil), data...))
	return nil
}
