package models

import (
	"encoding/json"
	"fmt"
)

// ID is an opaque record identifier. New records get UUIDv7 values, but
// restored backups may carry identifiers from older installations, including
// numeric ones, so JSON decoding accepts both strings and numbers and
// normalizes them to strings.
type ID string

// String returns the identifier as a plain string.
func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts string and numeric identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}

	return fmt.Errorf("invalid identifier: %s", data)
}
