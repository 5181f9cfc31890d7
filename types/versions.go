package types

import "fmt"

// SchemaVersion is the discriminant of a record's serialized layout. It is
// written in front of the record payload so that stored records identify
// their own schema.
type SchemaVersion uint64

type Versioned interface {
	GetVersion() SchemaVersion
}

// EnsureVersion returns an error if got is not the expected schema version.
func EnsureVersion(v Versioned, got, expected SchemaVersion) error {
	if got != expected {
		return fmt.Errorf("invalid version (type %T), expected %d, got %d", v, expected, got)
	}
	return nil
}
