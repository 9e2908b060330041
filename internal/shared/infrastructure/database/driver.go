package database

import (
	"fmt"
	"strings"
)

// Driver represents a storage backend for the stores.
type Driver string

const (
	// DriverJSON stores each collection as a JSON file.
	DriverJSON Driver = "json"
	// DriverSQLite stores each collection as a table snapshot in SQLite.
	DriverSQLite Driver = "sqlite"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// ParseDriver parses a driver name. An empty name selects DriverJSON.
func ParseDriver(name string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(name))); d {
	case "":
		return DriverJSON, nil
	case DriverJSON, DriverSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported store driver: %s", name)
	}
}

// IsValid returns true if the driver is a known type.
func (d Driver) IsValid() bool {
	switch d {
	case DriverJSON, DriverSQLite:
		return true
	default:
		return false
	}
}
