// Package env reads process environment values that sit outside the
// ECOMART_* envconfig tree, such as log formatting toggles.
package env

import "os"

// Get returns the value of key, falling back when the variable is unset or
// empty.
func Get(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
