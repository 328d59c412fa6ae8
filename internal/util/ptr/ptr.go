// Package ptr provides helper functions for creating pointers to primitive types.
package ptr

// Float64 returns a pointer to the given float64 value.
func Float64(f float64) *float64 { return &f }

// Int64 returns a pointer to the given int64 value.
func Int64(i int64) *int64 { return &i }
