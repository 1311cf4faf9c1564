// Package rusage samples the CPU time and peak memory of the current process.
package rusage

import (
	"errors"
	"time"
)

// ErrUnsupported is returned on platforms without getrusage.
var ErrUnsupported = errors.New("rusage: not supported on this platform")

// Sample is a point-in-time reading of process resource usage.
type Sample struct {
	User   time.Duration `json:"user"`
	System time.Duration `json:"system"`
	// MaxRSS is the peak resident set size in bytes.
	MaxRSS int64 `json:"max_rss"`
}

// Sub returns the CPU time consumed between earlier and s. MaxRSS is a
// high-water mark, so the later reading is kept as-is.
func (s Sample) Sub(earlier Sample) Sample {
	return Sample{
		User:   s.User - earlier.User,
		System: s.System - earlier.System,
		MaxRSS: s.MaxRSS,
	}
}

// CPU returns user plus system time.
func (s Sample) CPU() time.Duration {
	return s.User + s.System
}
