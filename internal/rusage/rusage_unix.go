//go:build linux || darwin || freebsd

package rusage

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// Now reads resource usage for the calling process.
func Now() (Sample, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Sample{}, err
	}

	// Darwin reports ru_maxrss in bytes, everything else in kilobytes.
	maxRSS := int64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		maxRSS *= 1024
	}

	return Sample{
		User:   time.Duration(ru.Utime.Nano()),
		System: time.Duration(ru.Stime.Nano()),
		MaxRSS: maxRSS,
	}, nil
}
