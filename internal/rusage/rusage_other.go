//go:build !linux && !darwin && !freebsd

package rusage

// Now always fails with ErrUnsupported.
func Now() (Sample, error) {
	return Sample{}, ErrUnsupported
}
