//go:build linux || darwin || freebsd

package rusage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	before, err := Now()
	require.NoError(t, err)

	// Burn some CPU so user time moves.
	deadline := time.Now().Add(20 * time.Millisecond)
	n := 0
	for time.Now().Before(deadline) {
		n++
	}
	require.Positive(t, n)

	after, err := Now()
	require.NoError(t, err)
	require.GreaterOrEqual(t, after.User, before.User)
	require.Positive(t, after.MaxRSS)

	delta := after.Sub(before)
	require.GreaterOrEqual(t, delta.CPU(), time.Duration(0))
	require.Equal(t, after.MaxRSS, delta.MaxRSS)
}

func TestSample_Sub(t *testing.T) {
	a := Sample{User: 3 * time.Second, System: time.Second, MaxRSS: 100}
	b := Sample{User: 5 * time.Second, System: 4 * time.Second, MaxRSS: 200}

	d := b.Sub(a)
	require.Equal(t, 2*time.Second, d.User)
	require.Equal(t, 3*time.Second, d.System)
	require.Equal(t, 5*time.Second, d.CPU())
	require.Equal(t, int64(200), d.MaxRSS)
}
