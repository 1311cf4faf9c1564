package bench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Prompt is shown when the three workload numbers are not given as arguments.
const Prompt = "No console input received, please enter the three numbers now, separated by spaces"

var (
	// ErrMissingInput indicates fewer than three numbers were supplied.
	ErrMissingInput = errors.New("bench: expected three numbers: endCount startCount insertLocation")

	// ErrNegativeInput indicates a workload number below zero.
	ErrNegativeInput = errors.New("bench: value must be non-negative")

	// ErrInputTooLarge indicates a workload number that does not fit an element.
	ErrInputTooLarge = errors.New("bench: value too large")
)

// Config describes one benchmark run.
type Config struct {
	// EndCount is the number of appends, and later of end removals.
	EndCount int `json:"end_count"`
	// StartCount is the number of prepends, inserts and start removals.
	StartCount int `json:"start_count"`
	// InsertLocation is the position every insert targets.
	InsertLocation int `json:"insert_location"`

	// InitialCapacity presizes the array. Zero matches the classic run.
	InitialCapacity int `json:"initial_capacity"`
	// Verify checks the size/capacity invariant after every phase.
	Verify bool `json:"verify"`
}

// Validate reports whether every field is in range.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"endCount", c.EndCount},
		{"startCount", c.StartCount},
		{"insertLocation", c.InsertLocation},
		{"initial capacity", c.InitialCapacity},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("%s %d: %w", f.name, f.v, ErrNegativeInput)
		}
		if f.v > math.MaxInt32 {
			return fmt.Errorf("%s %d: %w (max %d)", f.name, f.v, ErrInputTooLarge, math.MaxInt32)
		}
	}
	return nil
}

// ParseArgs builds a Config from exactly three decimal arguments:
// endCount, startCount and insertLocation.
func ParseArgs(args []string) (Config, error) {
	if len(args) != 3 {
		return Config{}, fmt.Errorf("got %d argument(s): %w", len(args), ErrMissingInput)
	}

	names := [3]string{"endCount", "startCount", "insertLocation"}
	var vals [3]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		vals[i] = v
	}

	cfg := Config{EndCount: vals[0], StartCount: vals[1], InsertLocation: vals[2]}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Scan reads three whitespace-separated integers from r.
func Scan(r io.Reader) (Config, error) {
	var cfg Config
	_, err := fmt.Fscan(r, &cfg.EndCount, &cfg.StartCount, &cfg.InsertLocation)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return Config{}, ErrMissingInput
	case err != nil:
		return Config{}, fmt.Errorf("reading input: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
