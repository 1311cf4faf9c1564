package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Implementation names used as the second segment of benchmark names.
const (
	implGrowArray = "growarray"
	implSlice     = "slice"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Size        string
	Impl        string // "growarray" or "slice"
	Iterations  int
	NsPerOp     float64
	BytesPerOp  float64
	AllocsPerOp float64 // fractional when allocations are amortized over b.N
}

// ComparisonResult pairs the growarray and slice results of one operation.
type ComparisonResult struct {
	Operation       string
	Size            string
	GrowArrayNs     float64
	SliceNs         float64
	Ratio           float64 // SliceNs / GrowArrayNs; above 1 means growarray is faster
	GrowArrayMem    float64
	SliceMem        float64
	GrowArrayAllocs float64
	SliceAllocs     float64
	GrowArrayOnly   bool
}

var (
	inputFile = pflag.StringP(
		"input",
		"i",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = pflag.StringP("output", "o", "", "Output markdown file (stdout if not specified)")
	quiet      = pflag.BoolP("quiet", "q", false, "Suppress progress output")
)

// Usage:
//
//	go test -bench . -benchmem ./growarray | go run ./scripts -o BENCHMARKS.md
func main() {
	pflag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results, err := parseBenchmarks(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading benchmark output: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkInsertAt/growarray/10k-8    123456    9876 ns/op    0 B/op    0 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+B/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
)

// parseBenchmarks reads plain or -json `go test -bench` output.
func parseBenchmarks(r io.Reader) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		// go test -json wraps each output line in a test event.
		var event struct{ Output string }
		if err := json.Unmarshal([]byte(line), &event); err == nil && event.Output != "" {
			line = event.Output
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		res := BenchmarkResult{Name: matches[1]}
		res.Operation, res.Impl, res.Size = splitName(res.Name)
		if res.Impl == "" {
			continue
		}

		var err error
		if res.Iterations, err = strconv.Atoi(matches[2]); err != nil {
			return nil, fmt.Errorf("line %d: iterations: %w", lineNo, err)
		}
		if res.NsPerOp, err = strconv.ParseFloat(matches[3], 64); err != nil {
			return nil, fmt.Errorf("line %d: ns/op: %w", lineNo, err)
		}
		if matches[4] != "" {
			if res.BytesPerOp, err = strconv.ParseFloat(matches[4], 64); err != nil {
				return nil, fmt.Errorf("line %d: B/op: %w", lineNo, err)
			}
		}
		if matches[5] != "" {
			if res.AllocsPerOp, err = strconv.ParseFloat(matches[5], 64); err != nil {
				return nil, fmt.Errorf("line %d: allocs/op: %w", lineNo, err)
			}
		}

		results = append(results, res)
	}
	return results, scanner.Err()
}

// splitName splits Benchmark<Op>/<impl>[/<size>]-<procs> into its parts.
// Benchmarks without an implementation segment are treated as growarray-only.
// Names with an empty segment yield an empty impl.
func splitName(name string) (op, impl, size string) {
	name = strings.TrimPrefix(name, "Benchmark")
	if dash := strings.LastIndex(name, "-"); dash > 0 {
		if _, err := strconv.Atoi(name[dash+1:]); err == nil {
			name = name[:dash]
		}
	}

	parts := strings.Split(name, "/")
	for _, p := range parts {
		if p == "" {
			return "", "", ""
		}
	}
	switch len(parts) {
	case 1:
		return parts[0], implGrowArray, ""
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], parts[1], strings.Join(parts[2:], "/")
	}
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		size      string
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, result := range results {
		k := key{result.Operation, result.Size}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][result.Impl] = result
	}

	var comparisons []ComparisonResult
	for k, impls := range grouped {
		ga, hasGrowArray := impls[implGrowArray]
		if !hasGrowArray {
			continue
		}
		comp := ComparisonResult{
			Operation:       k.operation,
			Size:            k.size,
			GrowArrayNs:     ga.NsPerOp,
			GrowArrayMem:    ga.BytesPerOp,
			GrowArrayAllocs: ga.AllocsPerOp,
			GrowArrayOnly:   true,
		}
		if sl, ok := impls[implSlice]; ok {
			comp.GrowArrayOnly = false
			comp.SliceNs = sl.NsPerOp
			comp.SliceMem = sl.BytesPerOp
			comp.SliceAllocs = sl.AllocsPerOp
			if ga.NsPerOp > 0 {
				comp.Ratio = sl.NsPerOp / ga.NsPerOp
			}
		}
		comparisons = append(comparisons, comp)
	}

	// Sort by operation then size
	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Operation != comparisons[j].Operation {
			return comparisons[i].Operation < comparisons[j].Operation
		}
		return sizeKey(comparisons[i].Size) < sizeKey(comparisons[j].Size)
	})
	return comparisons
}

// sizeKey orders "1k" < "10k" < "100k" numerically.
func sizeKey(s string) int {
	mult := 1
	if strings.HasSuffix(s, "k") {
		mult = 1_000
		s = strings.TrimSuffix(s, "k")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n * mult
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	p := message.NewPrinter(language.English)
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	p.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	faster, slower, only := 0, 0, 0
	for _, comp := range comparisons {
		switch {
		case comp.GrowArrayOnly:
			only++
		case comp.Ratio > 1.0:
			faster++
		case comp.Ratio < 1.0:
			slower++
		}
	}

	sb.WriteString("## Summary\n\n")
	p.Fprintf(&sb, "- **Total benchmarks**: %d\n", len(comparisons))
	p.Fprintf(&sb, "- **Compared with slice**: %d\n", len(comparisons)-only)
	p.Fprintf(&sb, "  - growarray faster: %d\n", faster)
	p.Fprintf(&sb, "  - slice faster: %d\n", slower)
	p.Fprintf(&sb, "- **growarray-only**: %d\n\n", only)

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Size | growarray (ns/op) | slice (ns/op) | Ratio | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|------|-------------------|---------------|-------|---------------|--------|\n")

	for _, comp := range comparisons {
		size := comp.Size
		if size == "" {
			size = "-"
		}
		if comp.GrowArrayOnly {
			p.Fprintf(&sb, "| %s | %s | %.1f | *N/A* | *growarray only* | %g | %g |\n",
				comp.Operation, size, comp.GrowArrayNs, comp.GrowArrayMem, comp.GrowArrayAllocs)
			continue
		}

		indicator := "✓"
		if comp.Ratio < 1.0 {
			indicator = "✗"
		}
		p.Fprintf(&sb, "| %s | %s | %.1f | %.1f | %.2fx %s | %g vs %g | %g vs %g |\n",
			comp.Operation, size, comp.GrowArrayNs, comp.SliceNs, comp.Ratio, indicator,
			comp.GrowArrayMem, comp.SliceMem, comp.GrowArrayAllocs, comp.SliceAllocs)
	}

	return sb.String()
}
