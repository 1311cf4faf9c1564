// Package bench runs the growarray benchmark workload and renders its report.
//
// A run performs five phases on a fresh growarray.Array, in order:
//
//	add-end       EndCount appends of 1..EndCount
//	add-start     StartCount prepends of 1..StartCount
//	insert-at     StartCount inserts of 1..StartCount at InsertLocation
//	remove-end    EndCount removals from the end
//	remove-start  StartCount removals from the start
//
// and then sums the remaining elements through Size and At. Run reports the
// sum, the wall-clock time of every phase and the CPU time of the process.
//
// Example:
//
//	cfg, err := bench.ParseArgs([]string{"10000000", "1000", "5000"})
//	if err != nil {
//	    return err
//	}
//	res, err := bench.Run(ctx, cfg, slog.Default())
//	if err != nil {
//	    return err
//	}
//	bench.WriteSummary(os.Stdout, res)
package bench
