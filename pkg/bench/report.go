package bench

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteSummary writes the one-line result in the classic format:
//
//	Sum was 12502500 in 41 ms
func WriteSummary(w io.Writer, res *Result) error {
	_, err := fmt.Fprintf(w, "Sum was %d in %d ms\n", res.Sum, res.ElapsedMS)
	return err
}

// WritePhases writes a per-phase breakdown with digit grouping for tag, for
// example language.English renders 10000000 as 10,000,000.
func WritePhases(w io.Writer, res *Result, tag language.Tag) error {
	p := message.NewPrinter(tag)

	if _, err := p.Fprintf(w, "%-13s %12s %12s %12s %12s %6s\n",
		"phase", "ops", "elapsed", "size", "capacity", "grows"); err != nil {
		return err
	}
	for _, ph := range res.Phases {
		if _, err := p.Fprintf(w, "%-13s %12d %12s %12d %12d %6d\n",
			ph.Name, ph.Ops, ph.Elapsed.Round(time.Microsecond), ph.Size, ph.Capacity, ph.Grows); err != nil {
			return err
		}
	}

	if _, err := p.Fprintf(w, "\nTotal: %s wall", res.Elapsed.Round(time.Microsecond)); err != nil {
		return err
	}
	if res.Usage != nil {
		if _, err := p.Fprintf(w, ", %s user, %s sys, peak RSS %d KB",
			res.Usage.User.Round(time.Microsecond),
			res.Usage.System.Round(time.Microsecond),
			res.Usage.MaxRSS/1024); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "\n")
	return err
}
