package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/shadowres/internal/util"
)

// Stats counts a bulk run. Safe for concurrent use.
type Stats struct {
	TotalShadows atomic.Int64
	TotalEntries atomic.Int64
	TotalSkipped atomic.Int64
	TotalBytes   atomic.Int64
}

// WriteSummary prints the end of run summary block.
func (s *Stats) WriteSummary(w io.Writer, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Shadows: %d\n", s.TotalShadows.Load())
	fmt.Fprintf(w, "Entries: %d\n", s.TotalEntries.Load())
	fmt.Fprintf(w, "Skipped: %d\n", s.TotalSkipped.Load())
	fmt.Fprintf(w, "Data:    %s\n", util.Human(s.TotalBytes.Load()))
	fmt.Fprintf(w, "Time:    %s\n", elapsed.Round(time.Second))
}
