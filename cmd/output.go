package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brogergvhs/shadowres/internal/resist"
	"github.com/brogergvhs/shadowres/internal/ui"

	"gopkg.in/yaml.v3"
)

// writeRecords renders records in format. A single record is written as
// an object rather than a one element list when one is set.
func writeRecords(w io.Writer, format string, noColor bool, records []resist.Record, one bool) error {
	var v any = records
	if one && len(records) == 1 {
		v = records[0]
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	case "text", "":
		p := ui.NewPrinter(w, noColor)
		for _, r := range records {
			if err := p.PrintRecord(r); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unknown format %q", format)
}
