package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/tifye/simlab/export"
	"github.com/tifye/simlab/render"
	"github.com/tifye/simlab/sim"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func newRenderer(config *viper.Viper) (*render.Renderer, error) {
	tag, err := language.Parse(config.GetString("lang"))
	if err != nil {
		return nil, sim.Invalid("lang", "unknown locale %q", config.GetString("lang"))
	}
	return render.New(tag), nil
}

func checkFormat(config *viper.Viper) (string, error) {
	switch f := config.GetString("format"); f {
	case formatTable, formatCSV, formatJSON:
		return f, nil
	default:
		return "", sim.Invalid("format", "must be table, csv or json, got %q", f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type batchOutput[Row any, Sum sim.Summary] struct {
	sim.Batch[Row, Sum]
	Aggregate sim.Aggregate `json:"aggregate"`
}

func printBatch[Row export.Record, Sum sim.Summary](w io.Writer, config *viper.Viper, batch sim.Batch[Row, Sum]) error {
	format, err := checkFormat(config)
	if err != nil {
		return err
	}
	agg, err := batch.Aggregate()
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	if format == formatJSON {
		return writeJSON(w, batchOutput[Row, Sum]{Batch: batch, Aggregate: agg})
	}

	i := config.GetInt("run")
	if i < 0 || i >= len(batch.Runs) {
		return sim.Invalid("run", "must be between 0 and %d, got %d", len(batch.Runs)-1, i)
	}
	run := batch.Runs[i]
	if format == formatCSV {
		return export.WriteCSV(w, run.Rows)
	}

	r, err := newRenderer(config)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s · epoch %d · run %d of %d\n", batch.Exercise, batch.Epoch, i+1, len(batch.Runs))
	for _, s := range run.Seeds {
		fmt.Fprintf(w, "  seed %s = %d\n", s.Stream, s.Value)
	}
	fmt.Fprintln(w, render.Rows(r, run.Rows))
	fmt.Fprintln(w, r.Metrics(run.Summary.Metrics()))
	if len(batch.Runs) > 1 {
		fmt.Fprintln(w, r.Aggregate(agg))
	}
	return nil
}
