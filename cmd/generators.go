package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tifye/simlab/congruential"
	"github.com/tifye/simlab/export"
	"github.com/tifye/simlab/render"
)

func newGeneratorCommand(logger *log.Logger, name string) *cobra.Command {
	kind := congruential.Linear
	short := "Linear congruential generator, a = 1 + 4K"
	if name == "mcg" {
		kind = congruential.Multiplicative
		short = "Multiplicative congruential generator, a = 8K + 3"
	}
	d := congruential.DefaultConfig(kind)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			format, err := checkFormat(config)
			if err != nil {
				return err
			}

			cfg := congruential.Config{
				Kind:     kind,
				Power:    config.GetInt("power"),
				Decimals: config.GetInt("decimals"),
				Count:    config.GetInt("count"),
			}
			if cfg.Seed, err = bigIntFlag(config, "seed"); err != nil {
				return err
			}
			if cfg.K, err = bigIntFlag(config, "k"); err != nil {
				return err
			}
			if kind == congruential.Linear {
				if cfg.C, err = bigIntFlag(config, "c"); err != nil {
					return err
				}
			}

			g, err := congruential.New(cfg)
			if err != nil {
				return err
			}
			seq := g.Sequence()
			logger.Debug("generated", "kind", kind, "a", seq.A, "m", seq.M, "rows", len(seq.Rows))

			w := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(w, seq)
			case formatCSV:
				return export.WriteCSV(w, seq.Rows)
			}

			r, err := newRenderer(config)
			if err != nil {
				return err
			}
			if kind == congruential.Linear {
				fmt.Fprintf(w, "a = %s, c = %s, m = %s\n", seq.A, seq.C, seq.M)
			} else {
				fmt.Fprintf(w, "a = %s, m = %s\n", seq.A, seq.M)
			}
			fmt.Fprintln(w, seq.Diagnostic.Message)
			fmt.Fprintln(w, render.Rows(r, seq.Rows))

			if limit := config.GetInt("period"); limit > 0 {
				period, err := g.Period(limit)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "period: %d\n", period)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("seed", d.Seed.String(), "seed X0, 0 <= X0 < 2^power")
	f.String("k", d.K.String(), "multiplier parameter K")
	if kind == congruential.Linear {
		f.String("c", d.C.String(), "additive constant c")
	}
	f.Int("power", d.Power, "modulus exponent, m = 2^power")
	f.Int("decimals", d.Decimals, "decimals of r (2, 4, 6 or 8)")
	f.Int("count", d.Count, "numbers to generate")
	f.Int("period", 0, "also measure the period, giving up after this many steps")
	return cmd
}
