package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if err := Execute(ctx, logger, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "simlab",
		Short:         "Seeded Monte-Carlo exercises and congruential generators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(config.GetString("log-level"))
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	f := cmd.PersistentFlags()
	f.String("format", formatTable, "output format: table, csv or json")
	f.Int("run", 0, "run whose rows are printed (table and csv)")
	f.String("lang", "es", "locale used to format numbers in tables")
	f.String("log-level", "info", "log level")

	cmd.AddCommand(
		newDiceCommand(logger),
		newFarmCommand(logger),
		newInventoryCommand(logger),
		newShopCommand(logger),
		newDepositCommand(logger),
		newGeneratorCommand(logger, "lcg"),
		newGeneratorCommand(logger, "mcg"),
	)

	return cmd
}

func Execute(ctx context.Context, logger *log.Logger, args []string) error {
	root := newRootCommand(logger)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		return err
	}
	return nil
}
