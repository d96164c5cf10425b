package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tifye/simlab/exercise/deposit"
	"github.com/tifye/simlab/exercise/dice"
	"github.com/tifye/simlab/exercise/farm"
	"github.com/tifye/simlab/exercise/inventory"
	"github.com/tifye/simlab/exercise/shop"
)

func newDiceCommand(logger *log.Logger) *cobra.Command {
	d := dice.DefaultParams()
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "House gain in the two-dice game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			p := dice.Params{
				Games: config.GetInt("games"),
				Price: config.GetFloat64("price"),
				Cost7: config.GetFloat64("cost7"),
			}
			epoch, err := resolveEpoch(logger, config)
			if err != nil {
				return err
			}
			batch, err := dice.Run(logger, p, epoch, config.GetInt("runs"))
			if err != nil {
				return err
			}
			return printBatch(cmd.OutOrStdout(), config, batch)
		},
	}

	f := cmd.Flags()
	f.Int("games", d.Games, "games per run")
	f.Float64("price", d.Price, "price the player pays per game")
	f.Float64("cost7", d.Cost7, "amount paid out when the dice sum to seven")
	addBatchFlags(f)
	return cmd
}

func newFarmCommand(logger *log.Logger) *cobra.Command {
	d := farm.DefaultParams()
	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Egg and chick revenue of a hen over a number of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			p := farm.Params{
				Days:       config.GetInt("days"),
				EggPrice:   config.GetFloat64("egg-price"),
				ChickPrice: config.GetFloat64("chick-price"),
			}
			epoch, err := resolveEpoch(logger, config)
			if err != nil {
				return err
			}
			batch, err := farm.Run(logger, p, epoch, config.GetInt("runs"))
			if err != nil {
				return err
			}
			return printBatch(cmd.OutOrStdout(), config, batch)
		},
	}

	f := cmd.Flags()
	f.Int("days", d.Days, "days to simulate")
	f.Float64("egg-price", d.EggPrice, "price of an egg")
	f.Float64("chick-price", d.ChickPrice, "price of a chick")
	addBatchFlags(f)
	return cmd
}

func newInventoryCommand(logger *log.Logger) *cobra.Command {
	d := inventory.DefaultParams()
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Sugar warehouse under periodic review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			p := inventory.Params{
				DemandMean:      config.GetFloat64("demand-mean"),
				Capacity:        config.GetFloat64("capacity"),
				OrderCost:       config.GetFloat64("order-cost"),
				HoldingCost:     config.GetFloat64("holding-cost"),
				AcquisitionCost: config.GetFloat64("acquisition-cost"),
				Price:           config.GetFloat64("price"),
				ReviewPeriod:    config.GetInt("review-period"),
				Days:            config.GetInt("days"),
			}
			epoch, err := resolveEpoch(logger, config)
			if err != nil {
				return err
			}
			batch, err := inventory.Run(logger, p, epoch, config.GetInt("runs"))
			if err != nil {
				return err
			}
			return printBatch(cmd.OutOrStdout(), config, batch)
		},
	}

	f := cmd.Flags()
	f.Float64("demand-mean", d.DemandMean, "mean daily demand (kg)")
	f.Float64("capacity", d.Capacity, "warehouse capacity (kg)")
	f.Float64("order-cost", d.OrderCost, "fixed cost per order")
	f.Float64("holding-cost", d.HoldingCost, "holding cost per kg per day")
	f.Float64("acquisition-cost", d.AcquisitionCost, "acquisition cost per kg")
	f.Float64("price", d.Price, "sale price per kg")
	f.Int("review-period", d.ReviewPeriod, "days between reviews")
	f.Int("days", d.Days, "days to simulate")
	addBatchFlags(f)
	return cmd
}

func newShopCommand(logger *log.Logger) *cobra.Command {
	d := shop.DefaultParams()
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Hourly customer arrivals and item sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			p := shop.Params{
				Hours:     config.GetInt("hours"),
				UnitCost:  config.GetFloat64("unit-cost"),
				UnitPrice: config.GetFloat64("unit-price"),
				FixedCost: config.GetFloat64("fixed-cost"),
			}
			epoch, err := resolveEpoch(logger, config)
			if err != nil {
				return err
			}
			batch, err := shop.Run(logger, p, epoch, config.GetInt("runs"))
			if err != nil {
				return err
			}
			return printBatch(cmd.OutOrStdout(), config, batch)
		},
	}

	f := cmd.Flags()
	f.Int("hours", d.Hours, "opening hours")
	f.Float64("unit-cost", d.UnitCost, "acquisition cost per item")
	f.Float64("unit-price", d.UnitPrice, "sale price per item")
	f.Float64("fixed-cost", d.FixedCost, "fixed daily cost")
	addBatchFlags(f)
	return cmd
}

func newDepositCommand(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deterministic compound-interest deposits",
	}
	cmd.AddCommand(newFixedDepositCommand(logger), newVariableDepositCommand(logger))
	return cmd
}

func newFixedDepositCommand(logger *log.Logger) *cobra.Command {
	d := deposit.DefaultFixedParams()
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Fixed nominal rate compounded m times a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			p := deposit.FixedParams{
				Capital:        config.GetFloat64("capital"),
				AnnualRate:     config.GetFloat64("rate"),
				PeriodsPerYear: config.GetInt("periods-per-year"),
				Years:          config.GetFloat64("years"),
				Contribution:   config.GetFloat64("contribution"),
			}
			batch, err := deposit.RunFixed(logger, p)
			if err != nil {
				return err
			}
			if err := printBatch(cmd.OutOrStdout(), config, batch); err != nil {
				return err
			}
			return printFinalCapital(cmd, config, batch.Runs[0].Summary.FinalCapital)
		},
	}

	f := cmd.Flags()
	f.Float64("capital", d.Capital, "initial capital")
	f.Float64("rate", d.AnnualRate, "nominal annual rate in percent")
	f.Int("periods-per-year", d.PeriodsPerYear, "compounding periods per year")
	f.Float64("years", d.Years, "term in years")
	f.Float64("contribution", d.Contribution, "contribution added each period")
	return cmd
}

func newVariableDepositCommand(logger *log.Logger) *cobra.Command {
	d := deposit.DefaultVariableParams()
	cmd := &cobra.Command{
		Use:   "variable",
		Short: "Annual rate chosen by capital tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(cmd)
			if err != nil {
				return err
			}
			p := deposit.VariableParams{
				Capital: config.GetFloat64("capital"),
				Years:   config.GetInt("years"),
			}
			batch, err := deposit.RunVariable(logger, p)
			if err != nil {
				return err
			}
			if err := printBatch(cmd.OutOrStdout(), config, batch); err != nil {
				return err
			}
			return printFinalCapital(cmd, config, batch.Runs[0].Summary.FinalCapital)
		},
	}

	f := cmd.Flags()
	f.Float64("capital", d.Capital, "initial capital")
	f.Int("years", d.Years, "term in whole years")
	return cmd
}

func printFinalCapital(cmd *cobra.Command, config *viper.Viper, capital float64) error {
	if config.GetString("format") != formatTable {
		return nil
	}
	r, err := newRenderer(config)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "final capital: %s\n", r.Money(capital))
	return err
}
