package api

import (
	"github.com/labstack/echo/v4"
	"github.com/tifye/simlab/assert"
	"github.com/tifye/simlab/exercise/deposit"
	"github.com/tifye/simlab/exercise/dice"
	"github.com/tifye/simlab/exercise/farm"
	"github.com/tifye/simlab/exercise/inventory"
	"github.com/tifye/simlab/exercise/shop"
	"github.com/tifye/simlab/sim"
)

// Deposits draw no randomness, so their cache keys carry no epoch.
const noEpoch = 0

func handleGetDice(b *batcher) echo.HandlerFunc {
	assert.AssertNotNil(b)
	return func(c echo.Context) error {
		p := dice.DefaultParams()
		runs := sim.DefaultRuns
		err := echo.QueryParamsBinder(c).
			Int("games", &p.Games).
			Float64("price", &p.Price).
			Float64("cost7", &p.Cost7).
			Int("runs", &runs).
			BindError()
		if err != nil {
			return b.fail(c, err)
		}
		epoch, err := requestEpoch(c)
		if err != nil {
			return b.fail(c, err)
		}

		return serveBatch(c, b, cacheKey(dice.Name, p, epoch, runs), func() (dice.Batch, error) {
			return dice.Run(b.logger, p, epoch, runs)
		})
	}
}

func handleGetFarm(b *batcher) echo.HandlerFunc {
	assert.AssertNotNil(b)
	return func(c echo.Context) error {
		p := farm.DefaultParams()
		runs := sim.DefaultRuns
		err := echo.QueryParamsBinder(c).
			Int("days", &p.Days).
			Float64("eggPrice", &p.EggPrice).
			Float64("chickPrice", &p.ChickPrice).
			Int("runs", &runs).
			BindError()
		if err != nil {
			return b.fail(c, err)
		}
		epoch, err := requestEpoch(c)
		if err != nil {
			return b.fail(c, err)
		}

		return serveBatch(c, b, cacheKey(farm.Name, p, epoch, runs), func() (farm.Batch, error) {
			return farm.Run(b.logger, p, epoch, runs)
		})
	}
}

func handleGetInventory(b *batcher) echo.HandlerFunc {
	assert.AssertNotNil(b)
	return func(c echo.Context) error {
		p := inventory.DefaultParams()
		runs := sim.DefaultRuns
		err := echo.QueryParamsBinder(c).
			Float64("demandMean", &p.DemandMean).
			Float64("capacity", &p.Capacity).
			Float64("orderCost", &p.OrderCost).
			Float64("holdingCost", &p.HoldingCost).
			Float64("acquisitionCost", &p.AcquisitionCost).
			Float64("price", &p.Price).
			Int("reviewPeriod", &p.ReviewPeriod).
			Int("days", &p.Days).
			Int("runs", &runs).
			BindError()
		if err != nil {
			return b.fail(c, err)
		}
		epoch, err := requestEpoch(c)
		if err != nil {
			return b.fail(c, err)
		}

		return serveBatch(c, b, cacheKey(inventory.Name, p, epoch, runs), func() (inventory.Batch, error) {
			return inventory.Run(b.logger, p, epoch, runs)
		})
	}
}

func handleGetShop(b *batcher) echo.HandlerFunc {
	assert.AssertNotNil(b)
	return func(c echo.Context) error {
		p := shop.DefaultParams()
		runs := sim.DefaultRuns
		err := echo.QueryParamsBinder(c).
			Int("hours", &p.Hours).
			Float64("unitCost", &p.UnitCost).
			Float64("unitPrice", &p.UnitPrice).
			Float64("fixedCost", &p.FixedCost).
			Int("runs", &runs).
			BindError()
		if err != nil {
			return b.fail(c, err)
		}
		epoch, err := requestEpoch(c)
		if err != nil {
			return b.fail(c, err)
		}

		return serveBatch(c, b, cacheKey(shop.Name, p, epoch, runs), func() (shop.Batch, error) {
			return shop.Run(b.logger, p, epoch, runs)
		})
	}
}

func handleGetFixedDeposit(b *batcher) echo.HandlerFunc {
	assert.AssertNotNil(b)
	return func(c echo.Context) error {
		p := deposit.DefaultFixedParams()
		err := echo.QueryParamsBinder(c).
			Float64("capital", &p.Capital).
			Float64("rate", &p.AnnualRate).
			Int("periodsPerYear", &p.PeriodsPerYear).
			Float64("years", &p.Years).
			Float64("contribution", &p.Contribution).
			BindError()
		if err != nil {
			return b.fail(c, err)
		}

		return serveBatch(c, b, cacheKey(deposit.FixedName, p, noEpoch, 1), func() (deposit.FixedBatch, error) {
			return deposit.RunFixed(b.logger, p)
		})
	}
}

func handleGetVariableDeposit(b *batcher) echo.HandlerFunc {
	assert.AssertNotNil(b)
	return func(c echo.Context) error {
		p := deposit.DefaultVariableParams()
		err := echo.QueryParamsBinder(c).
			Float64("capital", &p.Capital).
			Int("years", &p.Years).
			BindError()
		if err != nil {
			return b.fail(c, err)
		}

		return serveBatch(c, b, cacheKey(deposit.VariableName, p, noEpoch, 1), func() (deposit.VariableBatch, error) {
			return deposit.RunVariable(b.logger, p)
		})
	}
}
