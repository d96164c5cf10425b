package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sim"
)

const envPrefix = "SIMLAB"

// newConfig binds the command's flags into a viper instance so each flag
// can also be set as SIMLAB_<FLAG>, dashes becoming underscores.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

func addBatchFlags(f *pflag.FlagSet) {
	f.Uint32("epoch", 0, "epoch to reproduce (fresh when unset)")
	f.Int("runs", sim.DefaultRuns, fmt.Sprintf("independent runs (%d to %d)", sim.MinRuns, sim.MaxRuns))
}

// resolveEpoch returns the configured epoch or draws a fresh one and logs it
// so the batch can be reproduced.
func resolveEpoch(logger *log.Logger, config *viper.Viper) (uint32, error) {
	if config.IsSet("epoch") {
		raw := config.GetString("epoch")
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return 0, sim.Invalid("epoch", "must be an unsigned 32-bit integer, got %q", raw)
		}
		return uint32(v), nil
	}
	epoch, err := prng.NewEpoch()
	if err != nil {
		return 0, err
	}
	logger.Info("fresh epoch", "epoch", epoch)
	return epoch, nil
}

func bigIntFlag(config *viper.Viper, name string) (*big.Int, error) {
	raw := config.GetString(name)
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, sim.Invalid(name, "not an integer: %q", raw)
	}
	return v, nil
}
