package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/adapter/console"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/config"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
)

var errInvalidTicks = errors.New("--ticks must be positive")

func newSimulateCmd() *cobra.Command {
	var (
		ticks    int
		seed     uint64
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a number of ticks from the initial readings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ticks <= 0 {
				return errInvalidTicks
			}
			seed = config.Config{Seed: seed}.ResolveSeed()
			engine, err := hydroponics.NewEngine(hydroponics.LettuceProfile(), hydroponics.NewSeededSource(seed))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s seed %d\n", xid.New().String(), seed)

			state := hydroponics.InitialState()
			for i := 1; i <= ticks; i++ {
				shown := state
				_, set := engine.Tick(&state)

				fmt.Fprintf(out, "\n== tick %d ==\n", i)
				if err := console.Render(out, shown, set); err != nil {
					return err
				}
				if interval > 0 && i < ticks {
					select {
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					case <-time.After(interval):
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 10, "number of ticks to run")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "drift seed; 0 draws a random one")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between ticks, e.g. 3s")
	return cmd
}
