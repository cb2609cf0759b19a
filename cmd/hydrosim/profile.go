package main

import (
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/adapter/console"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the target profile the planner corrects towards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return console.RenderProfile(cmd.OutOrStdout(), hydroponics.LettuceProfile())
		},
	}
}
