// README: CLI that composes one itinerary and prints the envelope as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deepaklokare24/travel-agent/internal/app"
	"github.com/deepaklokare24/travel-agent/internal/config"
	"github.com/deepaklokare24/travel-agent/internal/infra"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

var (
	req       types.TripRequest
	interests []string
	envFile   string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose a travel itinerary from the command line",
	Long: `plan gathers routes, weather, attractions, restaurants, hotels and local
tips for a trip and asks the configured language model for a day-by-day plan.
Defaults reproduce the San Francisco to Los Angeles sample trip.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		logger, err := infra.NewLogger(false, logLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		composer, closeFn, err := app.NewComposer(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		req.Preferences.Interests = interests
		resp, err := composer.Compose(ctx, req)
		if err != nil {
			return fmt.Errorf("compose itinerary: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&req.FromLocation, "from", "San Francisco", "origin")
	f.StringVar(&req.ToLocation, "to", "Los Angeles", "destination")
	f.StringVar(&req.StartDate, "start", "2024-02-01", "start date (YYYY-MM-DD)")
	f.StringVar(&req.EndDate, "end", "2024-02-05", "end date (YYYY-MM-DD)")
	f.IntVar(&req.NumberOfTravelers, "travelers", 2, "number of travelers")
	f.BoolVar(&req.IncludeWeather, "weather", true, "include weather")
	f.BoolVar(&req.IncludeLocalTips, "tips", true, "include local tips")
	f.StringVar(&req.Preferences.Budget, "budget", "moderate", "budget tier")
	f.StringSliceVar(&interests, "interests", []string{"food", "culture", "nature"}, "interest tags")
	f.StringVar(&req.Preferences.Transportation, "transport", "car", "car, train, flight or mixed")
	f.StringVar(&req.Preferences.AccommodationType, "accommodation", "hotel", "accommodation type")
	f.StringVar(&req.Preferences.Pace, "pace", "moderate", "trip pace")
	f.StringVar(&envFile, "env-file", ".env", "dotenv file to load when present")
	f.StringVar(&logLevel, "log-level", "info", "log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
