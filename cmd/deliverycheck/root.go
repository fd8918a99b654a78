package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"order-weather/internal/config"
	"order-weather/internal/geocoding"
	"order-weather/internal/observability"
	"order-weather/internal/orders"
	"order-weather/internal/orderweather"
	"order-weather/internal/platform/db"
	"order-weather/internal/timezone"
	"order-weather/internal/weather"
)

// cli carries what every subcommand needs once configuration is loaded.
type cli struct {
	verbose bool

	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "deliverycheck",
		Short: "Check whether weather permits delivering an order",
		Long: `Geocode addresses, read today's forecast and evaluate stored orders
against the delivery precipitation threshold.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		c.geocodeCmd(),
		c.weatherCmd(),
		c.evaluateCmd(),
		c.dbCmd(),
	)
	return rootCmd
}

func (c *cli) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Log.Level = "debug"
	}
	c.cfg = cfg
	// stdout carries command output, logs go to stderr
	c.logger = cfg.NewLoggerTo(cmd.ErrOrStderr())
	c.metrics = observability.NewMetrics(prometheus.NewRegistry())
	return nil
}

func (c *cli) openDB(ctx context.Context) (*sql.DB, error) {
	return db.Open(ctx, c.cfg.Database)
}

func (c *cli) orderWeatherService(database *sql.DB) (orderweather.Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		c.logger.Warn("timezone lookup disabled", "error", err)
	}
	return orderweather.NewOrderWeatherService(
		orders.NewPostgresRepository(database),
		geocoding.NewGeocodingService(c.cfg, c.metrics, c.logger),
		weather.NewWeatherService(c.cfg, c.metrics, c.logger),
		tzSvc,
		clockwork.NewRealClock(),
		c.cfg,
		c.metrics,
		c.logger,
	)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
