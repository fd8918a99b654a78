package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"order-weather/internal/geocoding"
	"order-weather/internal/orders"
	"order-weather/internal/orderweather"
	"order-weather/internal/types"
	"order-weather/internal/weather"
)

type coordsOutput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type signalOutput struct {
	WeatherSummary           string   `json:"weather_summary"`
	PrecipitationProbability *float64 `json:"precipitation_probability"`
}

type evaluationOutput struct {
	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	signalOutput
	DeliveryAvailable bool    `json:"delivery_available"`
	CheckedAt         string  `json:"checked_at"`
	RecommendedDate   *string `json:"recommended_date,omitempty"`
}

func (c *cli) geocodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geocode <address>",
		Short: "Resolve an address to coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := strings.Join(args, " ")
			svc := geocoding.NewGeocodingService(c.cfg, c.metrics, c.logger)

			coords, ok := svc.Resolve(cmd.Context(), address)
			if !ok {
				return fmt.Errorf("could not geocode %q", address)
			}
			return printJSON(cmd, coordsOutput{Latitude: coords.Latitude, Longitude: coords.Longitude})
		},
	}
}

func (c *cli) weatherCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "weather [place]",
		Short: "Print today's weather signal for a place or a coordinate",
		Example: `  deliverycheck weather Providencia
  deliverycheck weather --lat -33.4489 --lon -70.6693`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := weather.NewWeatherService(c.cfg, c.metrics, c.logger)

			var signal types.WeatherSignal
			switch {
			case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon"):
				coords := types.NewCoords(lat, lon)
				if !coords.Valid() {
					return errors.New("--lat and --lon must be finite numbers")
				}
				signal = svc.ByCoordinate(cmd.Context(), coords)
			case len(args) > 0:
				signal = svc.ByText(cmd.Context(), strings.Join(args, " "))
			default:
				return errors.New("either a place or both --lat and --lon are required")
			}

			return printJSON(cmd, signalOutput{
				WeatherSummary:           signal.Summary,
				PrecipitationProbability: signal.PrecipitationProbability,
			})
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in decimal degrees")
	return cmd
}

func (c *cli) evaluateCmd() *cobra.Command {
	var byNumber bool

	cmd := &cobra.Command{
		Use:   "evaluate <order-id>",
		Short: "Evaluate a stored order against today's weather",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if !byNumber {
				var err error
				id, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid order id %q", args[0])
				}
			}

			database, err := c.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			svc, err := c.orderWeatherService(database)
			if err != nil {
				return err
			}

			var res *orderweather.Result
			if byNumber {
				res, err = svc.EvaluateByNumber(cmd.Context(), args[0])
			} else {
				res, err = svc.Evaluate(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			return printJSON(cmd, newEvaluationOutput(res))
		},
	}
	cmd.Flags().BoolVar(&byNumber, "number", false, "Treat the argument as an order number")
	return cmd
}

func newEvaluationOutput(res *orderweather.Result) evaluationOutput {
	out := evaluationOutput{
		OrderID:     res.OrderID,
		OrderNumber: res.OrderNumber,
		Address:     res.Address,
		Latitude:    res.Coords.Latitude,
		Longitude:   res.Coords.Longitude,
		signalOutput: signalOutput{
			WeatherSummary:           res.Signal.Summary,
			PrecipitationProbability: res.Signal.PrecipitationProbability,
		},
		DeliveryAvailable: res.Decision.Available,
		CheckedAt:         res.CheckedAt.Format(time.DateOnly),
	}
	if d := res.Decision.RecommendedDate; d != nil {
		s := d.Format(time.DateOnly)
		out.RecommendedDate = &s
	}
	return out
}

func (c *cli) dbCmd() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the order store",
	}

	var seedPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the orders table and optionally seed it from JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := c.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			c.logger.Info("initializing database schema")
			if err := orders.InitSchema(cmd.Context(), database); err != nil {
				return err
			}
			c.logger.Info("schema ready")

			if seedPath == "" {
				return nil
			}
			n, err := orders.SeedFromJSON(cmd.Context(), database, seedPath)
			if err != nil {
				return err
			}
			c.logger.Info("seeding complete", "orders", n, "path", seedPath)
			return nil
		},
	}
	initCmd.Flags().StringVar(&seedPath, "seed", "", "JSON file with orders to upsert")

	dbCmd.AddCommand(initCmd)
	return dbCmd
}
