// Command tokenid inspects 256-bit perpetual-option position identifiers. It
// loads configuration, validates it, and either decodes an identifier into
// its pool reference and legs (annotated with registry metadata and display
// prices when the pool is known) or packs a pool address into its 64-bit pool
// reference. Results are printed to stdout as JSON; logs go to stderr.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/alanyoungcy/panoptic-go/config"
	"github.com/alanyoungcy/panoptic-go/pool"
	"github.com/alanyoungcy/panoptic-go/price"
	"github.com/alanyoungcy/panoptic-go/tokenid"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	decodeID := flag.String("decode", "", "position identifier to decode (decimal or 0x hex)")
	poolAddress := flag.String("pool-address", "", "pool address or key hash to pack into a pool reference")
	tickSpacing := flag.Int("tick-spacing", 0, "tick spacing for -pool-address")
	vegoid := flag.Int("vegoid", -1, "vegoid for -pool-address (default taken from config)")
	flag.Parse()

	// Setup structured logger on stderr so stdout stays clean for results.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Set log level and format from config.
	logger = newLogger(cfg)
	slog.SetDefault(logger)

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch {
	case *decodeID != "":
		runDecode(logger, cfg, *decodeID)
	case *poolAddress != "":
		runPoolID(logger, cfg, *poolAddress, *tickSpacing, *vegoid)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// decodeResult is the JSON document printed for -decode.
type decodeResult struct {
	ID       string                `json:"id"`
	Hex      string                `json:"hex"`
	Pool     tokenid.PoolReference `json:"pool"`
	PoolHex  string                `json:"pool_hex"`
	PoolName string                `json:"pool_name,omitempty"`
	Legs     []legResult           `json:"legs"`
	Summary  positionSummary       `json:"summary"`
}

type legResult struct {
	tokenid.PositionLeg
	Prices         *price.Range `json:"prices,omitempty"`
	AdjustedPrices *price.Range `json:"adjusted_prices,omitempty"`
}

type positionSummary struct {
	LegCount        int  `json:"leg_count"`
	HasLongLeg      bool `json:"has_long_leg"`
	IsShortOnly     bool `json:"is_short_only"`
	IsSpread        bool `json:"is_spread"`
	IsLoan          bool `json:"is_loan"`
	IsCredit        bool `json:"is_credit"`
	HasLoanOrCredit bool `json:"has_loan_or_credit"`
}

func runDecode(logger *slog.Logger, cfg *config.Config, raw string) {
	id, err := tokenid.Parse(raw)
	if err != nil {
		logger.Error("failed to parse identifier",
			slog.String("id", raw),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		logger.Error("failed to load pool registry",
			slog.String("path", cfg.RegistryPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	pos := id.Decode()
	out := decodeResult{
		ID:      id.Dec(),
		Hex:     id.Hex(),
		Pool:    pos.Pool,
		PoolHex: pos.Pool.Hex(),
		Legs:    make([]legResult, 0, len(pos.Legs)),
		Summary: positionSummary{
			LegCount:        pos.LegCount(),
			HasLongLeg:      pos.HasLongLeg(),
			IsShortOnly:     pos.IsShortOnly(),
			IsSpread:        pos.IsSpread(),
			IsLoan:          pos.IsLoan(),
			IsCredit:        pos.IsCredit(),
			HasLoanOrCredit: pos.HasLoanOrCredit(),
		},
	}

	entry, known := reg.Find(pos.Pool.Fragment)
	if known {
		out.PoolName = entry.Name
	} else {
		logger.Debug("pool not in registry",
			slog.String("fragment", fmt.Sprintf("%010x", pos.Pool.Fragment)),
		)
	}

	for _, leg := range pos.Legs {
		lr := legResult{PositionLeg: leg}
		r := price.RangeAt(leg.TickLower, leg.TickUpper)
		lr.Prices = &r
		if known {
			ar := price.AdjustedRangeAt(leg.TickLower, leg.TickUpper,
				entry.Token0.Decimals, entry.Token1.Decimals)
			lr.AdjustedPrices = &ar
		}
		out.Legs = append(out.Legs, lr)
	}

	printJSON(logger, out)
}

// poolResult is the JSON document printed for -pool-address. The packed id is
// rendered as a decimal string because it can exceed the integer range JSON
// readers handle exactly.
type poolResult struct {
	PoolID string                `json:"pool_id"`
	Hex    string                `json:"hex"`
	Pool   tokenid.PoolReference `json:"pool"`
}

func runPoolID(logger *slog.Logger, cfg *config.Config, addr string, tickSpacing, vegoid int) {
	if tickSpacing == 0 {
		logger.Error("-tick-spacing is required with -pool-address")
		os.Exit(1)
	}
	if vegoid < 0 {
		vegoid = cfg.Vegoid
	}
	if vegoid > 255 {
		logger.Error("vegoid must be 0-255", slog.Int("vegoid", vegoid))
		os.Exit(1)
	}

	poolID, err := tokenid.PoolIDFromHex(addr, int32(tickSpacing), uint8(vegoid))
	if err != nil {
		logger.Error("failed to pack pool reference",
			slog.String("address", addr),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	ref := tokenid.DecodePoolID(poolID)
	printJSON(logger, poolResult{
		PoolID: fmt.Sprintf("%d", poolID),
		Hex:    ref.Hex(),
		Pool:   ref,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newLogger builds the slog logger described by the config. Logs always go to
// stderr so stdout stays clean for results.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// loadRegistry returns the pool registry selected by the config: the file at
// RegistryPath layered over the built-ins, or the built-ins alone.
func loadRegistry(cfg *config.Config) (*pool.Registry, error) {
	if cfg.RegistryPath != "" {
		return pool.LoadRegistry(cfg.RegistryPath)
	}
	return pool.DefaultRegistry(), nil
}

// printJSON renders v to stdout as indented JSON.
func printJSON(logger *slog.Logger, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(data))
}
