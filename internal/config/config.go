package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/str4t3gy/sweetbakery/internal/compound"
	"github.com/str4t3gy/sweetbakery/internal/logger"
)

const envPrefix = "SWEETBAKERY_"

// SingleConfig holds the inputs of a pool paying rewards in the staked asset
type SingleConfig struct {
	Amount      float64
	APR         float64
	Fee         float64
	RewardLabel string
}

// SplitConfig holds the inputs of a pool splitting rewards between two assets
type SplitConfig struct {
	Amount         float64
	APRPrimary     float64
	APRSecondary   float64
	FeesPrimary    float64
	FeesSecondary  float64
	PriceRef       float64
	PriceSecondary float64
	RewardLabel    string
}

// PairConfig holds the inputs of a liquidity pair feeding a secondary pool
type PairConfig struct {
	Amount            float64
	APRPair           float64
	APRSecondary      float64
	FeesPair          float64
	FeesSecondaryPool float64
	RewardLabel       string
}

// Config holds all application configuration
type Config struct {
	Single SingleConfig
	Split  SplitConfig
	Pair   PairConfig

	// Output settings
	Debug bool
	JSON  bool
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Single: SingleConfig{
			Amount:      266,
			APR:         114.94,
			Fee:         2.5,
			RewardLabel: "BUNNY",
		},
		Split: SplitConfig{
			Amount:         266,
			APRPrimary:     92,
			APRSecondary:   114.94,
			FeesPrimary:    7.5,
			FeesSecondary:  2.5,
			PriceRef:       560,
			PriceSecondary: 430,
			RewardLabel:    "CAKE+BUNNY",
		},
		Pair: PairConfig{
			Amount:            266,
			APRPair:           142,
			APRSecondary:      114.94,
			FeesPair:          7,
			FeesSecondaryPool: 2.5,
			RewardLabel:       "BUNNY",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() {
	floats := map[string]*float64{
		"SINGLE_AMOUNT": &c.Single.Amount,
		"SINGLE_APR":    &c.Single.APR,
		"SINGLE_FEE":    &c.Single.Fee,

		"SPLIT_AMOUNT":          &c.Split.Amount,
		"SPLIT_APR_PRIMARY":     &c.Split.APRPrimary,
		"SPLIT_APR_SECONDARY":   &c.Split.APRSecondary,
		"SPLIT_FEES_PRIMARY":    &c.Split.FeesPrimary,
		"SPLIT_FEES_SECONDARY":  &c.Split.FeesSecondary,
		"SPLIT_PRICE_REF":       &c.Split.PriceRef,
		"SPLIT_PRICE_SECONDARY": &c.Split.PriceSecondary,

		"PAIR_AMOUNT":         &c.Pair.Amount,
		"PAIR_APR":            &c.Pair.APRPair,
		"PAIR_APR_SECONDARY":  &c.Pair.APRSecondary,
		"PAIR_FEES":           &c.Pair.FeesPair,
		"PAIR_FEES_SECONDARY": &c.Pair.FeesSecondaryPool,
	}
	for key, target := range floats {
		value := os.Getenv(envPrefix + key)
		if value == "" {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			logger.Warn("Ignoring %s%s=%q: %v", envPrefix, key, value, err)
			continue
		}
		*target = f
	}

	labels := map[string]*string{
		"SINGLE_LABEL": &c.Single.RewardLabel,
		"SPLIT_LABEL":  &c.Split.RewardLabel,
		"PAIR_LABEL":   &c.Pair.RewardLabel,
	}
	for key, target := range labels {
		if value := os.Getenv(envPrefix + key); value != "" {
			*target = value
		}
	}

	if debug := os.Getenv(envPrefix + "DEBUG"); debug != "" {
		if d, err := strconv.ParseBool(debug); err == nil {
			c.Debug = d
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Single.Validate(); err != nil {
		return fmt.Errorf("single pool: %w", err)
	}
	if err := c.Split.Validate(); err != nil {
		return fmt.Errorf("split pool: %w", err)
	}
	if err := c.Pair.Validate(); err != nil {
		return fmt.Errorf("pair pool: %w", err)
	}
	return nil
}

// Validate checks the single pool inputs
func (s SingleConfig) Validate() error {
	if err := checkFinite(map[string]float64{"amount": s.Amount, "apr": s.APR, "fee": s.Fee}); err != nil {
		return err
	}
	if s.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got: %v", s.Amount)
	}
	if s.Fee < 0 {
		return fmt.Errorf("fee must be non-negative, got: %v", s.Fee)
	}
	return nil
}

// Validate checks the split pool inputs
func (s SplitConfig) Validate() error {
	err := checkFinite(map[string]float64{
		"amount":          s.Amount,
		"apr primary":     s.APRPrimary,
		"apr secondary":   s.APRSecondary,
		"fees primary":    s.FeesPrimary,
		"fees secondary":  s.FeesSecondary,
		"price ref":       s.PriceRef,
		"price secondary": s.PriceSecondary,
	})
	if err != nil {
		return err
	}
	if s.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got: %v", s.Amount)
	}
	if s.FeesPrimary < 0 || s.FeesSecondary < 0 {
		return fmt.Errorf("fees must be non-negative, got: %v and %v", s.FeesPrimary, s.FeesSecondary)
	}
	if s.PriceRef <= 0 {
		return fmt.Errorf("reference price must be positive, got: %v", s.PriceRef)
	}
	if s.PriceSecondary <= 0 {
		return fmt.Errorf("secondary price must be positive, got: %v", s.PriceSecondary)
	}
	return nil
}

// Validate checks the pair pool inputs
func (p PairConfig) Validate() error {
	err := checkFinite(map[string]float64{
		"amount":         p.Amount,
		"apr pair":       p.APRPair,
		"apr secondary":  p.APRSecondary,
		"fees pair":      p.FeesPair,
		"fees secondary": p.FeesSecondaryPool,
	})
	if err != nil {
		return err
	}
	if p.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got: %v", p.Amount)
	}
	if p.FeesPair < 0 || p.FeesSecondaryPool < 0 {
		return fmt.Errorf("fees must be non-negative, got: %v and %v", p.FeesPair, p.FeesSecondaryPool)
	}
	return nil
}

// Params converts the split config into simulator inputs
func (s SplitConfig) Params() compound.SplitParams {
	return compound.SplitParams{
		Amount:         s.Amount,
		APRPrimary:     s.APRPrimary,
		APRSecondary:   s.APRSecondary,
		FeesPrimary:    s.FeesPrimary,
		FeesSecondary:  s.FeesSecondary,
		PriceRef:       s.PriceRef,
		PriceSecondary: s.PriceSecondary,
	}
}

// Params converts the pair config into simulator inputs
func (p PairConfig) Params() compound.PairParams {
	return compound.PairParams{
		Amount:            p.Amount,
		APRPair:           p.APRPair,
		APRSecondary:      p.APRSecondary,
		FeesPair:          p.FeesPair,
		FeesSecondaryPool: p.FeesSecondaryPool,
	}
}

func checkFinite(values map[string]float64) error {
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number, got: %v", name, v)
		}
	}
	return nil
}
