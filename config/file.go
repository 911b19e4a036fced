package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/diariotrade/diario/numparse"
	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a raw configuration from a file, trying YAML
// first and falling back to JSON.
func LoadFromFile(path string) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	t := &Text{}
	if err := yaml.Unmarshal(data, t); err != nil {
		if jerr := json.Unmarshal(data, t); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return t, nil
}

// SaveToFile writes the raw configuration, choosing the format by
// extension (.yaml/.yml get YAML, anything else JSON).
func (t *Text) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(t)
	} else {
		data, err = json.MarshalIndent(t, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate reports the first field that would fall back to a default
// during Normalize, plus sign errors on the daily thresholds. The
// engine itself never rejects input; this exists for the CLI so a typo
// is caught before it silently turns into a stock value.
func (t Text) Validate() error {
	checks := []struct {
		name  string
		value string
	}{
		{"capitalInitial", t.CapitalInitial},
		{"maxTradesPerDay", t.MaxTradesPerDay},
		{"stopDailyPct", t.StopDailyPct},
		{"targetDailyPct", t.TargetDailyPct},
		{"riskPerTradePct", t.RiskPerTradePct},
		{"winPointValue", t.WinPointValue},
		{"wdoPointValue", t.WdoPointValue},
		{"winCostPerOp", t.WinCostPerOp},
		{"wdoCostPerOp", t.WdoCostPerOp},
	}
	for _, c := range checks {
		if math.IsNaN(numparse.Parse(c.value)) {
			return fmt.Errorf("%s: %q is not a number", c.name, c.value)
		}
	}

	if numparse.Parse(t.StopDailyPct) >= 0 {
		return fmt.Errorf("stopDailyPct must be negative, got %q", t.StopDailyPct)
	}
	if numparse.Parse(t.TargetDailyPct) <= 0 {
		return fmt.Errorf("targetDailyPct must be positive, got %q", t.TargetDailyPct)
	}
	if numparse.Parse(t.MaxTradesPerDay) < 1 {
		return fmt.Errorf("maxTradesPerDay must be at least 1, got %q", t.MaxTradesPerDay)
	}
	return nil
}
