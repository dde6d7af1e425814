// SPDX-License-Identifier: EPL-2.0

// Package config persists the conversion preferences as JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ik5/batzc/convert"
)

// Preferences are the user-adjustable pipeline parameters.
type Preferences struct {
	DivRatio        int     `json:"divratio"`
	HighPassKHz     float64 `json:"hpfilter_khz"`
	ThresholdFactor float64 `json:"threshold_factor"`
	Interpolation   bool    `json:"interpolation"`
	BrickwallHPF    bool    `json:"brickwall_hpf"`
}

// Defaults are the interactive application defaults.
func Defaults() Preferences {
	return Preferences{
		DivRatio:        16,
		HighPassKHz:     17.5,
		ThresholdFactor: 1.5,
		Interpolation:   true,
		BrickwallHPF:    true,
	}
}

// DefaultPath is ~/.myotisoft/zcant.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return filepath.Join(home, ".myotisoft", "zcant.json"), nil
}

// Load reads preferences from path. Keys missing from the file keep their
// default, and a missing file yields Defaults.
func Load(path string) (Preferences, error) {
	p := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("reading preferences: %w", err)
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path, creating its directory.
func (p Preferences) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// ConvertOptions maps p onto pipeline options.
func (p Preferences) ConvertOptions() convert.Options {
	return convert.Options{
		DivRatio:        p.DivRatio,
		HighPassKHz:     p.HighPassKHz,
		ThresholdFactor: p.ThresholdFactor,
		Interpolation:   p.Interpolation,
		BrickwallHPF:    p.BrickwallHPF,
	}
}
