// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-rate-pair application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Converter holds the conversion pair settings linking the two amount
	// fields: the fixed rate, display precision, and currency labels.
	Converter Converter `envPrefix:"CONVERTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI footer.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Converter holds the settings of the conversion pair.
//
// The rate is the single source of the forward/inverse relationship:
// quote = base * Rate, base = quote / Rate. A zero rate makes the inverse
// conversion undefined and is rejected at startup, never per keystroke.
type Converter struct {
	// Rate is the fixed conversion rate from the base to the quote currency.
	// Must be non-zero and finite.
	// Env: CONVERTER_RATE
	Rate float64 `env:"RATE"`

	// Precision is the number of decimal places used when formatting a
	// converted amount. Valid range is 0..8.
	// Env: CONVERTER_PRECISION
	Precision int `env:"PRECISION"`

	// BaseCurrency is the display label of the base field (e.g. "EUR").
	// Env: CONVERTER_BASE_CURRENCY
	BaseCurrency string `env:"BASE_CURRENCY"`

	// QuoteCurrency is the display label of the quote field (e.g. "USD").
	// Env: CONVERTER_QUOTE_CURRENCY
	QuoteCurrency string `env:"QUOTE_CURRENCY"`

	// InitialAmount is the raw text seeded into the base field before any
	// user interaction. May be empty, in which case nothing is seeded.
	// Env: CONVERTER_INITIAL_AMOUNT
	InitialAmount string `env:"INITIAL_AMOUNT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
