// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "math"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The conversion rate is the only fatal precondition of the converter: a
// zero or non-finite rate makes the inverse conversion undefined, so it is
// rejected here rather than surfaced per keystroke.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Converter.Rate == 0 || math.IsNaN(cfg.Converter.Rate) || math.IsInf(cfg.Converter.Rate, 0) {
		return ErrInvalidConverterRate
	}

	if cfg.Converter.Precision < 0 || cfg.Converter.Precision > 8 {
		return ErrInvalidConverterPrecision
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Converter.Rate == 0 || math.IsNaN(cfg.Converter.Rate) || math.IsInf(cfg.Converter.Rate, 0) {
		return ErrInvalidConverterRate
	}

	if cfg.Converter.Precision < 0 || cfg.Converter.Precision > 8 {
		return ErrInvalidConverterPrecision
	}

	if cfg.Converter.BaseCurrency == "" || cfg.Converter.QuoteCurrency == "" {
		return ErrInvalidConverterCurrencies
	}

	return nil
}
