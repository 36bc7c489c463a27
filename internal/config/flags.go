package config

import (
	"errors"
	"flag"
	"math"
	"strconv"
)

// Rate holds a parsed conversion rate value.
// It implements the flag.Value interface so malformed or degenerate rates
// are rejected at flag-parsing time.
type Rate struct {
	Value float64
	set   bool
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-rate conversion rate from base to quote currency
//	-precision number of decimal places for converted amounts
//	-base base currency label (e.g. "EUR")
//	-quote quote currency label (e.g. "USD")
//	-initial initial amount seeded into the base field
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var rate Rate
	var precision int
	var baseCurrency string
	var quoteCurrency string
	var initialAmount string
	var jsonConfigPath string

	flag.Var(&rate, "rate", "Conversion rate, base to quote")
	flag.IntVar(&precision, "precision", 0, "Decimal places for converted amounts")
	flag.StringVar(&baseCurrency, "base", "", "Base currency label")
	flag.StringVar(&quoteCurrency, "quote", "", "Quote currency label")
	flag.StringVar(&initialAmount, "initial", "", "Initial amount for the base field")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Converter: Converter{
			Rate:          rate.Value,
			Precision:     precision,
			BaseCurrency:  baseCurrency,
			QuoteCurrency: quoteCurrency,
			InitialAmount: initialAmount,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the decimal representation of the rate, or an empty string
// when the flag was never set.
func (r *Rate) String() string {
	if !r.set {
		return ""
	}

	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Set parses the input string as a decimal rate. It rejects values that are
// not parseable, not finite, or zero, since a zero rate makes the inverse
// conversion undefined.
func (r *Rate) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("rate must be a finite number")
	}

	if v == 0 {
		return errors.New("rate must be non-zero")
	}

	r.Value = v
	r.set = true
	return nil
}
