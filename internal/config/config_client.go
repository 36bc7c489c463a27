package config

import (
	"fmt"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown in the TUI.
	Version string
}

// ClientConverter holds the conversion pair settings used by the client
// runtime.
type ClientConverter struct {
	// Rate is the fixed base-to-quote conversion rate.
	Rate float64
	// Precision is the number of decimal places for converted amounts.
	Precision int
	// BaseCurrency is the display label of the base field.
	BaseCurrency string
	// QuoteCurrency is the display label of the quote field.
	QuoteCurrency string
	// InitialAmount is the raw text seeded into the base field at startup.
	InitialAmount string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Converter contains the conversion pair settings.
	Converter ClientConverter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Converter: ClientConverter{
			Rate:          cfg.Converter.Rate,
			Precision:     cfg.Converter.Precision,
			BaseCurrency:  cfg.Converter.BaseCurrency,
			QuoteCurrency: cfg.Converter.QuoteCurrency,
			InitialAmount: cfg.Converter.InitialAmount,
		},
	}

	return clientCfg, clientCfg.validate()
}
