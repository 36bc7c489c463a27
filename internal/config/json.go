package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Converter struct {
		Rate          float64 `json:"rate"`
		Precision     int     `json:"precision"`
		BaseCurrency  string  `json:"base_currency"`
		QuoteCurrency string  `json:"quote_currency"`
		InitialAmount string  `json:"initial_amount"`
	} `json:"converter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Converter: Converter{
			Rate:          jsonCfg.Converter.Rate,
			Precision:     jsonCfg.Converter.Precision,
			BaseCurrency:  jsonCfg.Converter.BaseCurrency,
			QuoteCurrency: jsonCfg.Converter.QuoteCurrency,
			InitialAmount: jsonCfg.Converter.InitialAmount,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
