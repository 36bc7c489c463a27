package service

import (
	"fmt"

	"github.com/MKhiriev/go-rate-pair/internal/config"
	"github.com/MKhiriev/go-rate-pair/internal/logger"
	"github.com/MKhiriev/go-rate-pair/internal/validators"
)

type ClientServices struct {
	ConvertService   ConvertService
	FieldSyncService FieldSyncService
}

func NewClientServices(cfg config.ClientConverter, log *logger.Logger) (*ClientServices, error) {
	pair, err := NewConversionPair(cfg.Rate, cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("create conversion pair: %w", err)
	}

	return &ClientServices{
		ConvertService:   pair,
		FieldSyncService: NewFieldSyncService(pair, validators.NewAmountValidator(), log),
	}, nil
}
