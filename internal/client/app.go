package client

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rate-pair/internal/config"
	"github.com/MKhiriev/go-rate-pair/internal/logger"
	"github.com/MKhiriev/go-rate-pair/internal/service"
	"github.com/MKhiriev/go-rate-pair/internal/tui"
	"github.com/MKhiriev/go-rate-pair/models"
)

var errNotInitialized = errors.New("клиент не инициализирован")

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      *config.ClientConfig
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errNotInitialized
	}

	return &App{services: services, tui: ui, cfg: cfg, log: log}, nil
}

// Run seeds both amount fields from the configured initial amount, runs the
// terminal UI until the user quits, and tears the synchronizer down.
func (a *App) Run() error {
	defer a.services.FieldSyncService.Close()

	a.seedFields()

	a.log.Info().
		Float64("rate", a.services.ConvertService.Rate()).
		Str("base", a.cfg.Converter.BaseCurrency).
		Str("quote", a.cfg.Converter.QuoteCurrency).
		Msg("client started")

	return a.tui.Run()
}

// seedFields writes the initial amount into the base field and its converted
// counterpart into the quote field. Seeding goes through SetInitialValue, so
// no active editor is required and no conversion cascade fires.
func (a *App) seedFields() {
	initial := a.cfg.Converter.InitialAmount
	a.services.FieldSyncService.SetInitialValue(models.FieldBase, initial)

	value, err := strconv.ParseFloat(strings.TrimSpace(initial), 64)
	if err != nil {
		a.log.Warn().Str("initial", initial).Msg("initial amount is not a number, quote field left empty")
		return
	}

	converted := a.services.ConvertService.Format(a.services.ConvertService.Forward(value))
	a.services.FieldSyncService.SetInitialValue(models.FieldQuote, converted)
}
