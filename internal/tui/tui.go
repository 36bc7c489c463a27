package tui

import (
	"github.com/MKhiriev/go-rate-pair/internal/config"
	"github.com/MKhiriev/go-rate-pair/internal/logger"
	"github.com/MKhiriev/go-rate-pair/internal/service"
	"github.com/MKhiriev/go-rate-pair/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, cfg: cfg, buildInfo: buildInfo}, nil
}

// Run drives the converter screen until the user quits.
func (t *TUI) Run() error {
	model := newConverterModel(t.services, t.cfg.Converter, t.cfg.App.Version, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
