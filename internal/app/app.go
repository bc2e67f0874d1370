package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AryanAbsalan/CityMeet/internal/config"
	"github.com/AryanAbsalan/CityMeet/internal/domain"
	"github.com/AryanAbsalan/CityMeet/internal/form"
	"github.com/AryanAbsalan/CityMeet/internal/repository"
	"github.com/AryanAbsalan/CityMeet/internal/service"
	"github.com/AryanAbsalan/CityMeet/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg   *config.Config
	log   logger.Logger
	model *tui.Model
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CityMeet",
		cfg.App.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	loc, err := time.LoadLocation(a.cfg.UI.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", a.cfg.UI.Timezone, err)
	}

	seed := domain.SeedEvents()
	eventRepo := repository.NewEventRepo(seed)
	transcoder := form.NewTranscoder(loc)
	eventService := service.NewEventService(eventRepo, transcoder, a.log)

	a.model = tui.New(eventService)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "state seeded",
		logger.Int("events", len(seed)),
		logger.String("timezone", a.cfg.UI.Timezone),
	)

	return nil
}

func (a *App) Run() error {
	program := tea.NewProgram(a.model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")
	return nil
}
