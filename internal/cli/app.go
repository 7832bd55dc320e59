package cli

import (
	"context"
	"io"
	"time"

	"birthdays/internal/config"
	"birthdays/internal/domain"
	"birthdays/internal/logging"
	"birthdays/internal/render"
	"birthdays/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App runs the read, filter, sort and render pipeline once
type App struct {
	config   *config.Config
	service  services.BirthdayService
	renderer *render.Renderer
	errors   *ErrorHandler
}

// NewApp creates a new application instance writing to out
func NewApp(cfg *config.Config, out io.Writer) *App {
	palette := render.DefaultPalette()
	if cfg.Display.NoColor {
		palette = palette.SetColor(false)
	}

	return &App{
		config: cfg,
		service: services.NewBirthdayService(services.Window{
			Days:         cfg.Window.Days,
			UrgentWithin: cfg.Window.UrgentWithin,
			WrapYear:     cfg.Window.WrapYear,
		}),
		renderer: render.NewRenderer(out, palette),
		errors:   NewErrorHandler(),
	}
}

// Run reads every record, then prints the upcoming ones. Nothing is
// printed unless the whole file was read successfully.
func (a *App) Run(ctx context.Context) error {
	today := domain.DateOf(timeNow())

	src, err := config.CreateSource(a.config, timeNow)
	if err != nil {
		return a.errors.Handle("open birthdays", err)
	}
	defer src.Close()

	records, err := src.ReadRecords(ctx)
	if err != nil {
		return a.errors.Handle("read birthdays", err)
	}

	upcoming := a.service.Upcoming(records, today)
	logging.Debugf("printing %d birthdays\n", len(upcoming))

	if err := a.renderer.Render(upcoming); err != nil {
		return a.errors.Handle("print birthdays", err)
	}
	return nil
}
