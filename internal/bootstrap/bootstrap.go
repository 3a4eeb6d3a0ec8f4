package bootstrap

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"

	authorinadapter "tonica/internal/modules/author/adapter/in"
	authoroutadapter "tonica/internal/modules/author/adapter/out"
	authorservice "tonica/internal/modules/author/service"
	authorusecase "tonica/internal/modules/author/usecase"
	cataloginadapter "tonica/internal/modules/catalog/adapter/in"
	catalogoutadapter "tonica/internal/modules/catalog/adapter/out"
	catalogservice "tonica/internal/modules/catalog/service"
	catalogusecase "tonica/internal/modules/catalog/usecase"
	packinadapter "tonica/internal/modules/pack/adapter/in"
	packoutadapter "tonica/internal/modules/pack/adapter/out"
	packservice "tonica/internal/modules/pack/service"
	packusecase "tonica/internal/modules/pack/usecase"
	progressinadapter "tonica/internal/modules/progress/adapter/in"
	progressoutadapter "tonica/internal/modules/progress/adapter/out"
	progressservice "tonica/internal/modules/progress/service"
	progressusecase "tonica/internal/modules/progress/usecase"
	"tonica/internal/platform/clock"
	"tonica/internal/platform/config"
	"tonica/internal/platform/id"
	uiapp "tonica/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	AuthorCLI   authorinadapter.CLIHandler
	PackCLI     packinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.ShortHex{}

	contentSource := catalogoutadapter.NewFileContentSource(cfg.ContentPath)
	itemProjector, err := catalogoutadapter.NewSQLiteItemProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new item projector: %w", err)
	}
	catalogSvc := catalogservice.NewCatalogService(contentSource, itemProjector)
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	progressSvc := progressservice.NewProgressService(clk, progressoutadapter.NewFileRecordStore(cfg.DataDir))
	progressUC := progressusecase.NewInteractor(progressSvc, catalogUC)

	authorSvc := authorservice.NewAuthorService(
		authoroutadapter.NewFileBufferStore(cfg.DataDir),
		authoroutadapter.NewCatalogLookupAdapter(catalogUC),
		ids,
	)
	authorUC := authorusecase.NewInteractor(authorSvc)

	packLogger := hclog.New(&hclog.LoggerOptions{Name: "tonica.pack", Level: hclog.Warn})
	packSvc := packservice.NewPackService(
		packoutadapter.NewYAMLManifestStore(cfg.PacksPath),
		packoutadapter.NewGRPCHost(packLogger),
		rate.NewLimiter(rate.Every(time.Second), 1),
	)
	packUC := packusecase.NewInteractor(packSvc, catalogUC)

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		AuthorCLI:   authorinadapter.NewCLIHandler(authorUC),
		PackCLI:     packinadapter.NewCLIHandler(packUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.ProgressCLI, app.PackCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
