package bootstrap

import (
	"fmt"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/concurrency"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/config"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/game"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/pipeline"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/store"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/timewindow"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/upstream"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/validation"
)

// BuildRunner wires one pipeline per configured game around shared
// collaborators: HTTP client, catalog cache, store and lock manager.
func BuildRunner(cfg *config.Config, bus event.Bus) (*pipeline.Runner, error) {
	games, err := cfg.Games()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedResolveGames, err)
	}

	locks := concurrency.NewLockManager()
	client := upstream.NewClient(cfg.Upstream.Timeout, cfg.Upstream.UserAgent)
	catalogs := catalog.NewLoader(client, cfg.Catalog.BaseURL, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	st := store.New(cfg.Storage.DataDir, locks, validation.NewSchemaValidator())
	times := timewindow.NewResolver()

	deps := pipeline.Deps{
		Upstream: client,
		Catalogs: catalogs,
		Store:    st,
		Bus:      bus,
	}
	if cfg.Storage.DownloadImages {
		deps.Images = upstream.NewDownloader(client)
	}
	pcfg := pipeline.Config{
		Concurrency: cfg.Upstream.Concurrency,
		AssetsDir:   cfg.Storage.AssetsDir,
	}

	pipelines := make([]*pipeline.Pipeline, 0, len(games))
	for _, g := range games {
		adapter, err := game.New(g, times, game.Endpoints{})
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedBuildAdapter, g, err)
		}
		pipelines = append(pipelines, pipeline.New(adapter, deps, pcfg))
	}
	return pipeline.NewRunner(locks, pipelines...), nil
}
