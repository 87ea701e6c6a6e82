package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/game"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/store"
)

// Upstream fetches banner lists and detail documents.
type Upstream interface {
	FetchList(ctx context.Context, url string) ([]domain.RawBannerStub, error)
	FetchJSON(ctx context.Context, url string) ([]byte, error)
}

// CatalogLoader provides the item rosters for a game. Invalidate makes the
// next Load fetch fresh rosters.
type CatalogLoader interface {
	Load(ctx context.Context, game domain.Game) (catalog.Rosters, error)
	Invalidate(ctx context.Context, game domain.Game)
}

// ImageDownloader saves banner art on a best-effort basis.
type ImageDownloader interface {
	Download(ctx context.Context, url, path string) bool
}

// Deps are the collaborators of a Pipeline. Images and Bus are optional.
type Deps struct {
	Upstream Upstream
	Catalogs CatalogLoader
	Store    *store.Store
	Images   ImageDownloader
	Bus      event.Bus
}

// Config tunes a Pipeline.
type Config struct {
	Concurrency int
	AssetsDir   string
}

// Pipeline fetches, normalizes and merges new banners for one game.
type Pipeline struct {
	adapter game.Adapter
	deps    Deps
	cfg     Config
}

// New creates the pipeline for the adapter's game.
func New(adapter game.Adapter, deps Deps, cfg Config) *Pipeline {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Pipeline{adapter: adapter, deps: deps, cfg: cfg}
}

// Game returns the game this pipeline serves.
func (p *Pipeline) Game() domain.Game {
	return p.adapter.Game()
}

type taskResult struct {
	index     int
	bannerID  string
	candidate game.Candidate
	detail    []byte
	fetched   bool
	imaged    bool
	err       error
}

// Run performs one incremental update. Failures of individual banners are
// collected in the result; only list, ledger, catalog and merge failures
// abort the run.
func (p *Pipeline) Run(ctx context.Context) (res RunResult) {
	g := p.adapter.Game()
	runID := logger.GetRunID(ctx)
	if runID == "" {
		runID = logger.GenerateRunID()
		ctx = logger.WithRunID(ctx, runID)
	}
	ctx = logger.WithGame(ctx, string(g))
	log := logger.FromContext(ctx)

	res = RunResult{Game: g, RunID: runID, StartedAt: time.Now()}
	defer func() {
		if res.Status == "" {
			// unwinding from a panic; the runner reports it
			return
		}
		p.publish(ctx, event.NewRunCompletedEvent(runID, res.completedPayload()))
		if res.Failed() {
			log.Error(LogMsgRunFailed, "error", res.Err, "duration", res.Duration)
			return
		}
		log.Info(LogMsgRunCompleted,
			"status", res.Status,
			"new", res.NewStubs,
			"added", res.AddedCount,
			"merged", res.MergedCount,
			"duplicates", res.Duplicates,
			"failed", len(res.Failures),
			"duration", res.Duration)
	}()
	log.Debug(LogMsgRunStarted, "list_url", p.adapter.ListURL())

	stubs, err := p.deps.Upstream.FetchList(ctx, p.adapter.ListURL())
	if err != nil {
		res.finish(fmt.Errorf(ErrMsgListFetch, err))
		return res
	}

	// Read-only diff first so a run with nothing new costs a single request.
	fresh, err := p.deps.Store.DiffLedger(ctx, g, stubs)
	if err != nil {
		res.finish(fmt.Errorf(ErrMsgLedger, err))
		return res
	}
	if len(fresh) == 0 {
		log.Info(LogMsgNoNewBanners)
		res.Status = event.RunStatusNoop
		res.finish(nil)
		return res
	}

	// Rosters are loaded before the ledger is touched: a catalog outage must
	// leave the stubs unseen for the next run.
	rosters, err := p.deps.Catalogs.Load(ctx, g)
	if err != nil {
		res.finish(fmt.Errorf(ErrMsgCatalog, err))
		return res
	}

	fresh, err = p.deps.Store.UpdateLedger(ctx, g, stubs)
	if err != nil {
		res.finish(fmt.Errorf(ErrMsgLedger, err))
		return res
	}
	res.NewStubs = len(fresh)
	if len(fresh) == 0 {
		// Another writer recorded them between the diff and the update.
		log.Info(LogMsgNoNewBanners)
		res.Status = event.RunStatusNoop
		res.finish(nil)
		return res
	}
	log.Info(LogMsgFoundNewBanners, "count", len(fresh))
	p.publish(ctx, event.NewLedgerUpdatedEvent(runID, g, len(fresh)))

	results := p.fanOut(ctx, fresh, rosters)
	results = p.resolveUnknown(ctx, &res, fresh, results)

	entries := p.collect(ctx, &res, results)

	merged, err := p.deps.Store.MergeFormatted(ctx, g, p.adapter.IdentityRule(), entries)
	if err != nil {
		res.finish(fmt.Errorf(ErrMsgMerge, err))
		return res
	}
	res.Added = merged.Added
	res.Merged = merged.Merged
	res.Duplicates = merged.Duplicates

	p.announce(ctx, runID, results, merged)
	if len(merged.Added) > 0 {
		log.Info(LogMsgBannersAdded, "count", len(merged.Added))
	}
	if len(merged.Merged) > 0 {
		log.Info(LogMsgBannersMerged, "count", len(merged.Merged))
	}

	res.finish(nil)
	return res
}

// fanOut runs one bounded task per stub. Tasks never fail the group; their
// errors travel on the result channel. The returned slice is in stub order.
func (p *Pipeline) fanOut(ctx context.Context, stubs []domain.RawBannerStub, rosters catalog.Rosters) []taskResult {
	ch := make(chan taskResult, len(stubs))
	var group errgroup.Group
	group.SetLimit(p.cfg.Concurrency)

	for i, stub := range stubs {
		group.Go(func() error {
			ch <- p.process(ctx, i, stub, rosters)
			return nil
		})
	}
	go func() {
		_ = group.Wait()
		close(ch)
	}()

	results := make([]taskResult, 0, len(stubs))
	for r := range ch {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b taskResult) int { return a.index - b.index })
	return results
}

func (p *Pipeline) process(ctx context.Context, index int, stub domain.RawBannerStub, rosters catalog.Rosters) (out taskResult) {
	out.index = index
	out.bannerID = stub.ID()
	defer func() {
		if r := recover(); r != nil {
			out.err = fmt.Errorf(ErrMsgPanic, r)
		}
	}()

	g := p.adapter.Game()
	id := out.bannerID
	detail, fetched, err := p.deps.Store.EnsureDetail(ctx, g, id, func(ctx context.Context) ([]byte, error) {
		return p.deps.Upstream.FetchJSON(ctx, p.adapter.DetailURL(id))
	})
	if err != nil {
		out.err = err
		return out
	}
	out.fetched = fetched
	out.detail = detail

	candidate, err := game.Normalize(p.adapter, stub, detail, rosters)
	if err != nil {
		out.err = err
		return out
	}
	out.candidate = candidate

	if p.deps.Images != nil && !candidate.Classification.Skip && candidate.ImageURL != "" && candidate.Record.Name.Valid {
		path := p.imagePath(candidate.Classification.Bucket, candidate.Record.Name.String)
		out.imaged = p.deps.Images.Download(ctx, candidate.ImageURL, path)
	}
	return out
}

// resolveUnknown refetches the rosters once when any banner has drops the
// cached catalog could not resolve, and normalizes those banners again. The
// stubs are already in the ledger, so this run is the only chance to fill
// their rate-up lists.
func (p *Pipeline) resolveUnknown(ctx context.Context, res *RunResult, stubs []domain.RawBannerStub, results []taskResult) []taskResult {
	var pending []int
	for i, r := range results {
		if r.err == nil && len(r.candidate.Unknown) > 0 {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return results
	}

	log := logger.FromContext(ctx)
	g := p.adapter.Game()
	log.Info(LogMsgCatalogRefresh, "banners", len(pending))
	p.deps.Catalogs.Invalidate(ctx, g)
	rosters, err := p.deps.Catalogs.Load(ctx, g)
	if err != nil {
		log.Warn(LogMsgRefreshFailed, "error", err)
		return results
	}
	res.CatalogRefreshed = true

	for _, i := range pending {
		r := &results[i]
		candidate, err := game.Normalize(p.adapter, stubs[r.index], r.detail, rosters)
		if err != nil {
			continue
		}
		r.candidate = candidate
	}
	return results
}

// collect turns task results into merge entries in stub order and records
// diagnostics on res.
func (p *Pipeline) collect(ctx context.Context, res *RunResult, results []taskResult) []store.MergeEntry {
	log := logger.FromContext(ctx)
	g := p.adapter.Game()
	runID := res.RunID

	var entries []store.MergeEntry
	for _, r := range results {
		if r.fetched {
			res.Fetched++
		}
		if r.imaged {
			res.ImagesSaved++
		}
		c := r.candidate
		if r.err != nil {
			res.Failures = append(res.Failures, TaskFailure{BannerID: r.bannerID, Error: r.err.Error()})
			log.Error(LogMsgTaskFailed, "banner_id", r.bannerID, "error", r.err)
			continue
		}
		if c.Classification.Skip {
			res.Skipped++
			log.Debug(LogMsgBannerSkipped, "banner_id", c.StubID, "code", c.Classification.Code)
			continue
		}

		for _, u := range c.Unknown {
			res.UnknownDrops++
			log.Warn(LogMsgUnknownDrop, "banner_id", c.StubID, "item", u.ItemName, "item_type", u.ItemType)
			p.publish(ctx, event.NewDropUnknownEvent(runID, g, c.StubID, u.ItemName, u.ItemType, u.Raw))
		}
		if c.NameUnparsed {
			res.UnparsedNames++
			log.Warn(LogMsgNameUnparsed, "banner_id", c.StubID, "title", c.Title)
			p.publish(ctx, event.NewNameUnparsedEvent(runID, g, c.StubID, c.Title))
		}

		entries = append(entries, store.MergeEntry{
			Key:    c.Classification.Key,
			Source: c.StubID,
			Record: c.Record,
		})
	}
	return entries
}

func (p *Pipeline) announce(ctx context.Context, runID string, results []taskResult, merged store.MergeResult) {
	bySource := make(map[string]game.Candidate, len(results))
	for _, r := range results {
		if r.err == nil {
			bySource[r.candidate.StubID] = r.candidate
		}
	}
	payload := func(rec store.KeyedRecord) event.BannerPayloadV1 {
		c := bySource[rec.Source]
		return event.BannerPayloadV1{
			Game:     p.adapter.Game(),
			BannerID: rec.Source,
			Key:      rec.Key,
			Bucket:   c.Classification.Bucket,
			Record:   rec.Record,
			ImageURL: c.ImageURL,
		}
	}
	for _, rec := range merged.Added {
		p.publish(ctx, event.NewBannerAddedEvent(runID, payload(rec)))
	}
	for _, rec := range merged.Merged {
		p.publish(ctx, event.NewBannerMergedEvent(runID, payload(rec)))
	}
}

func (p *Pipeline) publish(ctx context.Context, evt event.Event) {
	if p.deps.Bus == nil {
		return
	}
	if err := p.deps.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

var unsafeFileChars = strings.NewReplacer(
	"/", "_", `\`, "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

func (p *Pipeline) imagePath(bucket domain.Bucket, name string) string {
	file := strings.TrimSpace(unsafeFileChars.Replace(name))
	return filepath.Join(p.cfg.AssetsDir, string(p.adapter.Game()), string(bucket), file+ImageExtension)
}
