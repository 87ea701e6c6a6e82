package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/concurrency"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/utils"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/validation"
)

// DetailFetcher fetches a banner detail payload on a cache miss.
type DetailFetcher func(ctx context.Context) ([]byte, error)

// Store persists the per-game ledger, detail cache and formatted collection.
// Each document is read, modified in memory and written back whole under its
// own named lock.
type Store struct {
	root      string
	locks     *concurrency.LockManager
	validator validation.SchemaValidator
}

// New creates a Store rooted at dir. A nil validator skips schema checks.
func New(dir string, locks *concurrency.LockManager, validator validation.SchemaValidator) *Store {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Store{root: dir, locks: locks, validator: validator}
}

func (s *Store) LedgerPath(game domain.Game) string {
	return filepath.Join(s.root, BannersDir, fmt.Sprintf(LedgerFilePattern, game))
}

func (s *Store) FormattedPath(game domain.Game) string {
	return filepath.Join(s.root, BannersDir, fmt.Sprintf(FormattedFilePattern, game))
}

func (s *Store) DetailPath(game domain.Game, bannerID string) string {
	return filepath.Join(s.root, BannersDir, string(game), fmt.Sprintf(DetailFilePattern, bannerID))
}

// LoadLedger reads the ledger. A missing file is an empty ledger.
func (s *Store) LoadLedger(ctx context.Context, game domain.Game) (domain.Ledger, error) {
	var ledger domain.Ledger
	err := s.locks.WithLock(concurrency.Key(LockKindLedger, string(game)), func() error {
		var err error
		ledger, err = s.readLedger(game)
		return err
	})
	return ledger, err
}

// DiffLedger returns the stubs not yet recorded without modifying the ledger.
func (s *Store) DiffLedger(ctx context.Context, game domain.Game, stubs []domain.RawBannerStub) ([]domain.RawBannerStub, error) {
	ledger, err := s.LoadLedger(ctx, game)
	if err != nil {
		return nil, err
	}
	return ledger.Diff(stubs), nil
}

// UpdateLedger appends unseen stubs and persists the ledger only when there
// are any. It returns the appended stubs.
func (s *Store) UpdateLedger(ctx context.Context, game domain.Game, stubs []domain.RawBannerStub) ([]domain.RawBannerStub, error) {
	var fresh []domain.RawBannerStub
	err := s.locks.WithLock(concurrency.Key(LockKindLedger, string(game)), func() error {
		ledger, err := s.readLedger(game)
		if err != nil {
			return err
		}
		fresh = ledger.Diff(stubs)
		if len(fresh) == 0 {
			return nil
		}
		ledger.Banners = append(ledger.Banners, fresh...)
		return utils.SaveJSON(s.LedgerPath(game), ledger)
	})
	if err != nil {
		return nil, err
	}
	if len(fresh) > 0 {
		logger.FromContext(ctx).Info(LogMsgLedgerUpdated, "new", len(fresh), "path", s.LedgerPath(game))
	}
	return fresh, nil
}

func (s *Store) readLedger(game domain.Game) (domain.Ledger, error) {
	path := s.LedgerPath(game)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Ledger{Banners: []domain.RawBannerStub{}}, nil
	}
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("failed to read ledger %s: %w", path, err)
	}
	if err := s.validate(data, validation.SchemaLedger); err != nil {
		return domain.Ledger{}, fmt.Errorf("%w: %s: %w", domain.ErrCorruptState, path, err)
	}

	var ledger domain.Ledger
	if err := utils.DecodeJSON(data, &ledger); err != nil {
		return domain.Ledger{}, fmt.Errorf("%w: %s: %w", domain.ErrCorruptState, path, err)
	}
	if ledger.Banners == nil {
		ledger.Banners = []domain.RawBannerStub{}
	}
	return ledger, nil
}

// EnsureDetail returns the cached detail for a banner, fetching and saving it
// on first sight only. Details are immutable upstream. fetched reports whether
// a network fetch happened.
func (s *Store) EnsureDetail(ctx context.Context, game domain.Game, bannerID string, fetch DetailFetcher) (detail []byte, fetched bool, err error) {
	if bannerID == "" || strings.ContainsAny(bannerID, `/\`) || bannerID == "." || bannerID == ".." {
		return nil, false, fmt.Errorf("%w: "+ErrMsgInvalidBannerID, domain.ErrUpstreamSchema, bannerID)
	}
	path := s.DetailPath(game, bannerID)
	log := logger.FromContext(ctx)

	err = s.locks.WithLock(concurrency.Key(LockKindDetail, string(game), bannerID), func() error {
		cached, readErr := os.ReadFile(path)
		if readErr == nil {
			log.Debug(LogMsgDetailCached, "banner_id", bannerID)
			detail = cached
			return nil
		}
		if !errors.Is(readErr, os.ErrNotExist) {
			return fmt.Errorf("failed to read detail %s: %w", path, readErr)
		}

		payload, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		indented, indentErr := utils.IndentJSON(payload)
		if indentErr != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamSchema, ErrMsgDetailNotJSON, indentErr)
		}
		if writeErr := utils.WriteFileAtomic(path, indented, utils.FilePermission); writeErr != nil {
			return fmt.Errorf("failed to write detail %s: %w", path, writeErr)
		}
		log.Debug(LogMsgDetailSaved, "banner_id", bannerID, "path", path)
		detail = indented
		fetched = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return detail, fetched, nil
}

// MergeFormatted merges candidates into the persisted collection in order and
// writes it back when anything changed.
func (s *Store) MergeFormatted(ctx context.Context, game domain.Game, rule domain.IdentityRule, entries []MergeEntry) (MergeResult, error) {
	var res MergeResult
	log := logger.FromContext(ctx)
	path := s.FormattedPath(game)

	err := s.locks.WithLock(concurrency.Key(LockKindFormatted, string(game)), func() error {
		coll, exists, stripped, err := s.readCollection(game)
		if err != nil {
			return err
		}
		if stripped > 0 {
			log.Warn(LogMsgPlaceholdersRemoved, "count", stripped, "path", path)
		}

		res = Merge(coll, rule, entries)
		if !res.Changed() && stripped == 0 && exists {
			log.Debug(LogMsgFormattedUnchanged, "path", path)
			return nil
		}
		if err := utils.SaveJSON(path, coll); err != nil {
			return err
		}
		log.Info(LogMsgFormattedSaved, "path", path)
		return nil
	})
	return res, err
}

func (s *Store) readCollection(game domain.Game) (domain.Collection, bool, int, error) {
	path := s.FormattedPath(game)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Collection{}, false, 0, nil
	}
	if err != nil {
		return nil, false, 0, fmt.Errorf("failed to read collection %s: %w", path, err)
	}
	if err := s.validate(data, validation.SchemaCollection); err != nil {
		return nil, true, 0, fmt.Errorf("%w: %s: %w", domain.ErrCorruptState, path, err)
	}

	coll := domain.Collection{}
	if err := utils.DecodeJSON(data, &coll); err != nil {
		return nil, true, 0, fmt.Errorf("%w: %s: %w", domain.ErrCorruptState, path, err)
	}
	if coll == nil {
		coll = domain.Collection{}
	}
	return coll, true, stripPlaceholders(coll), nil
}

func (s *Store) validate(data []byte, schema string) error {
	if s.validator == nil {
		return nil
	}
	return s.validator.ValidateBytes(data, schema)
}
