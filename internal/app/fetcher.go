package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kawaii-hq/kawaii-go/internal/config"
	"github.com/kawaii-hq/kawaii-go/internal/domain"
	"github.com/kawaii-hq/kawaii-go/internal/logger"
	"github.com/kawaii-hq/kawaii-go/internal/storage"
	"github.com/kawaii-hq/kawaii-go/pkg/kawaii"
	"github.com/kawaii-hq/kawaii-go/pkg/publishers"
)

// GifClient is the part of kawaii.Client the runtime depends on.
type GifClient interface {
	RandomGif(ctx context.Context, category kawaii.Category) (string, error)
}

// Fetcher drives the GIF client: it prints each fetched URL, records it in the
// history store and hands it to the configured publishers.
type Fetcher struct {
	client   GifClient
	store    storage.Store
	fanout   *publishers.Fanout
	interval time.Duration
	out      io.Writer
	log      logger.Logger
	now      func() time.Time
}

// NewFetcher builds a fetcher runtime from cfg. Output receives one URL per line.
func NewFetcher(ctx context.Context, cfg *config.Config, log logger.Logger, out io.Writer) (*Fetcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := kawaii.New(
		kawaii.WithToken(cfg.Token),
		kawaii.WithBaseURL(cfg.BaseURL),
		kawaii.WithTimeout(cfg.HTTPTimeout),
		kawaii.WithUserAgent(cfg.UserAgent),
		kawaii.WithLogger(log),
	)
	log.InfoObj("kawaii client configured", "client_config", map[string]any{
		"base_url":        client.BaseURL(),
		"anonymous":       client.Token() == kawaii.AnonymousToken,
		"timeout_seconds": int(cfg.HTTPTimeout.Seconds()),
	})

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		HistoryTTL:      cfg.HistoryTTL,
		CleanupInterval: cfg.HistoryCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"history_ttl_seconds":      int(cfg.HistoryTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.HistoryCleanupInterval.Seconds()),
	})

	return newFetcher(client, store, fanout, cfg.FetchInterval, out, log), nil
}

func newFetcher(client GifClient, store storage.Store, fanout *publishers.Fanout, interval time.Duration, out io.Writer, log logger.Logger) *Fetcher {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Fetcher{
		client:   client,
		store:    store,
		fanout:   fanout,
		interval: interval,
		out:      out,
		log:      log,
		now:      time.Now,
	}
}

func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*publishers.Fanout, error) {
	if cfg.PublishersFile == "" {
		return publishers.NewFanout(nil), nil
	}

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := publisherReg.Enabled()
	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]any, 0, len(enabled))
	for _, pubCfg := range enabled {
		summaries = append(summaries, map[string]any{
			"id":         pubCfg.ID,
			"type":       pubCfg.Type,
			"categories": pubCfg.Categories,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})
	return publishers.NewFanout(pubClients), nil
}

// Run fetches every category once, or on each tick when an interval is
// configured, until ctx is cancelled. A rejected token ends the loop since no
// later attempt can succeed.
func (f *Fetcher) Run(ctx context.Context, categories []kawaii.Category) error {
	if f == nil || f.client == nil {
		return fmt.Errorf("fetcher is not initialized")
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories requested")
	}

	_, err := f.FetchOnce(ctx, categories)
	if f.interval <= 0 {
		return err
	}
	if errors.Is(err, kawaii.ErrAuthentication) {
		return err
	}
	if err != nil {
		f.log.ErrorObj("initial fetch failed", "error", err.Error())
	}

	f.log.InfoObj("fetch loop starting", "fetch_state", map[string]any{
		"categories_count": len(categories),
		"publishers_count": f.fanout.Size(),
		"interval":         f.interval.String(),
	})

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.log.InfoObj("fetch loop exiting", "reason", ctx.Err().Error())
			return nil
		case <-ticker.C:
			if _, err := f.FetchOnce(ctx, categories); err != nil {
				if errors.Is(err, kawaii.ErrAuthentication) {
					return err
				}
				f.log.ErrorObj("scheduled fetch failed", "error", err.Error())
			}
		}
	}
}

// FetchOnce fetches one GIF per category in order. Failures are collected and
// joined; successful fetches are still emitted.
func (f *Fetcher) FetchOnce(ctx context.Context, categories []kawaii.Category) ([]domain.Gif, error) {
	gifs := make([]domain.Gif, 0, len(categories))
	var errs []error

	for _, category := range categories {
		gif, err := f.fetch(ctx, category)
		if err != nil {
			errs = append(errs, fmt.Errorf("fetch %s: %w", category, err))
			f.log.ErrorObj("gif fetch failed", "fetch_error", map[string]any{
				"category": category.String(),
				"kind":     errorKind(err),
				"error":    err.Error(),
			})
			if errors.Is(err, kawaii.ErrAuthentication) {
				break
			}
			continue
		}
		gifs = append(gifs, gif)
	}
	return gifs, errors.Join(errs...)
}

func (f *Fetcher) fetch(ctx context.Context, category kawaii.Category) (domain.Gif, error) {
	url, err := f.client.RandomGif(ctx, category)
	if err != nil {
		return domain.Gif{}, err
	}
	gif := domain.Gif{Category: category.String(), URL: url, FetchedAt: f.now().UTC()}

	if _, err := fmt.Fprintln(f.out, url); err != nil {
		return domain.Gif{}, fmt.Errorf("write output: %w", err)
	}

	if f.store != nil {
		if err := f.store.Record(gif); err != nil {
			f.log.WarnObj("history record failed", "storage_error", map[string]any{
				"category": gif.Category,
				"error":    err.Error(),
			})
		}
	}

	delivered, err := f.fanout.Publish(ctx, publishers.NewEvent(gif))
	if err != nil {
		f.log.WarnObj("gif publish incomplete", "publish_error", map[string]any{
			"category":  gif.Category,
			"delivered": delivered,
			"error":     err.Error(),
		})
	}
	return gif, nil
}

// History returns up to limit recent fetches, newest first.
func (f *Fetcher) History(limit int) ([]domain.Gif, error) {
	if f == nil || f.store == nil {
		return nil, nil
	}
	return f.store.Recent(limit)
}

// Close releases the history store.
func (f *Fetcher) Close() error {
	if f == nil || f.store == nil {
		return nil
	}
	return f.store.Close()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, kawaii.ErrAuthentication):
		return "authentication"
	case errors.Is(err, kawaii.ErrTransport):
		return "transport"
	case errors.Is(err, kawaii.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, kawaii.ErrUnknownCategory):
		return "unknown_category"
	default:
		return "other"
	}
}
