package upstream

import (
	"context"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/metrics"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/utils"
)

// Downloader saves banner art. Downloads are best effort: an existing file is
// never overwritten and failures are only logged.
type Downloader struct {
	client *Client
}

// NewDownloader creates a Downloader sharing the client's transport.
func NewDownloader(client *Client) *Downloader {
	return &Downloader{client: client}
}

// Download writes url to path unless path exists. It reports whether a new
// file was written.
func (d *Downloader) Download(ctx context.Context, url, path string) bool {
	log := logger.FromContext(ctx)
	if url == "" {
		return false
	}

	exists, err := utils.FileExists(path)
	if err != nil {
		log.Debug(LogMsgImageFailed, "url", url, "path", path, "error", err)
		return false
	}
	if exists {
		log.Debug(LogMsgImageSkipped, "path", path)
		return false
	}

	body, err := d.client.get(ctx, url, "", MaxImageBytes)
	if err != nil {
		log.Debug(LogMsgImageFailed, "url", url, "error", err)
		return false
	}
	if err := utils.WriteFileAtomic(path, body, utils.FilePermission); err != nil {
		log.Debug(LogMsgImageFailed, "url", url, "path", path, "error", err)
		return false
	}

	metrics.ImagesDownloaded.Inc()
	log.Debug(LogMsgImageSaved, "path", path)
	return true
}
