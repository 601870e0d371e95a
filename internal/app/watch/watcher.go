// Package watch re-runs a conversion whenever the source library file
// changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	zlog "github.com/rs/zerolog/log"

	"github.com/nkreft/mixport/internal/app/conversion"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher converts once, then re-converts after every change to the
// input file, debounced so a burst of writes triggers one run.
type Watcher struct {
	orchestrator *conversion.Orchestrator
	req          conversion.Request
	debounce     time.Duration
}

// New creates a watcher. A non-positive debounce falls back to 500ms.
func New(o *conversion.Orchestrator, req conversion.Request, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{orchestrator: o, req: req, debounce: debounce}
}

// Run blocks until ctx is done. A failed conversion is logged and the
// watch continues; the next change gets another attempt.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.orchestrator.Convert(w.req); err != nil {
		zlog.Error().Err(err).Msg("initial conversion failed")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer fw.Close()

	// Watch the directory rather than the file: DJ software replaces the
	// library file on save, which drops a watch set on the file itself.
	dir := filepath.Dir(w.req.InputPath)
	if err := fw.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}
	zlog.Info().Str("file", w.req.InputPath).Msg("watching source library for changes")

	target := filepath.Clean(w.req.InputPath)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			zlog.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("source library changed")
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			zlog.Warn().Err(err).Msg("file watcher error")

		case <-timer.C:
			pending = false
			if err := w.orchestrator.Convert(w.req); err != nil {
				zlog.Error().Err(err).Msg("conversion failed")
			}
		}
	}
}
