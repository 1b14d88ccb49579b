// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch.go - Input-spreadsheet watching with debounced rebuilds.

package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Config describes one watch session.
type Config struct {
	// Dir is the data directory holding the input spreadsheets.
	Dir string

	// Inputs maps a command name to the input files (relative to Dir)
	// whose changes should re-run it.
	Inputs map[string][]string

	// Debounce is how long a file must stay quiet before its commands
	// re-run. Editors save in bursts; one rebuild per burst is enough.
	Debounce time.Duration

	// MinInterval rate-limits rebuilds of the same command. Zero means
	// one per two seconds.
	MinInterval time.Duration
}

// Rebuild re-runs one command. Returned errors are reported through
// Watcher.Errors but do not stop the watch.
type Rebuild func(command string) error

// Watcher re-runs commands when their input spreadsheets change.
type Watcher struct {
	cfg     Config
	rebuild Rebuild

	fs      *fsnotify.Watcher
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[string]time.Time // command -> last triggering change

	// Rebuilds receives the name of each command after it re-runs.
	Rebuilds chan string
	// Errors receives rebuild and watch errors.
	Errors chan error

	// byFile maps a cleaned input filename to the commands it feeds.
	byFile map[string][]string
}

// New creates a watcher over cfg.Dir. Run starts it.
func New(cfg Config, rebuild Rebuild) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 2 * time.Second
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		rebuild:  rebuild,
		fs:       fs,
		limiter:  rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		pending:  make(map[string]time.Time),
		Rebuilds: make(chan string, 8),
		Errors:   make(chan error, 8),
		byFile:   indexInputs(cfg.Inputs),
	}

	if err := fs.Add(cfg.Dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", cfg.Dir, err)
	}
	return w, nil
}

// indexInputs inverts the command->files map to file->commands.
func indexInputs(inputs map[string][]string) map[string][]string {
	byFile := make(map[string][]string)
	for command, files := range inputs {
		for _, f := range files {
			if f == "" {
				continue
			}
			name := filepath.Base(f)
			byFile[name] = append(byFile[name], command)
		}
	}
	for _, commands := range byFile {
		sort.Strings(commands)
	}
	return byFile
}

// commandsFor returns the commands fed by the changed path, nil when the
// file is not a watched input.
func (w *Watcher) commandsFor(path string) []string {
	return w.byFile[filepath.Base(path)]
}

// Run watches until ctx is canceled. Rebuilds run on this goroutine,
// serially: the spreadsheets share output files, so concurrent rebuilds
// would race on them.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mark(event.Name, time.Now())

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.report(err)

		case <-ticker.C:
			for _, command := range w.due(time.Now()) {
				if err := w.limiter.Wait(ctx); err != nil {
					return err
				}
				if err := w.rebuild(command); err != nil {
					w.report(fmt.Errorf("%s: %w", command, err))
					continue
				}
				select {
				case w.Rebuilds <- command:
				default:
				}
			}
		}
	}
}

// mark queues the commands fed by a changed file.
func (w *Watcher) mark(path string, now time.Time) {
	commands := w.commandsFor(path)
	if len(commands) == 0 {
		return
	}
	w.mu.Lock()
	for _, command := range commands {
		w.pending[command] = now
	}
	w.mu.Unlock()
}

// due returns the commands whose inputs have been quiet for the debounce
// window, removing them from the pending set.
func (w *Watcher) due(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for command, changed := range w.pending {
		if now.Sub(changed) >= w.cfg.Debounce {
			ready = append(ready, command)
			delete(w.pending, command)
		}
	}
	sort.Strings(ready)
	return ready
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
