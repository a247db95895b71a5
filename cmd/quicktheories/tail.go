package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lischenko/quicktheories/logging"
)

// corpusTailCmd follows the failure store, printing counterexamples as
// test runs record them. Stop with Ctrl-C.
func corpusTailCmd() {
	path := corpusPath()
	store := openCorpus()
	defer store.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: starting watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// Watch the directory: sqlite updates journal and wal siblings
	// alongside the database file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintf(os.Stderr, "error: watching %s: %v\n", dir, err)
		os.Exit(1)
	}

	logger := logging.DevLogger
	base := filepath.Base(path)
	since := time.Now().UTC()

	fmt.Printf("tailing %s (Ctrl-C to stop)\n", path)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(ev.Name), base) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			failures, err := store.ListSince(since)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			for _, f := range failures {
				logger.Info("failure recorded",
					"property", f.Property,
					"trial", f.Trial,
					"seed", f.Seed,
					"value", f.Value,
					"recorded_at", f.RecordedAt,
				)
				if f.RecordedAt.After(since) {
					since = f.RecordedAt
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "error: watcher: %v\n", err)
		}
	}
}
