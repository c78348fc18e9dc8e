package coordination

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/zerr"
)

// DebounceWindow is how long after the last change the rebuild fires.
const DebounceWindow = 200 * time.Millisecond

// skipDirectories are directories never watched for source changes.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	".nx":          true,
	"node_modules": true,
	"dist":         true,
}

// Runner implements ports.CoordinationRunner with an fsnotify watcher over
// the dependency source roots.
type Runner struct {
	root   string
	logger ports.Logger

	// runMu serializes rebuild command executions.
	runMu sync.Mutex
}

// NewRunner creates a Runner for the workspace rooted at root.
func NewRunner(root string, logger ports.Logger) *Runner {
	return &Runner{
		root:   root,
		logger: logger,
	}
}

// Watch blocks until ctx is cancelled, executing command whenever a file
// under one of roots changes. Bursts are debounced; runs never overlap.
func (r *Runner) Watch(ctx context.Context, roots []string, command string) error {
	if len(roots) == 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range roots {
		if err := addRecursively(watcher, r.absolute(root)); err != nil {
			return err
		}
	}

	debouncer := NewDebouncer(DebounceWindow, func(paths []string) {
		r.rebuild(ctx, command, len(paths))
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				_ = addRecursively(watcher, event.Name)
			}
			debouncer.Add(event.Name)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("file watcher: " + watchErr.Error())
		}
	}
}

// rebuild runs command once, serialized against other rebuilds.
func (r *Runner) rebuild(ctx context.Context, command string, changed int) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}

	r.logger.Info(fmt.Sprintf("dependency sources changed (%d paths), rebuilding", changed))

	argv := strings.Fields(command)
	//nolint:gosec // command is constructed from resolved project names
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.root

	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		rebuildErr := zerr.With(errors.Join(domain.ErrCoordinationFailed, err), "command", command)
		r.logger.Error(zerr.With(rebuildErr, "output", strings.TrimSpace(string(out))))
		return
	}

	r.logger.Info("dependency rebuild complete")
}

func (r *Runner) absolute(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.root, path)
}

// addRecursively watches dir and every directory below it, skipping
// directories that never hold workspace sources. Unreadable entries are
// ignored so a transient permission problem does not kill the watch.
func addRecursively(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable entries
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirectories[d.Name()] {
			return fs.SkipDir
		}
		if addErr := watcher.Add(path); addErr != nil {
			return zerr.With(zerr.Wrap(addErr, "failed to watch directory"), "dir", path)
		}
		return nil
	})
}
