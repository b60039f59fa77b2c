package question

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"skillscan/internal/errors"
)

// OverlayWatcher watches a question overlay file and reapplies it to the
// bank when it changes.
type OverlayWatcher struct {
	mu sync.RWMutex

	overlayFile string
	bank        *Bank

	lastModTime time.Time
	haveModTime bool

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	logger *errors.Logger

	running bool
}

// NewOverlayWatcher creates a watcher that reloads overlayFile into bank.
// The initial overlay load happens on Start, not construction.
func NewOverlayWatcher(overlayFile string, bank *Bank, debounceDelay time.Duration, logger *errors.Logger) *OverlayWatcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	return &OverlayWatcher{
		overlayFile:   overlayFile,
		bank:          bank,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		reloadChan:    make(chan struct{}, 1), // Buffered to prevent blocking
		logger:        logger,
	}
}

// Start loads the overlay and begins watching it for changes.
func (ow *OverlayWatcher) Start() error {
	ow.mu.Lock()
	defer ow.mu.Unlock()

	if ow.running {
		return fmt.Errorf("overlay watcher is already running")
	}

	if err := ow.reload(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	ow.fsWatcher = watcher

	ow.updateModTime()

	if err := ow.addFileToWatcher(); err != nil {
		if closeErr := watcher.Close(); closeErr != nil && ow.logger != nil {
			ow.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
		return err
	}

	ow.running = true
	go ow.watchLoop()

	if ow.logger != nil {
		ow.logger.Info("Question overlay watcher started",
			"file", ow.overlayFile,
			"debounce_delay", ow.debounceDelay)
	}
	return nil
}

// Stop stops the overlay watcher.
func (ow *OverlayWatcher) Stop() error {
	ow.mu.Lock()
	defer ow.mu.Unlock()

	if !ow.running {
		return nil
	}

	close(ow.stopChan)

	if ow.debounceTimer != nil {
		ow.debounceTimer.Stop()
	}

	if ow.fsWatcher != nil {
		if err := ow.fsWatcher.Close(); err != nil {
			if ow.logger != nil {
				ow.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	ow.running = false

	if ow.logger != nil {
		ow.logger.Info("Question overlay watcher stopped")
	}
	return nil
}

// IsRunning returns whether the watcher is currently running.
func (ow *OverlayWatcher) IsRunning() bool {
	ow.mu.RLock()
	defer ow.mu.RUnlock()
	return ow.running
}

// addFileToWatcher watches the overlay file and its directory. The
// directory watch catches atomic writes (rename operations).
func (ow *OverlayWatcher) addFileToWatcher() error {
	if err := ow.fsWatcher.Add(ow.overlayFile); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to watch file %s: %w", ow.overlayFile, err)
		}
		if ow.logger != nil {
			ow.logger.Info("Overlay file missing, watching directory",
				"file", ow.overlayFile)
		}
	}

	dir := filepath.Dir(ow.overlayFile)
	if err := ow.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	return nil
}

func (ow *OverlayWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-ow.fsWatcher.Events:
			if !ok {
				return
			}
			if ow.shouldProcessEvent(event) {
				ow.scheduleReload()
			}

		case err, ok := <-ow.fsWatcher.Errors:
			if !ok {
				return
			}
			if ow.logger != nil {
				ow.logger.LogError(err, "File watcher error")
			}

		case <-ow.reloadChan:
			// Debounced reload trigger
			if ow.hasFileChanged() {
				if ow.logger != nil {
					ow.logger.Info("Question overlay changed, reloading")
				}
				if err := ow.reload(); err != nil && ow.logger != nil {
					// A broken overlay keeps the last good bank in place.
					ow.logger.LogError(err, "Failed to reload question overlay")
				}
			}

		case <-ow.stopChan:
			return
		}
	}
}

func (ow *OverlayWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != ow.overlayFile && filepath.Base(event.Name) != filepath.Base(ow.overlayFile) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

// scheduleReload schedules a debounced reload.
func (ow *OverlayWatcher) scheduleReload() {
	ow.mu.Lock()
	defer ow.mu.Unlock()

	if ow.debounceTimer != nil {
		ow.debounceTimer.Stop()
	}

	ow.debounceTimer = time.AfterFunc(ow.debounceDelay, func() {
		select {
		case ow.reloadChan <- struct{}{}:
		default:
			// Channel is full, reload already scheduled
		}
	})
}

// hasFileChanged checks if the overlay has been modified since last check.
func (ow *OverlayWatcher) hasFileChanged() bool {
	ow.mu.Lock()
	defer ow.mu.Unlock()

	stat, err := os.Stat(ow.overlayFile)
	if err != nil {
		if os.IsNotExist(err) && ow.haveModTime {
			ow.haveModTime = false
			return true
		}
		return false
	}

	if !ow.haveModTime || stat.ModTime().After(ow.lastModTime) {
		ow.lastModTime = stat.ModTime()
		ow.haveModTime = true
		return true
	}
	return false
}

func (ow *OverlayWatcher) updateModTime() {
	if stat, err := os.Stat(ow.overlayFile); err == nil {
		ow.lastModTime = stat.ModTime()
		ow.haveModTime = true
	}
}

// reload parses the overlay and applies it to the bank. A deleted overlay
// restores the built-in bank.
func (ow *OverlayWatcher) reload() error {
	if _, err := os.Stat(ow.overlayFile); os.IsNotExist(err) {
		ow.bank.ApplyOverlay(nil)
		return nil
	}

	overlay, err := LoadOverlay(ow.overlayFile)
	if err != nil {
		return err
	}

	ow.bank.ApplyOverlay(overlay)
	if ow.logger != nil {
		ow.logger.Info("Question overlay applied",
			"file", ow.overlayFile,
			"questions", overlay.questionCount())
	}
	return nil
}
