// Package clipboard copies message text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	perrors "github.com/zhubert/dialogo/internal/errors"
	"github.com/zhubert/dialogo/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initErr     error

	initFn  = clipboard.Init
	writeFn = func(data []byte) { clipboard.Write(clipboard.FmtText, data) }
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; a failed init is remembered.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return initErr
	}
	initialized = true
	if err := initFn(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		initErr = perrors.ClipboardFailed(err)
		return initErr
	}
	logger.Debug("Clipboard: initialized")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	writeFn([]byte(text))
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// SetBackend swaps the clipboard functions and resets the init state.
// Tests and headless runs use it to avoid touching the system clipboard.
func SetBackend(initF func() error, writeF func([]byte)) {
	mu.Lock()
	defer mu.Unlock()
	initFn, writeFn = initF, writeF
	initialized, initErr = false, nil
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(clipboard.Init, func(data []byte) { clipboard.Write(clipboard.FmtText, data) })
}
