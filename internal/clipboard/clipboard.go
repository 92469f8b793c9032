// Package clipboard wraps the system clipboard behind a small
// Init/Write/Read surface so the UI can treat it as a capability that
// may fail: an environment without a clipboard backend degrades to an
// error instead of a crash.
package clipboard

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.design/x/clipboard"
)

var (
	useWayland = false
	useNative  = false
	ready      = false
)

// Init detects a clipboard backend for the current platform. It must
// be called once before Write or Read.
func Init() error {
	switch runtime.GOOS {
	case "windows", "darwin":
		useNative = true

	case "linux":
		display := os.Getenv("DISPLAY")
		wayland := os.Getenv("WAYLAND_DISPLAY")

		switch {
		case wayland != "":
			useWayland = true

		case display != "":
			useNative = true

		default:
			return errors.New("no clipboard backend detected (no DISPLAY or WAYLAND_DISPLAY)")
		}
	default:
		return errors.New("unsupported OS for clipboard")
	}

	if useNative {
		if err := clipboard.Init(); err != nil {
			return err
		}
	}

	ready = true
	return nil
}

// Write places text on the system clipboard
func Write(text string) error {
	if !ready {
		return errors.New("clipboard not initialized")
	}

	if useNative {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	} else if useWayland {
		cmd := exec.Command("wl-copy", "--type", "text/plain", "--foreground")
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return err
		}

		if err := cmd.Start(); err != nil {
			return err
		}

		go func() {
			defer stdin.Close()
			io.WriteString(stdin, text)
		}()

		go func() {
			cmd.Wait()
		}()

		return nil
	}

	return errors.New("no clipboard backend available for Write")
}

// Read returns the current clipboard text
func Read() (string, error) {
	if !ready {
		return "", errors.New("clipboard not initialized")
	}

	if useNative {
		data := clipboard.Read(clipboard.FmtText)
		return string(data), nil
	} else if useWayland {
		out, err := exec.Command("wl-paste", "--no-newline").Output()
		if err != nil {
			return "", err
		}
		return string(bytes.TrimSpace(out)), nil
	}

	return "", errors.New("no clipboard backend available for Read")
}
