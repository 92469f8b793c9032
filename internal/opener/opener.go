// Package opener launches activation targets in whatever the platform
// considers the default handler.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener opens activation targets
type Opener struct {
	command string // overrides the platform default when set
}

// New creates an opener. An empty command selects the platform default.
func New(command string) *Opener {
	return &Opener{command: command}
}

// Open launches the target. The call does not wait for the handler to
// exit; failure to start is the only reported error.
func (o *Opener) Open(target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("empty activation target")
	}

	name, args, err := o.resolve(target)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}

	go func() {
		cmd.Wait()
	}()

	return nil
}

func (o *Opener) resolve(target string) (string, []string, error) {
	if o.command != "" {
		return o.command, []string{target}, nil
	}

	switch runtime.GOOS {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "cmd", []string{"/c", "start", target}, nil
	case "linux":
		return "xdg-open", []string{target}, nil
	}
	return "", nil, fmt.Errorf("opening links not supported on %s", runtime.GOOS)
}
