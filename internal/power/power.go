// Package power performs the terminal power-state transitions a script can
// request. All storage is flushed and unmounted before the transition.
package power

import (
	"fmt"
	"os/exec"
	"syscall"
)

// Mode selects the power transition.
type Mode int

const (
	ModeShutdown Mode = iota
	ModeReboot
)

func (m Mode) String() string {
	if m == ModeReboot {
		return "reboot"
	}
	return "shutdown"
}

// Controller transitions the machine's power state. Implementations must
// unmount storage first; they do not return on success.
type Controller interface {
	Transition(mode Mode) error
}

// HostController drives the host init system. Used when packrun executes on
// a full OS rather than inside the embedded environment.
type HostController struct{}

func (HostController) Transition(mode Mode) error {
	syscall.Sync()
	name := "poweroff"
	if mode == ModeReboot {
		name = "reboot"
	}
	if err := exec.Command(name).Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Recorder captures requested transitions instead of performing them.
type Recorder struct {
	Requests []Mode
}

func (r *Recorder) Transition(mode Mode) error {
	r.Requests = append(r.Requests, mode)
	return nil
}
