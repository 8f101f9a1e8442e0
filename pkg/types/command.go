package types

import "time"

// Command is one tokenized script operation. Token 0 is the verb, the
// remaining tokens are operands.
type Command []string

// Verb returns the command verb, or "" for an empty command.
func (c Command) Verb() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// CommandList is an ordered script executed front to back in one run.
type CommandList []Command

// CommandState describes what the interpreter did with one command.
type CommandState string

const (
	// StateCompleted: the handler ran and its collaborator reported success.
	StateCompleted CommandState = "completed"
	// StateSkipped: empty command, unknown verb, or too few tokens.
	StateSkipped CommandState = "skipped"
	// StateBlocked: a destructive operation refused by the path safety guard.
	StateBlocked CommandState = "blocked"
	// StateFailed: the collaborator returned an error; the run continues.
	StateFailed CommandState = "failed"
	// StateTerminal: a power-state command; nothing after it executes.
	StateTerminal CommandState = "terminal"
)

// CommandStatus records the outcome of a single command in a run.
type CommandStatus struct {
	Index int          `json:"index"`
	Verb  string       `json:"verb"`
	State CommandState `json:"state"`
	Error string       `json:"error,omitempty"`
}

// RunResult summarizes one Execute call over a command list.
type RunResult struct {
	ID        string          `json:"id"`
	StartedAt time.Time       `json:"started_at"`
	EndedAt   time.Time       `json:"ended_at"`
	Commands  []CommandStatus `json:"commands"`
	Terminal  bool            `json:"terminal"`
}
