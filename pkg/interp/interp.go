// Package interp executes pre-tokenized automation scripts: one command list
// per run, strictly in order, with placeholder substitution, path safety
// checks on destructive verbs, and silent skip-and-continue error handling.
package interp

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ovlhand/packrun/internal/power"
	"github.com/ovlhand/packrun/pkg/types"
)

// FileOps is the file-system collaborator surface, path preprocessing
// included.
type FileOps interface {
	PreprocessPath(token string) string
	PreprocessURL(token string) string
	CreateDirectory(path string) error
	Copy(src, dst string) error
	CopyByPattern(pattern, dst string) error
	MirrorCopy(src, dstRoot string) error
	Delete(path string) error
	DeleteByPattern(pattern string) error
	MirrorDelete(src, dstRoot string) error
	Move(src, dst string) error
	MoveByPattern(pattern, dst string) error
}

// ConfigOps edits key-value configuration files.
type ConfigOps interface {
	SetValue(path, section, key, value string) error
	RenameKey(path, section, key, newKey string) error
}

// PatchOps applies in-place binary patches. Operand literals arrive as the
// script wrote them; each primitive no-ops with an error on unparsable
// input.
type PatchOps interface {
	EditByOffset(path, offset, hexData string) error
	EditByCustomOffset(path, patternHex, offset, hexData string) error
	FindReplace(path, findHex, replHex, occurrence string) error
}

// NetOps downloads files and extracts archives.
type NetOps interface {
	DownloadFile(url, destPath string) error
	Unzip(srcPath, destDir string) error
}

// Guard decides whether a destructive operation on a path must be refused.
type Guard interface {
	IsDangerous(path string) bool
}

// Resolver substitutes document placeholders in command arguments. One
// resolver belongs to one run; SetDocument replaces the active document
// unconditionally.
type Resolver interface {
	SetDocument(path string)
	Active() bool
	Resolve(arg string) string
}

// Collaborators bundles everything the interpreter delegates to.
type Collaborators struct {
	FS     FileOps
	Config ConfigOps
	Patch  PatchOps
	Net    NetOps
	Guard  Guard
	Power  power.Controller
}

// Interpreter runs command lists against a fixed set of collaborators. It
// holds no state across Execute calls; run two lists concurrently only with
// two Interpreter instances.
type Interpreter struct {
	co          Collaborators
	newResolver func() Resolver
	log         *slog.Logger
}

// NewInterpreter wires an Interpreter from explicit collaborators.
func NewInterpreter(co Collaborators, newResolver func() Resolver, logger *slog.Logger) *Interpreter {
	return &Interpreter{co: co, newResolver: newResolver, log: logger}
}

// Execute runs the list front to back and reports what happened to every
// command. A failed command never aborts the remainder; a terminal power
// command ends the run immediately.
func (in *Interpreter) Execute(commands types.CommandList) *types.RunResult {
	run := &types.RunResult{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
	resolver := in.newResolver()

	in.log.Info("run_started", "run_id", run.ID, "commands", len(commands))

	for i, raw := range commands {
		if len(raw) == 0 {
			continue
		}

		command := raw
		if resolver.Active() {
			resolved := make(types.Command, len(raw))
			for j, arg := range raw {
				resolved[j] = resolver.Resolve(arg)
			}
			command = resolved
		}

		verb := command.Verb()
		status := types.CommandStatus{Index: i, Verb: verb}

		handler, known := verbTable[verb]
		switch {
		case !known:
			status.State = types.StateSkipped
			in.log.Debug("unknown_verb", "run_id", run.ID, "verb", verb)
		case len(command) < handler.minTokens:
			status.State = types.StateSkipped
			in.log.Debug("arity_skip", "run_id", run.ID, "verb", verb, "tokens", len(command))
		default:
			state, err := handler.fn(in, resolver, command)
			status.State = state
			if err != nil {
				status.Error = err.Error()
			}
		}

		switch status.State {
		case types.StateFailed:
			in.log.Warn("command_failed", "run_id", run.ID, "index", i, "verb", verb, "error", status.Error)
		case types.StateBlocked:
			in.log.Warn("command_blocked", "run_id", run.ID, "index", i, "verb", verb)
		}
		run.Commands = append(run.Commands, status)

		if status.State == types.StateTerminal {
			run.Terminal = true
			break
		}
	}

	run.EndedAt = time.Now()
	in.log.Info("run_finished", "run_id", run.ID,
		"executed", len(run.Commands), "terminal", run.Terminal,
		"duration", run.EndedAt.Sub(run.StartedAt))
	return run
}
