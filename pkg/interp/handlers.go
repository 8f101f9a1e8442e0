package interp

import (
	"strings"

	"github.com/ovlhand/packrun/internal/fsops"
	"github.com/ovlhand/packrun/internal/hexenc"
	"github.com/ovlhand/packrun/internal/power"
	"github.com/ovlhand/packrun/pkg/types"
)

// handler binds a verb to its minimum token count and behavior. Arity is
// checked by the dispatch loop; a handler sees only commands long enough for
// it.
type handler struct {
	minTokens int
	fn        func(in *Interpreter, r Resolver, cmd types.Command) (types.CommandState, error)
}

// verbTable is the dispatch table. Aliases share one entry; adding a verb is
// a data change.
var verbTable = map[string]handler{
	"json_data": {2, handleJSONData},

	"make":  {2, handleMkdir},
	"mkdir": {2, handleMkdir},

	"copy": {3, handleCopy},
	"cp":   {3, handleCopy},

	"mirror_copy": {2, handleMirrorCopy},
	"mirror_cp":   {2, handleMirrorCopy},

	"delete": {2, handleDelete},
	"del":    {2, handleDelete},

	"mirror_delete": {2, handleMirrorDelete},
	"mirror_del":    {2, handleMirrorDelete},

	"rename": {3, handleMove},
	"move":   {3, handleMove},
	"mv":     {3, handleMove},

	"set-ini-val":   {5, handleSetIniValue},
	"set-ini-value": {5, handleSetIniValue},
	"set-ini-key":   {5, handleSetIniKey},

	"hex-by-offset":        {4, handleHexByOffset},
	"hex-by-custom-offset": {5, handleHexByCustomOffset},
	"hex-by-swap":          {4, handleHexBySwap},
	"hex-by-string":        {4, handleHexByString},
	"hex-by-decimal":       {4, handleHexByDecimal},
	"hex-by-rdecimal":      {4, handleHexByRDecimal},

	"download": {3, handleDownload},
	"unzip":    {3, handleUnzip},

	"reboot":   {1, handleReboot},
	"shutdown": {1, handleShutdown},
}

func outcome(err error) (types.CommandState, error) {
	if err != nil {
		return types.StateFailed, err
	}
	return types.StateCompleted, nil
}

func handleJSONData(in *Interpreter, r Resolver, cmd types.Command) (types.CommandState, error) {
	r.SetDocument(in.co.FS.PreprocessPath(cmd[1]))
	return types.StateCompleted, nil
}

func handleMkdir(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	return outcome(in.co.FS.CreateDirectory(in.co.FS.PreprocessPath(cmd[1])))
}

func handleCopy(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	src := in.co.FS.PreprocessPath(cmd[1])
	dst := in.co.FS.PreprocessPath(cmd[2])
	if strings.Contains(src, "*") {
		return outcome(in.co.FS.CopyByPattern(src, dst))
	}
	return outcome(in.co.FS.Copy(src, dst))
}

func handleMirrorCopy(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	src := in.co.FS.PreprocessPath(cmd[1])
	dst := ""
	if len(cmd) >= 3 {
		dst = in.co.FS.PreprocessPath(cmd[2])
	}
	return outcome(in.co.FS.MirrorCopy(src, dst))
}

func handleDelete(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	src := in.co.FS.PreprocessPath(cmd[1])
	if in.co.Guard.IsDangerous(src) {
		return types.StateBlocked, nil
	}
	if strings.Contains(src, "*") {
		return outcome(in.co.FS.DeleteByPattern(src))
	}
	return outcome(in.co.FS.Delete(src))
}

func handleMirrorDelete(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	src := in.co.FS.PreprocessPath(cmd[1])
	dst := ""
	if len(cmd) >= 3 {
		dst = in.co.FS.PreprocessPath(cmd[2])
	}
	return outcome(in.co.FS.MirrorDelete(src, dst))
}

func handleMove(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	src := in.co.FS.PreprocessPath(cmd[1])
	dst := in.co.FS.PreprocessPath(cmd[2])
	if in.co.Guard.IsDangerous(src) {
		return types.StateBlocked, nil
	}
	if strings.Contains(src, "*") {
		return outcome(in.co.FS.MoveByPattern(src, dst))
	}
	return outcome(in.co.FS.Move(src, dst))
}

func handleSetIniValue(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	section := fsops.StripQuotes(cmd[2])
	key := fsops.StripQuotes(cmd[3])
	value := strings.Join(cmd[4:], " ")
	return outcome(in.co.Config.SetValue(path, section, key, value))
}

func handleSetIniKey(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	section := fsops.StripQuotes(cmd[2])
	key := fsops.StripQuotes(cmd[3])
	newKey := strings.Join(cmd[4:], " ")
	return outcome(in.co.Config.RenameKey(path, section, key, newKey))
}

func handleHexByOffset(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	offset := fsops.StripQuotes(cmd[2])
	hexData := fsops.StripQuotes(cmd[3])
	return outcome(in.co.Patch.EditByOffset(path, offset, hexData))
}

func handleHexByCustomOffset(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	pattern := fsops.StripQuotes(cmd[2])
	offset := fsops.StripQuotes(cmd[3])
	hexData := fsops.StripQuotes(cmd[4])
	return outcome(in.co.Patch.EditByCustomOffset(path, pattern, offset, hexData))
}

func handleHexBySwap(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	find := fsops.StripQuotes(cmd[2])
	repl := fsops.StripQuotes(cmd[3])
	return outcome(in.co.Patch.FindReplace(path, find, repl, occurrenceOperand(cmd)))
}

func handleHexByString(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	find := hexenc.AsciiToHex(fsops.StripQuotes(cmd[2]))
	repl := hexenc.AsciiToHex(fsops.StripQuotes(cmd[3]))
	// Keep the patch fixed width: the shorter literal gets trailing nulls.
	find, repl = hexenc.PadNulls(find, repl)
	return outcome(in.co.Patch.FindReplace(path, find, repl, occurrenceOperand(cmd)))
}

func handleHexByDecimal(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	find := hexenc.DecimalToHex(fsops.StripQuotes(cmd[2]))
	repl := hexenc.DecimalToHex(fsops.StripQuotes(cmd[3]))
	return outcome(in.co.Patch.FindReplace(path, find, repl, occurrenceOperand(cmd)))
}

func handleHexByRDecimal(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	path := in.co.FS.PreprocessPath(cmd[1])
	find := hexenc.DecimalToReversedHex(fsops.StripQuotes(cmd[2]))
	repl := hexenc.DecimalToReversedHex(fsops.StripQuotes(cmd[3]))
	return outcome(in.co.Patch.FindReplace(path, find, repl, occurrenceOperand(cmd)))
}

func occurrenceOperand(cmd types.Command) string {
	if len(cmd) >= 5 {
		return fsops.StripQuotes(cmd[4])
	}
	return ""
}

func handleDownload(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	url := in.co.FS.PreprocessURL(cmd[1])
	dest := in.co.FS.PreprocessPath(cmd[2])
	return outcome(in.co.Net.DownloadFile(url, dest))
}

func handleUnzip(in *Interpreter, _ Resolver, cmd types.Command) (types.CommandState, error) {
	src := in.co.FS.PreprocessPath(cmd[1])
	dest := in.co.FS.PreprocessPath(cmd[2])
	return outcome(in.co.Net.Unzip(src, dest))
}

func handleReboot(in *Interpreter, _ Resolver, _ types.Command) (types.CommandState, error) {
	return types.StateTerminal, in.co.Power.Transition(power.ModeReboot)
}

func handleShutdown(in *Interpreter, _ Resolver, _ types.Command) (types.CommandState, error) {
	return types.StateTerminal, in.co.Power.Transition(power.ModeShutdown)
}
