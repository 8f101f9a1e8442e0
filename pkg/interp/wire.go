package interp

import (
	"log/slog"

	"github.com/ovlhand/packrun/internal/fetch"
	"github.com/ovlhand/packrun/internal/fsops"
	"github.com/ovlhand/packrun/internal/hexpatch"
	"github.com/ovlhand/packrun/internal/inifile"
	"github.com/ovlhand/packrun/internal/placeholder"
	"github.com/ovlhand/packrun/internal/power"
	"github.com/ovlhand/packrun/internal/safety"
	"github.com/ovlhand/packrun/pkg/config"
)

// New wires an Interpreter with the production collaborators described by
// cfg.
func New(cfg *config.Config, logger *slog.Logger) *Interpreter {
	co := Collaborators{
		FS:     fsops.NewOps(cfg.StorageRoot),
		Config: iniOps{},
		Patch:  patchOps{},
		Net: netOps{client: fetch.NewClient(
			cfg.DownloadTimeout(), cfg.Download.MaxBytes, cfg.Download.UserAgent)},
		Guard: safety.New(cfg.StorageRoot, cfg.ProtectedFolders, cfg.UltraProtectedFolders),
		Power: power.HostController{},
	}
	return NewInterpreter(co, func() Resolver { return placeholder.New() }, logger)
}

type iniOps struct{}

func (iniOps) SetValue(path, section, key, value string) error {
	return inifile.SetValue(path, section, key, value)
}

func (iniOps) RenameKey(path, section, key, newKey string) error {
	return inifile.RenameKey(path, section, key, newKey)
}

type patchOps struct{}

func (patchOps) EditByOffset(path, offset, hexData string) error {
	return hexpatch.EditByOffset(path, offset, hexData)
}

func (patchOps) EditByCustomOffset(path, patternHex, offset, hexData string) error {
	return hexpatch.EditByCustomOffset(path, patternHex, offset, hexData)
}

func (patchOps) FindReplace(path, findHex, replHex, occurrence string) error {
	return hexpatch.FindReplace(path, findHex, replHex, occurrence)
}

type netOps struct {
	client *fetch.Client
}

func (n netOps) DownloadFile(url, destPath string) error {
	return n.client.DownloadFile(url, destPath)
}

func (n netOps) Unzip(srcPath, destDir string) error {
	return fetch.Unzip(srcPath, destDir)
}
