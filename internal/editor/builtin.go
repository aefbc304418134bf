package editor

import (
	"fmt"

	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/raster"
)

// Messages shown by the built-in operations.
const (
	MsgSaveFailed = "failed to save image"
	MsgLoadFailed = "failed to load image"
)

// AddLoadOperation registers an operation that asks for a file and opens
// it in a new session. The current session is not changed.
func (e *Editor) AddLoadOperation(name string) error {
	return e.AddOperation(name, func(_ raster.Raster, s operation.Session) (raster.Raster, error) {
		inv, ok := s.(*invocation)
		if !ok || inv.io.Files == nil {
			return nil, fmt.Errorf("no file chooser: %w", operation.ErrCanceled)
		}
		path, err := inv.io.Files.ChooseOpen()
		if err != nil {
			return nil, err
		}

		opened, err := e.OpenFile(path)
		if err != nil {
			inv.Message(fmt.Sprintf("%s: %v", MsgLoadFailed, err))
			return nil, err
		}
		inv.Message(fmt.Sprintf("opened %s as session %s", path, opened.ID()))
		return nil, nil
	})
}

// AddSaveOperation registers an operation that asks for a destination and
// writes the displayed raster there as PNG. Overwriting an existing file
// needs confirmation.
func (e *Editor) AddSaveOperation(name string) error {
	return e.AddOperation(name, func(_ raster.Raster, s operation.Session) (raster.Raster, error) {
		inv, ok := s.(*invocation)
		if !ok || inv.io.Files == nil {
			return nil, fmt.Errorf("no file chooser: %w", operation.ErrCanceled)
		}
		path, err := inv.io.Files.ChooseSave()
		if err != nil {
			return nil, err
		}

		if e.store.Exists(path) {
			yes, err := inv.Confirm(fmt.Sprintf("Overwrite %s?", path))
			if err != nil {
				return nil, err
			}
			if !yes {
				return nil, fmt.Errorf("overwrite declined: %w", operation.ErrCanceled)
			}
		}

		if err := inv.session.Save(path); err != nil {
			inv.Message(MsgSaveFailed)
			return nil, err
		}
		inv.Message(fmt.Sprintf("saved %s", path))
		return nil, nil
	})
}
