// Package clipboard provides the yank and paste commands extension unit,
// backed by the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sysclip "github.com/atotto/clipboard"
	"github.com/specialistvlad/extloader/internal/command"
	"github.com/specialistvlad/extloader/internal/registry"
)

// Name is the unit's fully-qualified name.
const Name = "browser.components.clipboard"

// Board is a text clipboard.
type Board interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the operating system clipboard.
type System struct{}

// ReadAll implements Board.
func (System) ReadAll() (string, error) {
	if sysclip.Unsupported {
		return "", errors.New("system clipboard is not supported on this platform")
	}
	return sysclip.ReadAll()
}

// WriteAll implements Board.
func (System) WriteAll(text string) error {
	if sysclip.Unsupported {
		return errors.New("system clipboard is not supported on this platform")
	}
	return sysclip.WriteAll(text)
}

// Module implements the registry.Module interface for this package. A nil
// Board uses the system clipboard.
type Module struct {
	Board Board
}

// Register registers the unit's init function with the host.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Name, m.init)
}

func (m *Module) board() Board {
	if m.Board == nil {
		return System{}
	}
	return m.Board
}

func (m *Module) init(_ context.Context, unit *registry.Unit) error {
	separator := " "
	if _, err := unit.Manifest.DecodeSetting("separator", &separator); err != nil {
		return err
	}
	board := m.board()

	yank := command.Command{
		Name:  "yank",
		Help:  "Copy the given text to the clipboard: yank TEXT...",
		Owner: unit.Name,
		Handler: func(_ context.Context, args []string) (string, error) {
			if len(args) == 0 {
				return "", errors.New("nothing to yank")
			}
			text := strings.Join(args, separator)
			if err := board.WriteAll(text); err != nil {
				return "", fmt.Errorf("failed to write clipboard: %w", err)
			}
			return fmt.Sprintf("Yanked %d characters to clipboard", len([]rune(text))), nil
		},
	}
	paste := command.Command{
		Name:  "paste",
		Help:  "Print the clipboard content.",
		Owner: unit.Name,
		Handler: func(context.Context, []string) (string, error) {
			text, err := board.ReadAll()
			if err != nil {
				return "", fmt.Errorf("failed to read clipboard: %w", err)
			}
			if text == "" {
				return "", errors.New("clipboard is empty")
			}
			return text, nil
		},
	}

	if err := unit.Commands.Register(yank); err != nil {
		return err
	}
	return unit.Commands.Register(paste)
}
