// Package misc provides small general-purpose commands.
package misc

import (
	"context"
	"strings"

	"github.com/specialistvlad/extloader/internal/command"
	"github.com/specialistvlad/extloader/internal/registry"
)

// Name is the unit's fully-qualified name.
const Name = "browser.components.misc"

// Module implements the registry.Module interface for this package.
type Module struct {
	Version string
}

// Register registers the unit's init function with the host.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Name, m.init)
}

func (m *Module) init(_ context.Context, unit *registry.Unit) error {
	version := m.Version
	if version == "" {
		version = "dev"
	}

	for _, cmd := range []command.Command{
		{
			Name: "echo",
			Help: "Print the given arguments.",
			Handler: func(_ context.Context, args []string) (string, error) {
				return strings.Join(args, " "), nil
			},
		},
		{
			Name: "version",
			Help: "Print the application version.",
			Handler: func(context.Context, []string) (string, error) {
				return version, nil
			},
		},
	} {
		cmd.Owner = unit.Name
		if err := unit.Commands.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}
