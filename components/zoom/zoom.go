// Package zoom provides the zoom commands extension unit.
package zoom

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/specialistvlad/extloader/internal/command"
	"github.com/specialistvlad/extloader/internal/ctxlog"
	"github.com/specialistvlad/extloader/internal/registry"
)

// Name is the unit's fully-qualified name.
const Name = "browser.components.zoom"

var defaultLevels = []int{25, 50, 75, 100, 125, 150, 200, 300}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the unit's init function with the host.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Name, initZoom)
}

// Zoomer tracks the zoom level of the current view, in percent.
type Zoomer struct {
	levels  []int
	current int
}

// New creates a zoomer over the given levels starting at start.
func New(levels []int, start int) (*Zoomer, error) {
	if len(levels) == 0 {
		return nil, errors.New("zoom levels must not be empty")
	}
	levels = slices.Clone(levels)
	slices.Sort(levels)
	levels = slices.Compact(levels)
	if levels[0] <= 0 {
		return nil, fmt.Errorf("zoom levels must be positive, got %d", levels[0])
	}
	if start <= 0 {
		return nil, fmt.Errorf("default zoom must be positive, got %d", start)
	}
	return &Zoomer{levels: levels, current: start}, nil
}

// Current returns the current zoom level.
func (z *Zoomer) Current() int {
	return z.current
}

// In moves to the next larger level, staying at the largest.
func (z *Zoomer) In() int {
	for _, l := range z.levels {
		if l > z.current {
			z.current = l
			return l
		}
	}
	return z.current
}

// Out moves to the next smaller level, staying at the smallest.
func (z *Zoomer) Out() int {
	for i := len(z.levels) - 1; i >= 0; i-- {
		if z.levels[i] < z.current {
			z.current = z.levels[i]
			return z.current
		}
	}
	return z.current
}

// Set jumps to an explicit level.
func (z *Zoomer) Set(level int) error {
	if level <= 0 {
		return fmt.Errorf("zoom level must be positive, got %d", level)
	}
	z.current = level
	return nil
}

func initZoom(ctx context.Context, unit *registry.Unit) error {
	levels := slices.Clone(defaultLevels)
	if _, err := unit.Manifest.DecodeSetting("levels", &levels); err != nil {
		return err
	}
	start := 100
	if _, err := unit.Manifest.DecodeSetting("default", &start); err != nil {
		return err
	}

	z, err := New(levels, start)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Zoom configured.", "levels", z.levels, "default", z.current)

	commands := []command.Command{
		{
			Name: "zoom-in",
			Help: "Increase the zoom level to the next step.",
			Handler: func(context.Context, []string) (string, error) {
				return percent(z.In()), nil
			},
		},
		{
			Name: "zoom-out",
			Help: "Decrease the zoom level to the previous step.",
			Handler: func(context.Context, []string) (string, error) {
				return percent(z.Out()), nil
			},
		},
		{
			Name: "zoom",
			Help: "Show the zoom level, or set it: zoom [LEVEL]",
			Handler: func(_ context.Context, args []string) (string, error) {
				if len(args) == 0 {
					return percent(z.Current()), nil
				}
				level, err := strconv.Atoi(args[0])
				if err != nil {
					return "", fmt.Errorf("invalid zoom level %q", args[0])
				}
				if err := z.Set(level); err != nil {
					return "", err
				}
				return percent(z.Current()), nil
			},
		},
	}
	for _, cmd := range commands {
		cmd.Owner = unit.Name
		if err := unit.Commands.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func percent(level int) string {
	return strconv.Itoa(level) + "%"
}
