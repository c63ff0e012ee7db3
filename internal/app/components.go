package app

import (
	"github.com/specialistvlad/extloader/components/clipboard"
	"github.com/specialistvlad/extloader/components/misc"
	"github.com/specialistvlad/extloader/components/zoom"
	"github.com/specialistvlad/extloader/internal/registry"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// coreModules is the definitive list of all extension modules compiled into
// the binary.
func coreModules() []registry.Module {
	return []registry.Module{
		&zoom.Module{},
		&clipboard.Module{},
		&misc.Module{Version: Version},
	}
}
