package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/extloader/internal/ctxlog"
)

// Validate performs a parity check between discovered unit names and the init
// functions compiled into the binary. It reports every discovered name that
// cannot be imported and warns about compiled-in units nothing discovered.
func (r *Registry) Validate(ctx context.Context, discovered []string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]struct{}, len(discovered))
	for _, name := range discovered {
		seen[name] = struct{}{}
		if _, ok := r.initializers[name]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s' is listed but has no compiled-in init function", name))
		}
	}

	for _, name := range r.Names() {
		if _, ok := seen[name]; !ok {
			logger.Warn("Compiled-in component was not discovered and will not be loaded.", "name", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
