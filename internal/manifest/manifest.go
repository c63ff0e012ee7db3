package manifest

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Extension is the file suffix of a unit manifest.
const Extension = ".hcl"

// Manifest is the decoded content of one unit's manifest file.
type Manifest struct {
	// Name is the fully-qualified unit name the manifest was resolved for.
	Name        string
	Path        string
	Description string
	// Settings is always an object or map value, cty.EmptyObjectVal when the
	// file declares none.
	Settings cty.Value
}

// fileSchema is the gohcl decoding target for a manifest body.
type fileSchema struct {
	Description string    `hcl:"description,optional"`
	Settings    cty.Value `hcl:"settings,optional"`
}

// Parse decodes the manifest source for the named unit. filename is only used
// in diagnostics.
func Parse(name, filename string, src []byte) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	var body fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	settings := body.Settings
	if settings.IsNull() {
		settings = cty.EmptyObjectVal
	} else if ty := settings.Type(); !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("manifest %s: settings must be an object, got %s", filename, ty.FriendlyName())
	}

	return &Manifest{
		Name:        name,
		Path:        filename,
		Description: body.Description,
		Settings:    settings,
	}, nil
}

// Setting returns the raw value of one settings key.
func (m *Manifest) Setting(key string) (cty.Value, bool) {
	if m == nil || m.Settings.IsNull() || !m.Settings.IsWhollyKnown() {
		return cty.NilVal, false
	}

	ty := m.Settings.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(key) {
			return cty.NilVal, false
		}
		return m.Settings.GetAttr(key), true
	case ty.IsMapType():
		idx := cty.StringVal(key)
		if m.Settings.HasIndex(idx).False() {
			return cty.NilVal, false
		}
		return m.Settings.Index(idx), true
	}
	return cty.NilVal, false
}

// DecodeSetting converts one settings key into target, which must be a
// non-nil pointer. It reports whether the key was present.
func (m *Manifest) DecodeSetting(key string, target any) (bool, error) {
	val, ok := m.Setting(key)
	if !ok {
		return false, nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		panic("manifest: DecodeSetting target must be a non-nil pointer")
	}

	ty, err := gocty.ImpliedType(rv.Elem().Interface())
	if err != nil {
		return true, fmt.Errorf("setting %q: %w", key, err)
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return true, fmt.Errorf("setting %q: %w", key, err)
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return true, fmt.Errorf("setting %q: %w", key, err)
	}
	return true, nil
}
