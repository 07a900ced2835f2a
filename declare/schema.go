package declare

import (
	"errors"
	"reflect"
	"slices"

	"model-binder/internal/common"
	"model-binder/meta"
	"model-binder/widget"
)

// CurrentVersion is the schema version written by this package.
const CurrentVersion = "1"

// File is the root of a declarations file.
type File struct {
	// Version of the schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Models lists per-type declarations.
	Models []Model `yaml:"models"`
}

// Model holds the declarations for one model type.
type Model struct {
	// Type identifies the model, either as reflect prints it ("account.Profile")
	// or with the full import path ("model-binder/examples/account.Profile").
	Type string `yaml:"type"`

	// Fields maps Go field names to their targets.
	Fields map[string]Targets `yaml:"fields,omitempty"`

	// Ignore lists fields that are neither bound nor traversed.
	Ignore []string `yaml:"ignore,omitempty"`
}

// Targets is an ordered list of view ids. In YAML it is either a single
// string or a list of strings.
type Targets []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Targets) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*t = Targets{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*t = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}

// MarshalYAML writes a single target as a plain string.
func (t Targets) MarshalYAML() (any, error) {
	if common.IsSingle(t) {
		return t[0], nil
	}

	return []string(t), nil
}

// ViewIDs parses the targets.
func (t Targets) ViewIDs() []widget.ViewID {
	ids := make([]widget.ViewID, 0, len(t))
	for _, s := range t {
		ids = append(ids, widget.ParseViewID(s))
	}

	return ids
}

// Model returns the declarations for the named type, adding an empty entry
// when none exists.
func (f *File) Model(typeName string) *Model {
	for i := range f.Models {
		if f.Models[i].Type == typeName {
			return &f.Models[i]
		}
	}

	f.Models = append(f.Models, Model{Type: typeName})

	return &f.Models[len(f.Models)-1]
}

// Source returns a meta.Source answering from a snapshot of f. Later changes
// to f are not observed.
func (f *File) Source() meta.Source {
	index := make(map[string]map[string]meta.Declaration, len(f.Models))

	for _, m := range f.Models {
		decls := index[m.Type]
		if decls == nil {
			decls = make(map[string]meta.Declaration)
			index[m.Type] = decls
		}

		for field, targets := range m.Fields {
			decls[field] = meta.Declaration{Targets: targets.ViewIDs()}
		}

		for _, field := range m.Ignore {
			decls[field] = meta.Declaration{Ignored: true}
		}
	}

	return meta.SourceFunc(func(t reflect.Type, field string) (meta.Declaration, bool) {
		for _, name := range TypeNames(t) {
			if decl, ok := index[name][field]; ok {
				decl.Targets = slices.Clone(decl.Targets)
				return decl, true
			}
		}

		return meta.Declaration{}, false
	})
}

// TypeNames returns the names a declarations file may use for t: the full
// import path form first, then the short form reflect prints.
func TypeNames(t reflect.Type) []string {
	if t.Name() == "" {
		return []string{t.String()}
	}

	if t.PkgPath() == "" {
		return []string{t.Name()}
	}

	return []string{t.PkgPath() + "." + t.Name(), t.String()}
}
