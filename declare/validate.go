package declare

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"model-binder/internal/common"
	"model-binder/internal/diagnostic"
	"model-binder/internal/match"
	"model-binder/meta"
)

// TypeLookup resolves a declared type name to the names of the fields the
// struct declares itself. Embedded fields appear under their type name;
// fields promoted from them belong to the embedded type.
type TypeLookup interface {
	LookupStruct(name string) (fields []string, ok bool)
}

// Types is a TypeLookup over struct types known at run time.
type Types map[string][]string

// TypesOf builds a lookup for the given struct types, registering each under
// every name TypeNames returns. Pointer types are normalized to their
// element type.
func TypesOf(types ...reflect.Type) (Types, error) {
	res := make(Types, len(types))

	for _, t := range types {
		if t != nil && t.Kind() == reflect.Ptr {
			t = t.Elem()
		}

		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%v: %w", t, meta.ErrNotStruct)
		}

		fields := make([]string, 0, t.NumField())
		for i := range t.NumField() {
			if name := t.Field(i).Name; name != "_" {
				fields = append(fields, name)
			}
		}

		for _, name := range TypeNames(t) {
			res[name] = fields
		}
	}

	return res, nil
}

// LookupStruct implements TypeLookup.
func (t Types) LookupStruct(name string) ([]string, bool) {
	fields, ok := t[name]
	return fields, ok
}

// Validate checks a declarations file against the known model types. It is a
// structural check: it does not resolve view ids against any layout.
func Validate(f *File, lookup TypeLookup) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declarations file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddWarning("unknown_version", fmt.Sprintf("unknown schema version %q", f.Version), "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Models {
		m := &f.Models[i]

		if m.Type == "" {
			res.AddError("missing_type", fmt.Sprintf("model #%d has no type", i), "", "")
			continue
		}

		if _, ok := seen[m.Type]; ok {
			res.AddError("duplicate_model", fmt.Sprintf("duplicate model %q", m.Type), m.Type, "")
			continue
		}

		seen[m.Type] = struct{}{}

		validateModel(res, m, lookup)
	}

	return res
}

func validateModel(res *diagnostic.Diagnostics, m *Model, lookup TypeLookup) {
	var known []string
	if lookup != nil {
		fields, ok := lookup.LookupStruct(m.Type)
		if !ok {
			res.AddError("type_not_found", fmt.Sprintf("type %q not found", m.Type), m.Type, "")
			return
		}

		known = fields
	}

	checkField := func(name string) {
		if lookup != nil && !slices.Contains(known, name) {
			res.AddError("field_not_found", fmt.Sprintf("type %q has no field %q%s", m.Type, name, match.Hint(name, known)), m.Type, name)
		}
	}

	for _, name := range sortedKeys(m.Fields) {
		checkField(name)

		targets := m.Fields[name]
		if common.IsEmpty(targets) {
			res.AddError("empty_targets", "field declares no targets", m.Type, name)
		}

		for _, target := range targets {
			if strings.TrimSpace(target) == "" || strings.Contains(target, ",") {
				res.AddError("invalid_view_id", fmt.Sprintf("invalid view id %q", target), m.Type, name)
			}
		}

		if slices.Contains(m.Ignore, name) {
			res.AddError("declared_and_ignored", "field is both declared and ignored", m.Type, name)
		}
	}

	for _, name := range m.Ignore {
		checkField(name)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
