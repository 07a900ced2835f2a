package inspect

import (
	"model-binder/declare"
)

// Export collects the bind tags of every struct in the graph into a
// declarations file. Types without any bind tag are left out. The result
// binds exactly like the tags when passed to a binder as a source.
func (g *TypeGraph) Export() *declare.File {
	f := &declare.File{Version: declare.CurrentVersion}

	for _, t := range g.Structs() {
		var m *declare.Model

		for i := range t.Fields {
			field := &t.Fields[i]
			if !field.HasDeclaration() {
				continue
			}

			decl := field.Declaration()
			if !decl.Ignored && len(decl.Targets) == 0 {
				continue
			}

			if m == nil {
				m = f.Model(t.ShortName())
			}

			if decl.Ignored {
				m.Ignore = append(m.Ignore, field.Name)
				continue
			}

			targets := make(declare.Targets, 0, len(decl.Targets))
			for _, id := range decl.Targets {
				targets = append(targets, id.String())
			}

			if m.Fields == nil {
				m.Fields = make(map[string]declare.Targets)
			}
			m.Fields[field.Name] = targets
		}
	}

	return f
}
