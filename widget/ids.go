package widget

import (
	"strconv"
	"strings"
)

// ViewID names a binding target, either symbolically or by numeric handle.
type ViewID struct {
	Name    string
	Handle  Handle
	Numeric bool
}

// ByName returns a symbolic view id.
func ByName(name string) ViewID {
	return ViewID{Name: name}
}

// ByHandle returns a numeric view id.
func ByHandle(h Handle) ViewID {
	return ViewID{Handle: h, Numeric: true}
}

// ParseViewID parses a single declaration entry. "#12" and "12" are numeric
// handles, anything else is a symbolic name.
func ParseViewID(s string) ViewID {
	s = strings.TrimSpace(s)

	digits := strings.TrimPrefix(s, "#")
	if n, err := strconv.Atoi(digits); err == nil && digits != "" {
		return ByHandle(Handle(n))
	}

	return ByName(s)
}

// ParseViewIDs parses a comma separated declaration, skipping empty entries.
func ParseViewIDs(s string) []ViewID {
	var ids []ViewID
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		ids = append(ids, ParseViewID(part))
	}

	return ids
}

func (id ViewID) String() string {
	if id.Numeric {
		return "#" + strconv.Itoa(int(id.Handle))
	}

	return id.Name
}

// Resources maps symbolic view names to handles.
type Resources interface {
	Lookup(name string) (Handle, bool)
}

// ResourceMap is a Resources backed by a map.
type ResourceMap map[string]Handle

func (m ResourceMap) Lookup(name string) (Handle, bool) {
	h, ok := m[name]
	return h, ok
}

// Resolve finds the view named by id under root. It reports false when the
// name is unknown to res, root is not a Container, or nothing has that handle.
func Resolve(root View, id ViewID, res Resources) (View, bool) {
	h := id.Handle
	if !id.Numeric {
		if res == nil {
			return nil, false
		}

		var ok bool
		if h, ok = res.Lookup(id.Name); !ok {
			return nil, false
		}
	}

	c, ok := root.(Container)
	if !ok || IsNil(c) {
		return nil, false
	}

	v := c.FindViewByID(h)
	if IsNil(v) {
		return nil, false
	}

	return v, true
}
