package widget

// Listeners is a registry of change callbacks for widget implementations.
// Callbacks run in registration order. It is not safe for concurrent use.
type Listeners[F any] struct {
	next int
	fns  map[int]F
	ids  []int
}

// Add registers fn and returns its disposer.
func (l *Listeners[F]) Add(fn F) Disposer {
	if l.fns == nil {
		l.fns = make(map[int]F)
	}

	id := l.next
	l.next++
	l.fns[id] = fn
	l.ids = append(l.ids, id)

	return func() { l.remove(id) }
}

// Each calls call for every registered callback. Callbacks disposed while
// iterating are skipped.
func (l *Listeners[F]) Each(call func(F)) {
	for _, id := range l.ids {
		if fn, ok := l.fns[id]; ok {
			call(fn)
		}
	}
}

// Len returns the number of registered callbacks.
func (l *Listeners[F]) Len() int {
	return len(l.fns)
}

func (l *Listeners[F]) remove(id int) {
	if _, ok := l.fns[id]; !ok {
		return
	}

	delete(l.fns, id)

	for i, v := range l.ids {
		if v == id {
			l.ids = append(l.ids[:i:i], l.ids[i+1:]...)
			break
		}
	}
}
