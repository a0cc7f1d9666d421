package vals

// List is a mutable sequence of values. Lists are shared by reference, so a
// mutation through one binding is visible through every other.
type List struct {
	elems []any
}

// MakeList creates a new List from the given elements.
func MakeList(elems ...any) *List {
	return &List{append([]any(nil), elems...)}
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.elems) }

// Get returns the element at i, which must be within [0, Len).
func (l *List) Get(i int) any { return l.elems[i] }

// Set replaces the element at i, which must be within [0, Len).
func (l *List) Set(i int, v any) { l.elems[i] = v }

// Append adds elements to the end of the list.
func (l *List) Append(vs ...any) { l.elems = append(l.elems, vs...) }

// Pop removes and returns the last element. It returns false if the list is
// empty.
func (l *List) Pop() (any, bool) {
	if len(l.elems) == 0 {
		return nil, false
	}
	v := l.elems[len(l.elems)-1]
	l.elems[len(l.elems)-1] = nil
	l.elems = l.elems[:len(l.elems)-1]
	return v, true
}

// Elems returns a copy of the elements.
func (l *List) Elems() []any { return append([]any(nil), l.elems...) }

// Concat returns a new list with the elements of l followed by those of other.
func (l *List) Concat(other *List) *List {
	elems := make([]any, 0, len(l.elems)+len(other.elems))
	elems = append(elems, l.elems...)
	return &List{append(elems, other.elems...)}
}
