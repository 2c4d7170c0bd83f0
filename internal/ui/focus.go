package ui

// FocusManager tracks the current section and rotates through the tab order.
type FocusManager struct {
	Current  Section   // the section shown in the body
	Order    []Section // tab order for rotation
	OnChange func(from, to Section)
}

// NewFocusManager starts at the first section of order.
func NewFocusManager(order []Section) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

func (f *FocusManager) index() int {
	for i, s := range f.Order {
		if s == f.Current {
			return i
		}
	}
	return -1
}

// Next advances to the next section, wrapping at the end.
// Returns the new current section.
func (f *FocusManager) Next() Section {
	if len(f.Order) == 0 {
		return f.Current
	}
	f.set(f.Order[(f.index()+1)%len(f.Order)])
	return f.Current
}

// Prev moves to the previous section, wrapping at the start.
func (f *FocusManager) Prev() Section {
	if len(f.Order) == 0 {
		return f.Current
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.set(f.Order[i])
	return f.Current
}

// SetFocus jumps to s. Returns false if s is not in the order.
func (f *FocusManager) SetFocus(s Section) bool {
	for _, o := range f.Order {
		if o == s {
			f.set(s)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(to Section) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
