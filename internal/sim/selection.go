package sim

// SelectionState names where the picker is between spawns.
type SelectionState int

const (
	Empty SelectionState = iota
	SizeChosen
	ColorChosen
	Ready
)

func (s SelectionState) String() string {
	switch s {
	case SizeChosen:
		return "size chosen"
	case ColorChosen:
		return "color chosen"
	case Ready:
		return "ready"
	}
	return "empty"
}

// Choice is a completed selection, ready to become a ball.
type Choice struct {
	Size  Size
	Color Color
}

// Selection tracks the pending size and color. It reports a Choice the
// moment both are set and is Empty again on return.
type Selection struct {
	size  Size
	color Color
}

// ChooseSize overwrites the pending size. ok is true when a color was
// already pending; the selection is then reset.
func (s *Selection) ChooseSize(size Size) (c Choice, ok bool) {
	if !size.Valid() {
		return Choice{}, false
	}
	s.size = size
	return s.complete()
}

// ChooseColor overwrites the pending color. ok is true when a size was
// already pending; the selection is then reset.
func (s *Selection) ChooseColor(color Color) (c Choice, ok bool) {
	if !color.Valid() {
		return Choice{}, false
	}
	s.color = color
	return s.complete()
}

func (s *Selection) complete() (Choice, bool) {
	if s.State() != Ready {
		return Choice{}, false
	}
	c := Choice{Size: s.size, Color: s.color}
	s.Reset()
	return c, true
}

// Reset drops both pending values without spawning.
func (s *Selection) Reset() {
	s.size = SizeNone
	s.color = ColorNone
}

func (s *Selection) State() SelectionState {
	switch {
	case s.size != SizeNone && s.color != ColorNone:
		return Ready
	case s.size != SizeNone:
		return SizeChosen
	case s.color != ColorNone:
		return ColorChosen
	}
	return Empty
}

func (s *Selection) PendingSize() Size   { return s.size }
func (s *Selection) PendingColor() Color { return s.color }
