package sim

// NewState builds a fresh game on the given field.
func NewState(field Field) *State {
	s := &State{Field: field}
	Reset(s)
	return s
}

// Reset restores s to its initial form, keeping only the field.
// There are no partial resets.
func Reset(s *State) {
	field := s.Field
	*s = State{
		Field:      field,
		Level:      1,
		Lives:      field.Lives,
		Playing:    true,
		Accuracy:   100,
		Structures: layoutStructures(field),
	}
}

// layoutStructures spaces the structures evenly along the ground line.
func layoutStructures(f Field) []Structure {
	n := len(f.StructureNames)
	if n == 0 {
		return nil
	}

	spacing := (f.Width - float64(n)*f.StructureWidth) / float64(n+1)
	out := make([]Structure, n)
	for i, name := range f.StructureNames {
		out[i] = Structure{
			ID:        i,
			Name:      name,
			Pos:       Vec{X: spacing + float64(i)*(f.StructureWidth+spacing), Y: f.GroundY()},
			Width:     f.StructureWidth,
			Height:    f.StructureHeight,
			Health:    f.StructureHealth,
			MaxHealth: f.StructureHealth,
		}
	}
	return out
}
