package dom

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// StyleSet is an ordered list of style declarations. The engine computes
// a complete StyleSet for each state transition and applies it in one
// call, so a transition has a single point of effect that tests can
// observe by diffing before/after snapshots.
//
// Declaration order is preserved through application. Setting a property
// that is already present updates it in place, keeping its original slot.
type StyleSet []Declaration

// Set returns the style set with the property set to value.
func (s StyleSet) Set(property, value string) StyleSet {
	for i := range s {
		if s[i].Property == property {
			s[i].Value = value
			return s
		}
	}
	return append(s, Declaration{Property: property, Value: value})
}

// Get returns the value for a property and whether it is present.
func (s StyleSet) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Properties returns the property names in declaration order.
func (s StyleSet) Properties() []string {
	names := make([]string, len(s))
	for i, d := range s {
		names[i] = d.Property
	}
	return names
}
