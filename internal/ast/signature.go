package ast

// ParameterTypes returns the ordered parameter types of the function, the
// basis of signature comparison.
func (f *Function) ParameterTypes() []*TypeName {
	return f.Params.Types()
}

// ReturnTypes returns the ordered return types, or nil when the function
// has no returns clause.
func (f *Function) ReturnTypes() []*TypeName {
	return f.Returns.Types()
}

// ParameterTypes returns the ordered parameter types of the event.
func (e *Event) ParameterTypes() []*TypeName {
	return e.Params.Types()
}

// ParameterTypes returns the ordered parameter types of the modifier. A
// modifier without a parameter list has none.
func (m *Modifier) ParameterTypes() []*TypeName {
	return m.Params.Types()
}
