package ast

import (
	"fmt"
	"strings"
)

func (u *SourceUnit) String() string {
	var b strings.Builder
	if u.Pragma != nil {
		b.WriteString(u.Pragma.String())
		b.WriteString("\n\n")
	}
	for i, c := range u.Contracts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (p *Pragma) String() string {
	return fmt.Sprintf("pragma %s %s;", p.Name, p.Value)
}

func (i *Ident) String() string {
	return i.Value
}

func (c *Contract) String() string {
	var b strings.Builder
	b.WriteString("contract ")
	b.WriteString(c.Name.Value)
	if len(c.Bases) > 0 {
		b.WriteString(" is ")
		for i, base := range c.Bases {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(base.String())
		}
	}
	b.WriteString(" {\n")
	for _, v := range c.StateVars {
		b.WriteString("    " + v.String() + "\n")
	}
	for _, e := range c.Events {
		b.WriteString("    " + e.String() + "\n")
	}
	for _, m := range c.Modifiers {
		b.WriteString("    " + m.String() + "\n")
	}
	for _, f := range c.Functions {
		b.WriteString("    " + f.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (b *BaseSpecifier) String() string {
	if !b.HasArguments {
		return b.Name.Value
	}
	return b.Name.Value + "(" + joinArguments(b.Arguments) + ")"
}

func (v *StateVar) String() string {
	return fmt.Sprintf("%s %s;", v.Type.String(), v.Name.Value)
}

func (f *Function) String() string {
	var b strings.Builder
	switch {
	case f.IsConstructor:
		b.WriteString("constructor")
	case f.IsFallback:
		b.WriteString("function")
	default:
		b.WriteString("function ")
		b.WriteString(f.Name.Value)
	}
	b.WriteString(f.Params.String())
	b.WriteString(" ")
	b.WriteString(f.Visibility.String())
	if f.Mutability != MutabilityNonPayable {
		b.WriteString(" ")
		b.WriteString(f.Mutability.String())
	}
	for _, m := range f.Modifiers {
		b.WriteString(" ")
		b.WriteString(m.String())
	}
	if f.Returns != nil {
		b.WriteString(" returns ")
		b.WriteString(f.Returns.String())
	}
	if f.Implemented {
		b.WriteString(" { ... }")
	} else {
		b.WriteString(";")
	}
	return b.String()
}

func (pl *ParamList) String() string {
	if pl == nil {
		return "()"
	}
	parts := make([]string, len(pl.Params))
	for i, p := range pl.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *Param) String() string {
	if p.Name == nil {
		return p.Type.String()
	}
	return p.Type.String() + " " + p.Name.Value
}

func (t *TypeName) String() string {
	return t.Name + strings.Repeat("[]", t.ArrayDims)
}

func (m *ModifierInvocation) String() string {
	if !m.HasArguments {
		return m.Name.Value
	}
	return m.Name.Value + "(" + joinArguments(m.Arguments) + ")"
}

func (a *Argument) String() string {
	return a.Text
}

func (e *Event) String() string {
	return fmt.Sprintf("event %s%s;", e.Name.Value, e.Params.String())
}

func (m *Modifier) String() string {
	if m.Params == nil {
		return fmt.Sprintf("modifier %s { ... }", m.Name.Value)
	}
	return fmt.Sprintf("modifier %s%s { ... }", m.Name.Value, m.Params.String())
}

func joinArguments(args []*Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Text
	}
	return strings.Join(parts, ", ")
}
