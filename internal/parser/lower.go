package parser

import (
	"strings"

	"sola/internal/ast"
)

// Lowering from the grammar structs into internal/ast. Defaults are
// resolved here: functions are public and nonpayable unless the header
// says otherwise, a function without a body stays unimplemented, and an
// unnamed function is the contract's fallback.

func lowerUnit(u *sourceUnit) *ast.SourceUnit {
	unit := &ast.SourceUnit{
		Pos:    lowerPos(u.Pos),
		EndPos: lowerPos(u.EndPos),
	}
	if u.Pragma != nil {
		unit.Pragma = &ast.Pragma{
			Pos:    lowerPos(u.Pragma.Pos),
			EndPos: lowerPos(u.Pragma.EndPos),
			Name:   u.Pragma.Name,
			Value:  strings.Join(u.Pragma.Value, ""),
		}
	}
	for _, c := range u.Contracts {
		unit.Contracts = append(unit.Contracts, lowerContract(c))
	}
	return unit
}

func lowerContract(c *contractDecl) *ast.Contract {
	contract := &ast.Contract{
		Pos:    lowerPos(c.Pos),
		EndPos: lowerPos(c.EndPos),
		Name:   lowerIdent(c.Name),
	}
	for _, b := range c.Bases {
		contract.Bases = append(contract.Bases, lowerBase(b))
	}
	for _, m := range c.Members {
		switch {
		case m.Constructor != nil:
			contract.Functions = append(contract.Functions, lowerConstructor(m.Constructor))
		case m.Function != nil:
			contract.Functions = append(contract.Functions, lowerFunction(m.Function))
		case m.Event != nil:
			contract.Events = append(contract.Events, lowerEvent(m.Event))
		case m.Modifier != nil:
			contract.Modifiers = append(contract.Modifiers, lowerModifier(m.Modifier))
		case m.StateVar != nil:
			contract.StateVars = append(contract.StateVars, lowerStateVar(m.StateVar))
		}
	}
	return contract
}

func lowerBase(b *baseSpec) *ast.BaseSpecifier {
	base := &ast.BaseSpecifier{
		Pos:    lowerPos(b.Pos),
		EndPos: lowerPos(b.EndPos),
		Name:   lowerIdent(b.Name),
	}
	if b.Arguments != nil {
		base.HasArguments = true
		base.Arguments = lowerArgs(b.Arguments)
	}
	return base
}

func lowerFunction(f *functionDecl) *ast.Function {
	fn := &ast.Function{
		Pos:         lowerPos(f.Pos),
		EndPos:      lowerPos(f.EndPos),
		Name:        lowerIdent(f.Name),
		IsFallback:  f.Name == nil,
		Params:      lowerParamList(f.Params),
		Returns:     lowerParamList(f.Returns),
		Implemented: f.Body != nil,
	}
	fn.Visibility, fn.Mutability, fn.Modifiers = lowerSpecs(f.Specs)
	return fn
}

func lowerConstructor(c *constructorDecl) *ast.Function {
	fn := &ast.Function{
		Pos:           lowerPos(c.Pos),
		EndPos:        lowerPos(c.EndPos),
		IsConstructor: true,
		Params:        lowerParamList(c.Params),
		Returns:       lowerParamList(c.Returns),
		Implemented:   c.Body != nil,
	}
	fn.Visibility, fn.Mutability, fn.Modifiers = lowerSpecs(c.Specs)
	return fn
}

func lowerSpecs(specs []*specifier) (ast.Visibility, ast.StateMutability, []*ast.ModifierInvocation) {
	visibility := ast.VisibilityPublic
	mutability := ast.MutabilityNonPayable
	var invocations []*ast.ModifierInvocation

	for _, s := range specs {
		switch {
		case s.Visibility != "":
			visibility = visibilityFromKeyword(s.Visibility)
		case s.Mutability != "":
			mutability = mutabilityFromKeyword(s.Mutability)
		case s.Invocation != nil:
			invocations = append(invocations, lowerInvocation(s.Invocation))
		}
	}
	return visibility, mutability, invocations
}

func lowerInvocation(inv *invocation) *ast.ModifierInvocation {
	m := &ast.ModifierInvocation{
		Pos:    lowerPos(inv.Pos),
		EndPos: lowerPos(inv.EndPos),
		Name:   lowerIdent(inv.Name),
	}
	if inv.Arguments != nil {
		m.HasArguments = true
		m.Arguments = lowerArgs(inv.Arguments)
	}
	return m
}

func lowerEvent(e *eventDecl) *ast.Event {
	return &ast.Event{
		Pos:    lowerPos(e.Pos),
		EndPos: lowerPos(e.EndPos),
		Name:   lowerIdent(e.Name),
		Params: lowerParamList(e.Params),
	}
}

func lowerModifier(m *modifierDecl) *ast.Modifier {
	return &ast.Modifier{
		Pos:    lowerPos(m.Pos),
		EndPos: lowerPos(m.EndPos),
		Name:   lowerIdent(m.Name),
		Params: lowerParamList(m.Params),
	}
}

func lowerStateVar(v *stateVarDecl) *ast.StateVar {
	return &ast.StateVar{
		Pos:    lowerPos(v.Pos),
		EndPos: lowerPos(v.EndPos),
		Type:   lowerType(v.Type),
		Name:   lowerIdent(v.Name),
	}
}

func lowerParamList(pl *paramList) *ast.ParamList {
	if pl == nil {
		return nil
	}
	list := &ast.ParamList{
		Pos:    lowerPos(pl.Pos),
		EndPos: lowerPos(pl.EndPos),
	}
	for _, p := range pl.Params {
		list.Params = append(list.Params, &ast.Param{
			Pos:    lowerPos(p.Pos),
			EndPos: lowerPos(p.EndPos),
			Type:   lowerType(p.Type),
			Name:   lowerIdent(p.Name),
		})
	}
	return list
}

func lowerType(t *typeName) *ast.TypeName {
	return &ast.TypeName{
		Pos:       lowerPos(t.Pos),
		EndPos:    lowerPos(t.EndPos),
		Name:      t.Name,
		ArrayDims: len(t.Dims),
	}
}

func lowerArgs(al *argList) []*ast.Argument {
	var args []*ast.Argument
	for _, a := range al.Args {
		args = append(args, &ast.Argument{
			Pos:    lowerPos(a.Pos),
			EndPos: lowerPos(a.EndPos),
			Text:   strings.Join(a.Tokens, " "),
		})
	}
	return args
}

func lowerIdent(id *identNode) *ast.Ident {
	if id == nil {
		return nil
	}
	return &ast.Ident{
		Pos:    lowerPos(id.Pos),
		EndPos: lowerPos(id.EndPos),
		Value:  id.Value,
	}
}
