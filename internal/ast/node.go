package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (u *SourceUnit) NodePos() Position    { return u.Pos }
func (u *SourceUnit) NodeEndPos() Position { return u.EndPos }
func (*SourceUnit) NodeType() NodeType     { return SOURCE_UNIT }

func (p *Pragma) NodePos() Position    { return p.Pos }
func (p *Pragma) NodeEndPos() Position { return p.EndPos }
func (*Pragma) NodeType() NodeType     { return PRAGMA }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (c *Contract) NodePos() Position    { return c.Pos }
func (c *Contract) NodeEndPos() Position { return c.EndPos }
func (*Contract) NodeType() NodeType     { return CONTRACT }

func (b *BaseSpecifier) NodePos() Position    { return b.Pos }
func (b *BaseSpecifier) NodeEndPos() Position { return b.EndPos }
func (*BaseSpecifier) NodeType() NodeType     { return BASE_SPECIFIER }

func (v *StateVar) NodePos() Position    { return v.Pos }
func (v *StateVar) NodeEndPos() Position { return v.EndPos }
func (*StateVar) NodeType() NodeType     { return STATE_VAR }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (pl *ParamList) NodePos() Position    { return pl.Pos }
func (pl *ParamList) NodeEndPos() Position { return pl.EndPos }
func (*ParamList) NodeType() NodeType      { return PARAM_LIST }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (t *TypeName) NodePos() Position    { return t.Pos }
func (t *TypeName) NodeEndPos() Position { return t.EndPos }
func (*TypeName) NodeType() NodeType     { return TYPE_NAME }

func (m *ModifierInvocation) NodePos() Position    { return m.Pos }
func (m *ModifierInvocation) NodeEndPos() Position { return m.EndPos }
func (*ModifierInvocation) NodeType() NodeType     { return MODIFIER_INVOCATION }

func (a *Argument) NodePos() Position    { return a.Pos }
func (a *Argument) NodeEndPos() Position { return a.EndPos }
func (*Argument) NodeType() NodeType     { return ARGUMENT }

func (e *Event) NodePos() Position    { return e.Pos }
func (e *Event) NodeEndPos() Position { return e.EndPos }
func (*Event) NodeType() NodeType     { return EVENT }

func (m *Modifier) NodePos() Position    { return m.Pos }
func (m *Modifier) NodeEndPos() Position { return m.EndPos }
func (*Modifier) NodeType() NodeType     { return MODIFIER }
