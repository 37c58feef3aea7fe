package ast

// Program is an ordered list of top-level statements.
// Order is source order and is semantically relevant, since load
// statements take effect in the order they appear.
type Program struct {
	Statements []Statement
}

// NewProgram
//
func NewProgram() *Program {
	return &Program{}
}

// Add appends a statement to the program.
//
func (p *Program) Add(s Statement) {
	p.Statements = append(p.Statements, s)
}

// Statement - Only load statements are implemented today.
//
type Statement interface {
	stmt()
}

// LoadStmt imports named symbols from another module.
//
type LoadStmt struct {
	Module  string
	Symbols []Symbol // Never empty on a successfully parsed statement
}

func (*LoadStmt) stmt() {}

// Symbol is one imported name: Local is the name bound in the importing
// scope, Exported the name as published by the target module. When the
// source spells only a string, the two are equal.
//
type Symbol struct {
	Local    string
	Exported string
}
