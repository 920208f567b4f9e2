package main

import (
	"bytes"
	"fmt"

	"github.com/geoffreydatema/graveyard/parser"
)

const indentSize = 2

// printer walks an AST and renders it as an indented tree, one line per
// node naming its kind and a short literal description. It dispatches on
// node type with a single type switch (matching the rest of this module's
// AST handling) rather than a visitor/Accept pair per node.
type printer struct {
	indent int
	buf    bytes.Buffer
}

func printProgram(prog *parser.Program) string {
	p := &printer{}
	p.line("Program")
	p.indent += indentSize
	for _, stmt := range prog.Statements {
		p.printStatement(stmt)
	}
	p.indent -= indentSize
	return p.buf.String()
}

func (p *printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) block(stmts []parser.Statement) {
	p.indent += indentSize
	for _, s := range stmts {
		p.printStatement(s)
	}
	p.indent -= indentSize
}

func (p *printer) printStatement(stmt parser.Statement) {
	switch n := stmt.(type) {
	case *parser.ExpressionStatement:
		p.line("ExpressionStatement")
		p.indent += indentSize
		p.printExpression(n.Expression)
		p.indent -= indentSize
	case *parser.AssignmentStatement:
		p.line("Assignment %s =", n.Name)
		p.indent += indentSize
		p.printExpression(n.Value)
		p.indent -= indentSize
	case *parser.CompoundAssignStatement:
		p.line("CompoundAssign %s %s", n.Name, n.Op)
		p.indent += indentSize
		p.printExpression(n.Value)
		p.indent -= indentSize
	case *parser.IncDecStatement:
		p.line("IncDec %s %s", n.Name, n.Op)
	case *parser.ArrayAssignStatement:
		p.line("ArrayAssign %s", n.Name)
		p.indent += indentSize
		if n.Index != nil {
			p.printExpression(n.Index)
		}
		p.printExpression(n.Value)
		p.indent -= indentSize
	case *parser.ArrayAppendStatement:
		p.line("ArrayAppend %s", n.Name)
		p.indent += indentSize
		p.printExpression(n.Value)
		p.indent -= indentSize
	case *parser.HashtableAssignStatement:
		p.line("HashtableAssign %s", n.Name)
		p.indent += indentSize
		p.printExpression(n.Key)
		p.printExpression(n.Value)
		p.indent -= indentSize
	case *parser.TypeMemberAssignStatement:
		p.line("TypeMemberAssign %s.%s", n.InstanceName, n.Member)
		p.indent += indentSize
		p.printExpression(n.Value)
		p.indent -= indentSize
	case *parser.FunctionDefStatement:
		p.line("FunctionDef %s(%v)", n.Name, n.Params)
		p.block(n.Body)
	case *parser.IfStatement:
		p.line("If")
		p.indent += indentSize
		for _, branch := range n.Branches {
			p.line("Branch")
			p.indent += indentSize
			p.printExpression(branch.Condition)
			p.block(branch.Body)
			p.indent -= indentSize
		}
		if n.Else != nil {
			p.line("Else")
			p.block(n.Else)
		}
		p.indent -= indentSize
	case *parser.WhileStatement:
		p.line("While")
		p.indent += indentSize
		p.printExpression(n.Condition)
		p.block(n.Body)
		p.indent -= indentSize
	case *parser.ForStatement:
		p.line("For %s", n.Iterator)
		p.indent += indentSize
		p.printExpression(n.Limit)
		p.block(n.Body)
		p.indent -= indentSize
	case *parser.ReturnStatement:
		p.line("Return")
		if n.Value != nil {
			p.indent += indentSize
			p.printExpression(n.Value)
			p.indent -= indentSize
		}
	case *parser.PrintStatement:
		p.line("Print")
		p.indent += indentSize
		for _, a := range n.Args {
			p.printExpression(a)
		}
		p.indent -= indentSize
	case *parser.AssertStatement:
		p.line("Assert")
		p.indent += indentSize
		p.printExpression(n.Condition)
		p.indent -= indentSize
	case *parser.RaiseStatement:
		p.line("Raise")
		p.indent += indentSize
		p.printExpression(n.Message)
		p.indent -= indentSize
	case *parser.ContinueStatement:
		p.line("Continue")
	case *parser.BreakStatement:
		p.line("Break")
	case *parser.TypeDefStatement:
		p.line("TypeDef <%s> parents=%v", n.Name, n.Parents)
		p.indent += indentSize
		for _, m := range n.Members {
			if m.Method != nil {
				p.line("Method %s(%v)", m.Name, m.Method.Params)
				p.block(m.Method.Body)
			} else {
				p.line("Field %s", m.Name)
				p.indent += indentSize
				p.printExpression(m.Value)
				p.indent -= indentSize
			}
		}
		p.indent -= indentSize
	case *parser.TypeInstantiationStatement:
		p.line("TypeInstantiation %s = <%s>", n.InstanceName, n.TypeName)
	case *parser.NamespaceDefStatement:
		p.line("NamespaceDef %s", n.Name)
		p.block(n.Body)
	default:
		p.line("Statement %T", stmt)
	}
}

func (p *printer) printExpression(expr parser.Expression) {
	switch n := expr.(type) {
	case *parser.Identifier:
		p.line("Identifier %s", n.Name)
	case *parser.IntegerLiteral:
		p.line("Integer %d", n.Value)
	case *parser.FloatLiteral:
		p.line("Float %g", n.Value)
	case *parser.StringLiteral:
		p.line("String %q", n.Value)
	case *parser.BooleanLiteral:
		p.line("Boolean %v", n.Value)
	case *parser.NullLiteral:
		p.line("Null")
	case *parser.FormattedStringExpression:
		p.line("FormattedString")
		p.indent += indentSize
		for _, part := range n.Parts {
			p.printExpression(part)
		}
		p.indent -= indentSize
	case *parser.BinaryExpression:
		p.line("Binary %s", n.Op)
		p.indent += indentSize
		p.printExpression(n.Left)
		p.printExpression(n.Right)
		p.indent -= indentSize
	case *parser.UnaryExpression:
		p.line("Unary %s", n.Op)
		p.indent += indentSize
		p.printExpression(n.Right)
		p.indent -= indentSize
	case *parser.ArrayLiteral:
		p.line("Array")
		p.indent += indentSize
		for _, e := range n.Elements {
			p.printExpression(e)
		}
		p.indent -= indentSize
	case *parser.HashtableLiteral:
		p.line("Hashtable")
		p.indent += indentSize
		for i := range n.Keys {
			p.printExpression(n.Keys[i])
			p.printExpression(n.Values[i])
		}
		p.indent -= indentSize
	case *parser.RangeExpression:
		p.line("Range")
		p.indent += indentSize
		p.printExpression(n.Start)
		p.printExpression(n.End)
		p.indent -= indentSize
	case *parser.IndexExpression:
		p.line("Index")
		p.indent += indentSize
		p.printExpression(n.Left)
		p.printExpression(n.Index)
		p.indent -= indentSize
	case *parser.HashtableLookupExpression:
		p.line("HashtableLookup")
		p.indent += indentSize
		p.printExpression(n.Left)
		p.printExpression(n.Key)
		p.indent -= indentSize
	case *parser.FunctionCallExpression:
		p.line("Call %s", n.Name)
		p.indent += indentSize
		for _, a := range n.Args {
			p.printExpression(a)
		}
		p.indent -= indentSize
	case *parser.MemberLookupExpression:
		p.line("MemberLookup %s.%s", n.InstanceName, n.Member)
	case *parser.MethodCallExpression:
		p.line("MethodCall %s.%s", n.InstanceName, n.Method)
		p.indent += indentSize
		for _, a := range n.Args {
			p.printExpression(a)
		}
		p.indent -= indentSize
	case *parser.NamespaceAccessExpression:
		p.line("NamespaceAccess ::%s#%s", n.Namespace, n.Member)
	case *parser.ScanExpression:
		p.line("Scan")
		if n.Prompt != nil {
			p.indent += indentSize
			p.printExpression(n.Prompt)
			p.indent -= indentSize
		}
	default:
		p.line("Expression %T", expr)
	}
}
