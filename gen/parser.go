// Package gen builds assertion call sites from assertion text at run time.
//
// It plays the role of the code generator for tools that read assertions
// from files or a prompt: operands are literals, and the expression and
// source trees it returns are the ones a generated call site would hold.
package gen

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/josharian/intern"
	"github.com/rami3l/goequator/assert"
	"github.com/rami3l/goequator/decompose"
	e "github.com/rami3l/goequator/errors"
	"github.com/rami3l/goequator/expr"
	"github.com/rami3l/goequator/rel"
	"github.com/sirupsen/logrus"
)

// DefaultTolerance is used by `~=` unless the parser is told otherwise.
const DefaultTolerance = 1e-9

type Parser struct {
	*Scanner
	prev, curr Token
	tolerance  float64

	errors *multierror.Error
	// Whether the parser has given up on the current assertion.
	panicMode bool
}

func NewParser() *Parser { return &Parser{tolerance: DefaultTolerance} }

// WithTolerance sets the tolerance of `~=`.
func (p *Parser) WithTolerance(tol float64) *Parser {
	p.tolerance = tol
	return p
}

// Program is one parsed assertion.
type Program struct {
	Text   string
	Expr   expr.Expr
	Source decompose.Source
}

// Site pins the program to a location.
func (prog *Program) Site(loc assert.Location) *assert.Site {
	return &assert.Site{Location: loc, Source: prog.Source}
}

// Check evaluates the program as if it were written at loc.
func (prog *Program) Check(loc assert.Location) error {
	return assert.Check(prog.Site(loc), prog.Expr)
}

// node is a subtree together with its source mirror.
type node struct {
	expr expr.Expr
	src  decompose.Source
}

/* Single-pass parsing */

func (p *Parser) grouping() node {
	n := p.assertion()
	p.consume(TRParen, "expect ')' after assertion")
	return n
}

func (p *Parser) comparison() node {
	lhs, lhsSrc := p.operand()

	p.advance()
	opTk := p.prev
	op, isRel := rel.ParseOp(opTk.String())
	if !isRel && opTk.Type != TTildeEqual {
		p.Error("expect comparison operator")
		return node{}
	}

	p.advance()
	rhs, rhsSrc := p.operand()

	if !isRel {
		return node{
			expr.Custom(Approx{p.tolerance}, lhs, rhs),
			decompose.Custom(intern.String(opTk.String()), lhsSrc, rhsSrc),
		}
	}
	return node{expr.CmpBy(op, lhs, rhs), decompose.Cmp(lhsSrc, rhsSrc)}
}

// operand reads the literal starting at p.prev.
func (p *Parser) operand() (Value, string) {
	tk := p.prev
	switch tk.Type {
	case TNum:
		return p.number(), intern.String(tk.String())
	case TMinus:
		p.advance()
		if p.prev.Type != TNum {
			p.Error("expect number after '-'")
			return Nil{}, ""
		}
		return -p.number(), intern.String(tk.String() + p.prev.String())
	case TStr:
		runes := tk.Runes
		// COPY the lexeme inside the quotes as a string.
		return Str(runes[1 : len(runes)-1]), intern.String(tk.String())
	case TTrue:
		return Bool(true), "true"
	case TFalse:
		return Bool(false), "false"
	case TNil:
		return Nil{}, "nil"
	default:
		p.Error("expect operand")
		return Nil{}, ""
	}
}

func (p *Parser) number() Num {
	val, err := strconv.ParseFloat(p.prev.String(), 64)
	if err != nil {
		p.Error(err.Error())
	}
	return Num(val)
}

func (p *Parser) and(lhs node) node {
	rhs := p.parsePrec(PrecAnd + 1)
	return node{expr.And(lhs.expr, rhs.expr), decompose.And(lhs.src, rhs.src)}
}

func (p *Parser) or(lhs node) node {
	rhs := p.parsePrec(PrecOr + 1)
	return node{expr.Or(lhs.expr, rhs.expr), decompose.Or(lhs.src, rhs.src)}
}

func (p *Parser) assertion() node { return p.parsePrec(PrecOr) }

type (
	PrefixFn = func(p *Parser) node
	InfixFn  = func(p *Parser, lhs node) node
)

type ParseRule struct {
	Prefix PrefixFn
	Infix  InfixFn
	Prec
}

var parseRules []ParseRule

func init() {
	parseRules = []ParseRule{
		TLParen: {(*Parser).grouping, nil, PrecNone},
		TMinus:  {(*Parser).comparison, nil, PrecNone},
		TNum:    {(*Parser).comparison, nil, PrecNone},
		TStr:    {(*Parser).comparison, nil, PrecNone},
		TTrue:   {(*Parser).comparison, nil, PrecNone},
		TFalse:  {(*Parser).comparison, nil, PrecNone},
		TNil:    {(*Parser).comparison, nil, PrecNone},
		TAnd:    {nil, (*Parser).and, PrecAnd},
		TOr:     {nil, (*Parser).or, PrecOr},
		TEOF:    {},
	}
}

func (p *Parser) parsePrec(prec Prec) node {
	p.advance()

	// Parse LHS.
	prefix := parseRules[p.prev.Type].Prefix
	if prefix == nil {
		p.Error("expect comparison")
		return node{}
	}
	lhs := prefix(p)

	// Parse RHS if there's one maintaining rule.Prec >= prec.
	for {
		rule := parseRules[p.curr.Type]
		if rule.Infix == nil || rule.Prec < prec {
			break
		}
		p.advance()
		lhs = rule.Infix(p, lhs)
	}
	return lhs
}

type Prec int

const (
	PrecNone Prec = iota
	PrecOr        // || or
	PrecAnd       // && and
	PrecPrimary
)

/* Parsing helpers */

func (p *Parser) advance() {
	p.prev = p.curr
	for {
		// Skip until the first non-TErr token.
		if p.curr = p.ScanToken(); p.curr.Type != TErr {
			break
		}
		p.ErrorAtCurr(*p.curr.Error)
	}
}

func (p *Parser) consume(ty TokenType, errorMsg string) {
	if p.curr.Type != ty {
		p.ErrorAtCurr(errorMsg)
		return
	}
	p.advance()
}

// Parse turns one assertion into a program. Parsing stops reporting at the
// first error, later ones are usually caused by it.
func (p *Parser) Parse(src string) (*Program, error) {
	p.Scanner = NewScanner(src)
	p.errors, p.panicMode = nil, false
	p.advance()

	n := p.assertion()
	p.consume(TEOF, "expect end of assertion")

	if err := p.errors.ErrorOrNil(); err != nil {
		return nil, err
	}
	prog := &Program{Text: src, Expr: n.expr, Source: n.src}
	logrus.Debugln(Dump(prog.Source))
	return prog, nil
}

// Parse is a shorthand for NewParser().Parse.
func Parse(src string) (*Program, error) { return NewParser().Parse(src) }

/* Error handling */

func (p *Parser) ErrorAt(tk Token, reason string) {
	// Only the first error of a broken assertion is meaningful.
	if p.panicMode {
		return
	}
	p.panicMode = true

	var tkStr string
	switch tk.Type {
	case TEOF:
		tkStr = "end of input"
	case TIdent:
		tkStr = fmt.Sprintf("identifier `%s`", tk)
	default:
		tkStr = fmt.Sprintf("`%s`", tk)
	}
	err := &e.ParseError{Line: tk.Line, Col: tk.Col, Reason: fmt.Sprintf("at %s, %s", tkStr, reason)}
	p.errors = multierror.Append(p.errors, err)
}

func (p *Parser) Error(reason string)       { p.ErrorAt(p.prev, reason) }
func (p *Parser) ErrorAtCurr(reason string) { p.ErrorAt(p.curr, reason) }
