package salarystructure

import (
	"fmt"
	"strings"
	"unicode"

	structureerrors "go-payroll/internal/salarystructure/errors"

	"github.com/shopspring/decimal"
)

// Formula is a parsed component expression. Only + - * / ( ), numeric
// literals and component-code identifiers are accepted; anything else is
// rejected at parse time so untrusted config can never execute logic.
type Formula struct {
	root expr
	refs []string
}

// ParseFormula parses src into an evaluable expression.
func ParseFormula(src string) (*Formula, error) {
	tokens, err := lexFormula(src)
	if err != nil {
		return nil, err
	}

	p := &formulaParser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected %q", structureerrors.ErrInvalidFormula, p.tokens[p.pos].text)
	}

	f := &Formula{root: root}
	collectRefs(root, map[string]bool{}, &f.refs)
	return f, nil
}

// Refs returns the component codes the formula depends on, deduplicated.
func (f *Formula) Refs() []string {
	return f.refs
}

// Eval computes the formula over already-resolved component amounts.
// Every referenced code must be present in env.
func (f *Formula) Eval(env map[string]decimal.Decimal) (decimal.Decimal, error) {
	return f.root.eval(env)
}

type expr interface {
	eval(env map[string]decimal.Decimal) (decimal.Decimal, error)
}

type numberLit struct {
	value decimal.Decimal
}

func (n numberLit) eval(map[string]decimal.Decimal) (decimal.Decimal, error) {
	return n.value, nil
}

type componentRef struct {
	code string
}

func (r componentRef) eval(env map[string]decimal.Decimal) (decimal.Decimal, error) {
	v, ok := env[r.code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", structureerrors.ErrUnknownComponent, r.code)
	}
	return v, nil
}

type binaryExpr struct {
	op    byte
	left  expr
	right expr
}

func (b binaryExpr) eval(env map[string]decimal.Decimal) (decimal.Decimal, error) {
	l, err := b.left.eval(env)
	if err != nil {
		return decimal.Zero, err
	}
	r, err := b.right.eval(env)
	if err != nil {
		return decimal.Zero, err
	}

	switch b.op {
	case '+':
		return l.Add(r), nil
	case '-':
		return l.Sub(r), nil
	case '*':
		return l.Mul(r), nil
	case '/':
		if r.IsZero() {
			return decimal.Zero, structureerrors.ErrDivisionByZero
		}
		return l.Div(r), nil
	}
	return decimal.Zero, fmt.Errorf("%w: operator %q", structureerrors.ErrInvalidFormula, b.op)
}

type negateExpr struct {
	inner expr
}

func (n negateExpr) eval(env map[string]decimal.Decimal) (decimal.Decimal, error) {
	v, err := n.inner.eval(env)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Neg(), nil
}

const (
	tokNumber = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type formulaToken struct {
	kind int
	text string
}

func lexFormula(src string) ([]formulaToken, error) {
	var tokens []formulaToken
	runes := []rune(src)

	for i := 0; i < len(runes); {
		ch := runes[i]
		switch {
		case unicode.IsSpace(ch):
			i++
		case ch == '(':
			tokens = append(tokens, formulaToken{tokLParen, "("})
			i++
		case ch == ')':
			tokens = append(tokens, formulaToken{tokRParen, ")"})
			i++
		case ch == '+' || ch == '-' || ch == '*' || ch == '/':
			tokens = append(tokens, formulaToken{tokOp, string(ch)})
			i++
		case unicode.IsDigit(ch):
			start := i
			sawDot := false
			for i < len(runes) && (unicode.IsDigit(runes[i]) || (runes[i] == '.' && !sawDot)) {
				if runes[i] == '.' {
					sawDot = true
				}
				i++
			}
			tokens = append(tokens, formulaToken{tokNumber, string(runes[start:i])})
		case unicode.IsLetter(ch) || ch == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, formulaToken{tokIdent, strings.ToUpper(string(runes[start:i]))})
		default:
			return nil, fmt.Errorf("%w: character %q", structureerrors.ErrInvalidFormula, string(ch))
		}
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", structureerrors.ErrInvalidFormula)
	}
	return tokens, nil
}

type formulaParser struct {
	tokens []formulaToken
	pos    int
}

func (p *formulaParser) peek() (formulaToken, bool) {
	if p.pos >= len(p.tokens) {
		return formulaToken{}, false
	}
	return p.tokens[p.pos], true
}

// parseExpr handles + and - (lowest precedence).
func (p *formulaParser) parseExpr() (expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOp || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: tok.text[0], left: left, right: right}
	}
}

// parseTerm handles * and /.
func (p *formulaParser) parseTerm() (expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOp || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: tok.text[0], left: left, right: right}
	}
}

func (p *formulaParser) parseFactor() (expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of expression", structureerrors.ErrInvalidFormula)
	}

	switch tok.kind {
	case tokNumber:
		p.pos++
		value, err := decimal.NewFromString(tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", structureerrors.ErrInvalidFormula, tok.text)
		}
		return numberLit{value: value}, nil

	case tokIdent:
		p.pos++
		return componentRef{code: tok.text}, nil

	case tokLParen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		tok, ok := p.peek()
		if !ok || tok.kind != tokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", structureerrors.ErrInvalidFormula)
		}
		p.pos++
		return inner, nil

	case tokOp:
		// unary minus only
		if tok.text == "-" {
			p.pos++
			inner, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return negateExpr{inner: inner}, nil
		}
	}

	return nil, fmt.Errorf("%w: unexpected %q", structureerrors.ErrInvalidFormula, tok.text)
}

func collectRefs(e expr, seen map[string]bool, out *[]string) {
	switch v := e.(type) {
	case componentRef:
		if !seen[v.code] {
			seen[v.code] = true
			*out = append(*out, v.code)
		}
	case binaryExpr:
		collectRefs(v.left, seen, out)
		collectRefs(v.right, seen, out)
	case negateExpr:
		collectRefs(v.inner, seen, out)
	}
}
