package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokBad
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		// Python-style ** is the power operator.
		if l.i < len(l.s) && l.s[l.i] == '*' {
			l.i++
			return token{kind: tokCaret, text: "**"}
		}
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/"}
	case '^':
		l.i++
		return token{kind: tokCaret, text: "^"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		start := l.i
		l.i++
		for l.i < len(l.s) && isIdentContinue(rune(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[start:l.i]}
	}
	if ch == '.' || unicode.IsDigit(ch) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokBad, text: txt}
		}
		return token{kind: tokNumber, text: txt, num: f}
	}

	l.i++
	return token{kind: tokBad, text: string(ch)}
}

// scanNumber advances past a float literal: digits, optional fraction,
// optional signed exponent.
func scanNumber(s string, i int) int {
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

type parser struct {
	l       lexer
	cur     token
	varName string
}

func parse(src, varName string) (node, error) {
	p := &parser{l: lexer{s: src}, varName: varName}
	p.cur = p.l.next()
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("expr: empty expression: %w", ErrParse)
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("expr: unexpected %q after expression: %w", p.cur.text, ErrParse)
	}
	return n, nil
}

func (p *parser) advance() { p.cur = p.l.next() }

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.advance()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
	return left, nil
}

// parseUnary sits below power in the ladder so that -x^2 reads as -(x^2),
// matching the convention of the expressions users type.
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		neg := p.cur.kind == tokMinus
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if neg {
			return negNode{operand: operand}, nil
		}
		return operand, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.advance()
		// Right-associative; the exponent may carry its own sign.
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binNode{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.advance()
		return numNode(v), nil
	case tokIdent:
		name := p.cur.text
		p.advance()
		if p.cur.kind == tokLParen {
			fn, ok := builtins[name]
			if !ok {
				return nil, fmt.Errorf("expr: unknown function %q: %w", name, ErrParse)
			}
			p.advance()
			arg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			if p.cur.kind != tokRParen {
				return nil, fmt.Errorf("expr: expected ')' to close %s(...): %w", name, ErrParse)
			}
			p.advance()
			return callNode{fn: fn, arg: arg}, nil
		}
		if name == p.varName {
			return varNode{}, nil
		}
		if c, ok := constants[name]; ok {
			return numNode(c), nil
		}
		return nil, fmt.Errorf("expr: unknown identifier %q: %w", name, ErrParse)
	case tokLParen:
		p.advance()
		n, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("expr: expected ')': %w", ErrParse)
		}
		p.advance()
		return n, nil
	case tokEOF:
		return nil, fmt.Errorf("expr: unexpected end of expression: %w", ErrParse)
	default:
		return nil, fmt.Errorf("expr: unexpected %q: %w", p.cur.text, ErrParse)
	}
}
