package reltime

// Unit is a calendar unit an expression can shift by or floor to.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = [...]string{
	UnitYear:   "year",
	UnitMonth:  "month",
	UnitWeek:   "week",
	UnitDay:    "day",
	UnitHour:   "hour",
	UnitMinute: "minute",
	UnitSecond: "second",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// ExprKind identifies an expression term.
type ExprKind int

const (
	ExprNow ExprKind = iota
	ExprAdd
	ExprSub
	ExprFloor
)

func (k ExprKind) String() string {
	switch k {
	case ExprNow:
		return "now"
	case ExprAdd:
		return "add"
	case ExprSub:
		return "subtract"
	case ExprFloor:
		return "floor"
	}
	return "unknown"
}

// Expr is one term of a relative time expression.
type Expr struct {
	Kind  ExprKind
	Value uint32 // set for ExprAdd and ExprSub
	Unit  Unit   // set for everything but ExprNow
}

func (e Expr) String() string {
	if e.Kind == ExprNow {
		return "now"
	}
	return e.Kind.String() + " " + e.Unit.String()
}

// Parser turns a token stream into expression terms.
type Parser struct {
	lex    *Lexer
	peeked *Token
	first  bool
}

func NewParser(text string) *Parser {
	return &Parser{lex: NewLexer(text), first: true}
}

// ParseAll parses every term of text. Handy for introspection; evaluation
// goes through Resolve, which streams terms instead.
func ParseAll(text string) ([]Expr, error) {
	p := NewParser(text)
	var exprs []Expr
	for {
		e, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return exprs, nil
		}
		exprs = append(exprs, e)
	}
}

// Next returns the next expression term. The boolean is false once the input
// is exhausted.
func (p *Parser) Next() (Expr, bool, error) {
	op, ok, err := p.nextOperator()
	if err != nil || !ok {
		return Expr{}, false, err
	}

	switch op {
	case TokenAdd:
		// "+now" anchors the expression just like a bare "now".
		if tok, ok, err := p.peek(); err != nil {
			return Expr{}, false, err
		} else if ok && tok.Kind == TokenNow {
			p.next()
			return Expr{Kind: ExprNow}, true, nil
		}
		value, err := p.nextValue()
		if err != nil {
			return Expr{}, false, err
		}
		unit, err := p.nextUnit()
		if err != nil {
			return Expr{}, false, err
		}
		return Expr{Kind: ExprAdd, Value: value, Unit: unit}, true, nil

	case TokenSub:
		value, err := p.nextValue()
		if err != nil {
			return Expr{}, false, err
		}
		unit, err := p.nextUnit()
		if err != nil {
			return Expr{}, false, err
		}
		return Expr{Kind: ExprSub, Value: value, Unit: unit}, true, nil

	default: // TokenFloor
		unit, err := p.nextUnit()
		if err != nil {
			return Expr{}, false, err
		}
		return Expr{Kind: ExprFloor, Unit: unit}, true, nil
	}
}

// nextOperator reads the operator opening a term. The very first term may
// omit a leading "+": "now-1d" and "1d+now" both start without one.
func (p *Parser) nextOperator() (TokenKind, bool, error) {
	if p.first {
		p.first = false
		if tok, ok, err := p.peek(); err != nil {
			return 0, false, err
		} else if ok && (tok.Kind == TokenNow || tok.Kind == TokenValue) {
			return TokenAdd, true, nil
		}
	}

	tok, ok, err := p.next()
	if err != nil || !ok {
		return 0, false, err
	}
	switch tok.Kind {
	case TokenAdd, TokenSub, TokenFloor:
		return tok.Kind, true, nil
	}
	return 0, false, &FormatError{Pos: tok.Pos, Want: "operator", Got: tok.Kind.String()}
}

func (p *Parser) nextValue() (uint32, error) {
	tok, ok, err := p.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &FormatError{Pos: len(p.lex.input), Want: "number", Got: "nothing"}
	}
	if tok.Kind != TokenValue {
		return 0, &FormatError{Pos: tok.Pos, Want: "number", Got: tok.Kind.String()}
	}
	return tok.Value, nil
}

func (p *Parser) nextUnit() (Unit, error) {
	tok, ok, err := p.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &FormatError{Pos: len(p.lex.input), Want: "unit", Got: "nothing"}
	}
	switch tok.Kind {
	case TokenYear:
		return UnitYear, nil
	case TokenMonth:
		return UnitMonth, nil
	case TokenWeek:
		return UnitWeek, nil
	case TokenDay:
		return UnitDay, nil
	case TokenHour:
		return UnitHour, nil
	case TokenMinute:
		return UnitMinute, nil
	case TokenSecond:
		return UnitSecond, nil
	}
	return 0, &FormatError{Pos: tok.Pos, Want: "unit", Got: tok.Kind.String()}
}

func (p *Parser) next() (Token, bool, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, true, nil
	}
	if !p.lex.Scan() {
		return Token{}, false, p.lex.Err()
	}
	return p.lex.Token(), true, nil
}

func (p *Parser) peek() (Token, bool, error) {
	if p.peeked == nil {
		if !p.lex.Scan() {
			return Token{}, false, p.lex.Err()
		}
		tok := p.lex.Token()
		p.peeked = &tok
	}
	return *p.peeked, true, nil
}
