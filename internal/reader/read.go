package reader

import "github.com/sunholo/pie/internal/perrors"

// sexprReader walks a fixed token buffer, producing SExpr trees. It holds
// no type-level knowledge -- that's Parse's job (parse.go).
type sexprReader struct {
	toks []Token
	pos  int
}

func (r *sexprReader) peek() Token  { return r.toks[r.pos] }
func (r *sexprReader) advance() Token {
	t := r.toks[r.pos]
	if t.Type != EOF {
		r.pos++
	}
	return t
}

// ReadAll parses every top-level form in src (already Normalize'd) into a
// slice of SExpr, one per form.
func ReadAll(src []byte, file string) ([]SExpr, error) {
	toks := Tokenize(src, file)
	r := &sexprReader{toks: toks}
	var out []SExpr
	for r.peek().Type != EOF {
		e, err := r.readOne()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ReadOne parses exactly one top-level form from src, erroring if anything
// beyond trailing atmosphere follows it. Used by the REPL, which reads one
// form at a time off the line buffer.
func ReadOne(src []byte, file string) (SExpr, error) {
	toks := Tokenize(src, file)
	r := &sexprReader{toks: toks}
	e, err := r.readOne()
	if err != nil {
		return nil, err
	}
	if r.peek().Type != EOF {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "trailing input after form: "+r.peek().Literal)
	}
	return e, nil
}

func (r *sexprReader) readOne() (SExpr, error) {
	t := r.peek()
	switch t.Type {
	case EOF:
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "unexpected end of input")
	case ILLEGAL:
		r.advance()
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "illegal character "+t.Literal+" at "+t.Position())
	case RPAREN:
		r.advance()
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "unexpected ) at "+t.Position())
	case DOT:
		r.advance()
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "unexpected . at "+t.Position())
	case QUOTE:
		r.advance()
		body, err := r.readOne()
		if err != nil {
			return nil, err
		}
		return Quoted{Body: body, Pos: t}, nil
	case LPAREN:
		return r.readList(t)
	case SYMBOL:
		r.advance()
		return Atom{Text: t.Literal, Pos: t}, nil
	default:
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "unrecognized token at "+t.Position())
	}
}

func (r *sexprReader) readList(open Token) (SExpr, error) {
	r.advance() // consume '('
	var items []SExpr
	for {
		t := r.peek()
		if t.Type == EOF {
			return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "unterminated list opened at "+open.Position())
		}
		if t.Type == RPAREN {
			r.advance()
			return List{Items: items, Pos: open}, nil
		}
		e, err := r.readOne()
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
}
