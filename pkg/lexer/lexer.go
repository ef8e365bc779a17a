// Package lexer implements Mython's on-demand tokenizer: a pull-model
// scanner that synthesizes Indent/Dedent/Newline/Eof tokens from
// off-side-rule whitespace.
//
// Design: hand-written scanner, buffered tokens with a cursor, scan one
// step at a time, covering the full off-side-rule and escape semantics
// Mython requires.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/pkg/errors"

	"github.com/GriffinCanCode/mython/pkg/token"
)

// IndentWidth is the fixed number of spaces per indentation level.
const IndentWidth = 2

// Error is a lexer error: misaligned indentation or an Expect*
// mismatch. It is fatal to the current interpretation run.
type Error struct {
	Line, Col int
	Msg       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer pulls characters lazily from r and materializes tokens on
// demand into an internal buffer. Current/Next never look behind the
// cursor; once Eof is current, further Next calls keep returning Eof.
//
// If a scanning error occurs (misaligned indentation), the buffer is
// terminated with an Eof token and Err returns the cause; the caller
// must check Err after driving the lexer to completion, or after any
// Next/Current call it depends on.
type Lexer struct {
	src *bufio.Reader

	tokens []token.Token
	pos    int

	level     int // current indent level, in units of IndentWidth
	line, col int
	err       error
}

// New constructs a Lexer over r and scans its first token so that
// Current is immediately valid.
func New(r io.Reader) *Lexer {
	l := &Lexer{src: bufio.NewReader(r), line: 1, col: 1}
	l.step()
	return l
}

// Current returns the current token without advancing.
func (l *Lexer) Current() token.Token {
	return l.tokens[l.pos]
}

// Next advances one position and returns the new current token. Once
// Eof is current, it keeps returning Eof.
func (l *Lexer) Next() token.Token {
	if l.pos == len(l.tokens)-1 && l.tokens[l.pos].Type != token.Eof {
		l.step()
	}
	if l.pos < len(l.tokens)-1 {
		l.pos++
	}
	return l.tokens[l.pos]
}

// Err returns the first scanning error encountered, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Expect asserts the current token's variant, failing with a lexer
// error otherwise.
func (l *Lexer) Expect(tt token.Type) error {
	cur := l.Current()
	if cur.Type != tt {
		return l.errorf("expected %s, got %s", tt, cur.Type)
	}
	return nil
}

// ExpectValue asserts the current token's variant and payload.
func (l *Lexer) ExpectValue(tt token.Type, want token.Token) error {
	cur := l.Current()
	if cur.Type != tt || !cur.Equal(want) {
		return l.errorf("expected %s with matching value, got %s", tt, cur)
	}
	return nil
}

// ExpectNext advances and asserts the new current token's variant.
func (l *Lexer) ExpectNext(tt token.Type) error {
	l.Next()
	return l.Expect(tt)
}

// ExpectNextValue advances and asserts the new current token's variant
// and payload.
func (l *Lexer) ExpectNextValue(tt token.Type, want token.Token) error {
	l.Next()
	return l.ExpectValue(tt, want)
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	cur := l.Current()
	return errors.WithStack(&Error{Line: cur.Line, Col: cur.Col, Msg: fmt.Sprintf(format, args...)})
}

// step scans forward until at least one token has been appended to the
// buffer, then returns. A single call may append several tokens (e.g.
// multiple Dedents, or a trailing Newline+Dedents+Eof sequence).
func (l *Lexer) step() {
	if l.err != nil {
		return
	}
	for {
		if l.atEnd() {
			l.emitEOF()
			return
		}

		if l.atLineStart() {
			emitted, blank, err := l.handleIndentation()
			if err != nil {
				l.fail(err)
				return
			}
			if blank {
				continue
			}
			if emitted {
				return
			}
			// Same level as before: scan the line's first token below.
		}

		l.skipInline()
		if l.atEnd() {
			continue
		}

		c, _ := l.peek()
		switch {
		case c == '\n':
			l.advance()
			l.line++
			l.col = 1
			if l.lastType() != token.Indent {
				l.append(token.Newline, 0, "")
				return
			}
			continue
		case unicode.IsDigit(c):
			l.scanNumber()
			return
		case unicode.IsLetter(c) || c == '_':
			l.scanIdentifier()
			return
		case c == '\'' || c == '"':
			l.scanString(c)
			return
		case c == '+' || c == '-' || c == '*' || c == '/' || c == ':' ||
			c == '(' || c == ')' || c == ',' || c == '.':
			l.advance()
			l.append(token.Char, 0, string(c))
			return
		case c == '<' || c == '>' || c == '!' || c == '=':
			l.scanComparison(c)
			return
		default:
			l.advance()
			l.append(token.Char, 0, string(c))
			return
		}
	}
}

func (l *Lexer) fail(err error) {
	l.err = err
	l.append(token.Eof, 0, "")
}

func (l *Lexer) atLineStart() bool {
	return len(l.tokens) == 0 || l.lastType() == token.Newline
}

func (l *Lexer) lastType() token.Type {
	if len(l.tokens) == 0 {
		return token.Newline
	}
	return l.tokens[len(l.tokens)-1].Type
}

// handleIndentation reads the leading run of spaces on a logical line.
// blank is true if the line was blank or a comment and should be
// skipped without affecting the indent level. emitted is true if one
// or more Indent/Dedent tokens were appended.
func (l *Lexer) handleIndentation() (emitted, blank bool, err error) {
	startLine, startCol := l.line, l.col
	spaces := 0
	for {
		c, ok := l.peek()
		if !ok || c != ' ' {
			break
		}
		l.advance()
		spaces++
	}

	c, ok := l.peek()
	if !ok || c == '\n' || c == '#' {
		// Blank or comment-only line: does not change indent level.
		if ok && c == '#' {
			l.skipComment()
			c, ok = l.peek()
		}
		if ok && c == '\n' {
			l.advance()
			l.line++
			l.col = 1
		}
		return false, true, nil
	}

	if spaces%IndentWidth != 0 {
		return false, false, errors.WithStack(&Error{
			Line: startLine, Col: startCol,
			Msg: fmt.Sprintf("indentation of %d spaces is not a multiple of %d", spaces, IndentWidth),
		})
	}
	newLevel := spaces / IndentWidth

	switch {
	case newLevel > l.level:
		for ; l.level < newLevel; l.level++ {
			l.append(token.Indent, 0, "")
		}
		return true, false, nil
	case newLevel < l.level:
		for ; l.level > newLevel; l.level-- {
			l.append(token.Dedent, 0, "")
		}
		return true, false, nil
	default:
		return false, false, nil
	}
}

func (l *Lexer) skipInline() {
	for {
		c, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case c == ' ' || c == '\t':
			l.advance()
		case c == '#':
			l.skipComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for {
		c, ok := l.peek()
		if !ok || c == '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanNumber() {
	startLine, startCol := l.line, l.col
	var n int64
	for {
		c, ok := l.peek()
		if !ok || !unicode.IsDigit(c) {
			break
		}
		l.advance()
		n = n*10 + int64(c-'0')
	}
	l.tokens = append(l.tokens, token.Token{Type: token.Number, Num: n, Line: startLine, Col: startCol})
}

func (l *Lexer) scanIdentifier() {
	startLine, startCol := l.line, l.col
	var runes []rune
	for {
		c, ok := l.peek()
		if !ok || !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_') {
			break
		}
		l.advance()
		runes = append(runes, c)
	}
	text := string(runes)
	if kw, ok := token.Keywords[text]; ok {
		l.tokens = append(l.tokens, token.Token{Type: kw, Line: startLine, Col: startCol})
		return
	}
	l.tokens = append(l.tokens, token.Token{Type: token.Id, Str: text, Line: startLine, Col: startCol})
}

func (l *Lexer) scanString(quote rune) {
	startLine, startCol := l.line, l.col
	l.advance() // opening quote
	var runes []rune
	for {
		c, ok := l.peek()
		if !ok {
			l.emitEOF()
			return
		}
		if c == quote {
			l.advance()
			break
		}
		if c == '\\' {
			l.advance()
			esc, ok := l.peek()
			if !ok {
				l.emitEOF()
				return
			}
			l.advance()
			switch esc {
			case '"':
				runes = append(runes, '"')
			case '\'':
				runes = append(runes, '\'')
			case 't':
				runes = append(runes, '\t')
			case 'n':
				runes = append(runes, '\n')
			default:
				// Unrecognized escape: drop the backslash and the
				// escaped character silently (matches the reference
				// implementation this spec was distilled from).
			}
			continue
		}
		l.advance()
		runes = append(runes, c)
	}
	l.tokens = append(l.tokens, token.Token{Type: token.String, Str: string(runes), Line: startLine, Col: startCol})
}

func (l *Lexer) scanComparison(c rune) {
	startLine, startCol := l.line, l.col
	l.advance()
	next, ok := l.peek()
	if ok && next == '=' {
		l.advance()
		var tt token.Type
		switch c {
		case '=':
			tt = token.Eq
		case '!':
			tt = token.NotEq
		case '<':
			tt = token.LessOrEq
		case '>':
			tt = token.GreaterOrEq
		}
		l.tokens = append(l.tokens, token.Token{Type: tt, Line: startLine, Col: startCol})
		return
	}
	// Bare <, >, = emit a Char of that character. A bare ! (not
	// followed by =) also emits Char('!') — source behavior, not an
	// error.
	l.tokens = append(l.tokens, token.Token{Type: token.Char, Str: string(c), Line: startLine, Col: startCol})
}

func (l *Lexer) emitEOF() {
	if l.lastType() != token.Newline {
		l.append(token.Newline, 0, "")
	}
	for l.level > 0 {
		l.level--
		l.append(token.Dedent, 0, "")
	}
	l.append(token.Eof, 0, "")
}

func (l *Lexer) append(tt token.Type, num int64, str string) {
	l.tokens = append(l.tokens, token.Token{Type: tt, Num: num, Str: str, Line: l.line, Col: l.col})
}

func (l *Lexer) peek() (rune, bool) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = l.src.UnreadRune()
	return c, true
}

func (l *Lexer) advance() rune {
	c, _, err := l.src.ReadRune()
	if err != nil {
		return 0
	}
	if c == '\n' {
		// line/col bookkeeping for \n is handled by callers that
		// special-case it; advance only tracks column for all other
		// runes.
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) atEnd() bool {
	_, ok := l.peek()
	return !ok
}
