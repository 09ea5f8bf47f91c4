package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
)

// Scan tokenizes source. The returned tokens always end with an EOF token,
// even when err reports lexical errors.
func Scan(source string) ([]token.Token, error) {
	return New(source).Scan()
}

type Scanner struct {
	src []rune

	start   int
	current int
	line    int

	tokens []token.Token
	errs   *loxerr.ErrorSet
}

func New(source string) *Scanner {
	return &Scanner{
		src:  []rune(source),
		line: 1,
		errs: loxerr.NewErrorSet(),
	}
}

func (s *Scanner) Scan() ([]token.Token, error) {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.Token{
		Kind: token.EOF,
		Line: s.line,
	})

	return s.tokens, s.errs.Defer(nil)
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.add(token.LeftParen)
	case ')':
		s.add(token.RightParen)
	case '{':
		s.add(token.LeftBrace)
	case '}':
		s.add(token.RightBrace)
	case ',':
		s.add(token.Comma)
	case '.':
		s.add(token.Dot)
	case '-':
		s.add(token.Minus)
	case '+':
		s.add(token.Plus)
	case ';':
		s.add(token.Semicolon)
	case '*':
		s.add(token.Star)
	case '!':
		s.add(s.either('=', token.BangEqual, token.Bang))
	case '=':
		s.add(s.either('=', token.EqualEqual, token.Equal))
	case '<':
		s.add(s.either('=', token.LessEqual, token.Less))
	case '>':
		s.add(s.either('=', token.GreaterEqual, token.Greater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.current++
			}
		} else {
			s.add(token.Slash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.string()
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			s.errs.Add(loxerr.New(s.line, fmt.Sprintf(" at '%c' ", c), "Unexpected character."))
		}
	}
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.atEnd() {
		s.errs.Add(loxerr.New(s.line, "", "Unterminated string."))
		return
	}

	// closing quote
	s.current++

	text := string(s.src[s.start+1 : s.current-1])
	s.addLiteral(token.String, value.String(text))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.current++
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	n, err := strconv.ParseFloat(s.lexeme(), 64)
	if err != nil {
		s.errs.Add(loxerr.New(s.line, fmt.Sprintf(" at '%s' ", s.lexeme()), "Invalid number."))
		return
	}

	s.addLiteral(token.Number, value.Number(n))
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}

	s.add(token.Lookup(s.lexeme()))
}

func (s *Scanner) add(kind token.Kind) {
	s.addLiteral(kind, nil)
}

func (s *Scanner) addLiteral(kind token.Kind, literal value.Value) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  s.lexeme(),
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) lexeme() string {
	return string(s.src[s.start:s.current])
}

func (s *Scanner) either(next rune, matched, otherwise token.Kind) token.Kind {
	if s.match(next) {
		return matched
	}

	return otherwise
}

func (s *Scanner) match(expected rune) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}

	s.current++
	return true
}

func (s *Scanner) advance() rune {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}

	return s.src[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.src) {
		return 0
	}

	return s.src[s.current+1]
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
