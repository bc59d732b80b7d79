package scanner

import (
	"strconv"
	"unicode/utf8"

	"github.com/luanpanno/lox/internal/report"
	"github.com/luanpanno/lox/internal/token"
)

// Scanner turns a source string into tokens in a single left-to-right pass.
// One instance scans one string; it is not safe for concurrent use, but
// separate instances may scan concurrently.
type Scanner struct {
	source   string
	tokens   []token.Token
	reporter report.Reporter

	start   int
	current int
	line    int
}

func New(source string, reporter report.Reporter) Scanner {
	return Scanner{source: source, reporter: reporter, line: 1}
}

// ScanTokens consumes the whole source and returns the token sequence,
// always terminated by an EOF token. Lexical errors go to the reporter and
// never abort the scan: the offending lexeme yields no token and scanning
// resumes at the next character.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.start = s.current
	s.addToken(token.EOF)

	return s.tokens
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() {
	r := s.advance()
	switch r {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		if s.match('=') {
			s.addToken(token.BANG_EQUAL)
		} else {
			s.addToken(token.BANG)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EQUAL_EQUAL)
		} else {
			s.addToken(token.EQUAL)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LESS_EQUAL)
		} else {
			s.addToken(token.LESS)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GREATER_EQUAL)
		} else {
			s.addToken(token.GREATER)
		}
	case '/':
		if s.match('/') {
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.string()
	default:
		if isDigit(r) {
			s.number()
		} else if isAlpha(r) {
			s.identifier()
		} else {
			s.reporter.Error(s.line, "Unexpected character.")
		}
	}
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	return r
}

func (s *Scanner) addToken(t token.Type) {
	s.addTokenLiteral(t, token.NoLiteral)
}

func (s *Scanner) addTokenLiteral(tokenType token.Type, literal token.Literal) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.Token{Type: tokenType, Lexeme: text, Literal: literal, Line: s.line})
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}

	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	if r != expected {
		return false
	}

	s.advance()
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.source[s.current+1:])
	return r
}

func (s *Scanner) string() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Error(s.line, "Unterminated string.")
		return
	}

	// The closing quote.
	s.advance()

	// Trim the surrounding quotes.
	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, token.StringLiteral(value))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fractional part needs a digit after the dot; "123." stops before the
	// dot and leaves it for the next lexeme.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addTokenLiteral(token.NUMBER, token.NumberLiteral(value))
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, exists := keywords[text]
	if !exists {
		tokenType = token.IDENTIFIER
	}
	s.addToken(tokenType)
}

// blockComment consumes through the first "*/" after the opening "/*".
// Block comments do not nest. On end of input the error is reported and the
// cursor stays put: the closing-delimiter advance must not run past the
// input boundary.
func (s *Scanner) blockComment() {
	for !s.isAtEnd() && !(s.peek() == '*' && s.peekNext() == '/') {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Error(s.line, "Unterminated block comment.")
		return
	}

	// The closing "*/".
	s.advance()
	s.advance()
}
