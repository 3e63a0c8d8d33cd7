package gen

import "github.com/rami3l/goequator/utils"

type Scanner struct {
	start, curr, line, col int
	startLine, startCol    int
	src                    []rune
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: []rune(src), line: 1, col: 1}
}

func (s *Scanner) ScanToken() Token {
	s.skipWhitespace()
	s.start, s.startLine, s.startCol = s.curr, s.line, s.col
	if s.isAtEnd() {
		return s.makeToken(TEOF)
	}

	c := s.advance()
	switch {
	case isDigit(c): // Number literal.
		// Consume the integral part.
		for isDigit(s.peek()) {
			s.advance()
		}

		// Consume the fractional part if it exists.
		if s.peek() == '.' && isDigit(s.peekNext()) {
			s.advance()
			for isDigit(s.peek()) {
				s.advance()
			}
		}

		return s.makeToken(TNum)

	case isAlpha(c): // Keyword.
		for isAlpha(s.peek()) || isDigit(s.peek()) {
			s.advance()
		}
		return s.makeToken(s.identType())
	}

	switch c {
	case '(':
		return s.makeToken(TLParen)
	case ')':
		return s.makeToken(TRParen)
	case '-':
		return s.makeToken(TMinus)

	case '&':
		if s.match('&') {
			return s.makeToken(TAnd)
		}
		return s.errorToken("expect '&&'")

	case '|':
		if s.match('|') {
			return s.makeToken(TOr)
		}
		return s.errorToken("expect '||'")

	case '~':
		if s.match('=') {
			return s.makeToken(TTildeEqual)
		}
		return s.errorToken("expect '~='")

	case '!':
		if s.match('=') {
			return s.makeToken(TBangEqual)
		}
		return s.errorToken("negation is not supported, flip the operator instead")

	case '=':
		if s.match('=') {
			return s.makeToken(TEqualEqual)
		}
		return s.errorToken("expect '=='")

	case '<':
		if s.match('=') {
			return s.makeToken(TLessEqual)
		}
		return s.makeToken(TLess)

	case '>':
		if s.match('=') {
			return s.makeToken(TGreaterEqual)
		}
		return s.makeToken(TGreater)

	case '"': // String literal.
		for {
			switch s.peek() {
			case '"':
				// Consume the closing quote.
				s.advance()
				return s.makeToken(TStr)
			default:
				if s.isAtEnd() {
					return s.errorToken("unterminated string")
				}
				s.advance()
			}
		}
	}

	return s.errorToken("unexpected character")
}

// skipWhitespace makes the Scanner skip consecutive whitespaces and comments.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t', '\n':
			s.advance()

		case '/': // Skip comments.
			if s.peekNext() != '/' {
				return
			}
			// Skip until the end of the line.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}

		default:
			return
		}
	}
}

func (s *Scanner) identType() TokenType {
	switch string(s.src[s.start:s.curr]) {
	case "and":
		return TAnd
	case "or":
		return TOr
	case "true":
		return TTrue
	case "false":
		return TFalse
	case "nil":
		return TNil
	default:
		return TIdent
	}
}

func (s *Scanner) isAtEnd() bool { return s.curr >= len(s.src) }

func (s *Scanner) advance() (res rune) {
	res = s.src[s.curr]
	s.curr++
	if res == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return
}

func (s *Scanner) peek() (res rune) {
	if s.isAtEnd() {
		return
	}
	return s.src[s.curr]
}

func (s *Scanner) peekNext() (res rune) {
	if s.isAtEnd() || s.curr+1 >= len(s.src) {
		return
	}
	return s.src[s.curr+1]
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) makeToken(ty TokenType) Token {
	return Token{
		Type:  ty,
		Runes: s.src[s.start:s.curr],
		Line:  s.startLine,
		Col:   s.startCol,
	}
}

func (s *Scanner) errorToken(reason string) Token {
	tk := s.makeToken(TErr)
	tk.Error = utils.Ref(reason)
	return tk
}

func isDigit(c rune) bool { return '0' <= c && c <= '9' }
func isAlpha(c rune) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }

type Token struct {
	Type      TokenType
	Runes     []rune
	Line, Col int

	// Error message for TErr.
	Error *string
}

func (t Token) String() string { return string(t.Runes) }

//go:generate stringer -type=TokenType
type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TMinus
	TBangEqual
	TEqualEqual
	TGreater
	TGreaterEqual
	TLess
	TLessEqual
	TTildeEqual
	TAnd
	TOr
	TIdent
	TStr
	TNum
	TFalse
	TNil
	TTrue
	TErr
	TEOF
)
