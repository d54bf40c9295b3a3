package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Input limits, matching MAXDATELEN and MAXDATEFIELDS in PostgreSQL.
const (
	MaxDateLen    = 128
	MaxDateFields = 25
)

// TokenKind identifies the kind of field produced by Lex.
type TokenKind int

const (
	// TokenNumber is an unsigned integer or decimal number, e.g. 2024, 12.5,
	// or .5.
	TokenNumber TokenKind = iota

	// TokenString is a lowercase word, e.g. a month name or keyword.
	TokenString

	// TokenDate is a date with embedded separators, e.g. 2024-01-02,
	// 01/02/2024, 2.1.2024, or jan-02-2024.
	TokenDate

	// TokenTime is a time with embedded colons, e.g. 10:04:05.123.
	TokenTime

	// TokenTZ is a signed number or time, e.g. +05:30, -8, or -1.5.
	TokenTZ

	// TokenSpecial is a signed word, e.g. -infinity.
	TokenSpecial
)

// String returns the name of k.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenDate:
		return "date"
	case TokenTime:
		return "time"
	case TokenTZ:
		return "tz"
	case TokenSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Token is a single field lexed from a date/time string.
type Token struct {
	Kind TokenKind
	Text string
}

// lexer splits a date/time string into Tokens.
type lexer struct {
	src    string
	pos    int
	tokens []Token
}

// Lex breaks src into fields. Whitespace and punctuation other than the
// separators embedded in dates, times, and numbers delimit fields and are
// otherwise ignored. Words are lowercased. Returns ErrBadFormat for input
// longer than MaxDateLen, with more than MaxDateFields fields, or containing
// characters that cannot start a field.
func Lex(src string) ([]Token, error) {
	if len(src) > MaxDateLen {
		return nil, ErrBadFormat
	}

	l := &lexer{src: src, tokens: make([]Token, 0, 8)}
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch {
		case isSpace(ch):
			l.pos++
			continue
		case isDigit(ch):
			l.lexNumeric()
		case ch == '.' && isDigit(l.at(l.pos+1)):
			l.lexFraction()
		case ch == '+' || ch == '-':
			if !l.lexSigned() {
				return nil, ErrBadFormat
			}
		case isPunct(ch):
			// Other punctuation delimits fields.
			l.pos++
			continue
		default:
			if !l.lexWord() {
				return nil, ErrBadFormat
			}
		}

		if len(l.tokens) > MaxDateFields {
			return nil, ErrBadFormat
		}
	}

	return l.tokens, nil
}

// at returns the byte at index i or 0 if i is past the end of the input.
func (l *lexer) at(i int) byte {
	if i < len(l.src) {
		return l.src[i]
	}
	return 0
}

// emit appends a token of kind k containing the input from start to the
// current position.
func (l *lexer) emit(k TokenKind, start int) {
	l.tokens = append(l.tokens, Token{Kind: k, Text: strings.ToLower(l.src[start:l.pos])})
}

// skipDigits advances past a run of ASCII digits.
func (l *lexer) skipDigits() {
	for isDigit(l.at(l.pos)) {
		l.pos++
	}
}

// lexNumeric lexes a field starting with a digit: a number, a time, or a
// date.
func (l *lexer) lexNumeric() {
	start := l.pos
	l.skipDigits()

	switch ch := l.at(l.pos); ch {
	case ':':
		for isDigit(l.at(l.pos)) || l.at(l.pos) == ':' || l.at(l.pos) == '.' {
			l.pos++
		}
		l.emit(TokenTime, start)
	case '-', '/', '.':
		delim := ch
		l.pos++
		if !isDigit(l.at(l.pos)) {
			// Embedded text month.
			for isAlnum(l.at(l.pos)) || l.at(l.pos) == delim {
				l.pos++
			}
			l.emit(TokenDate, start)
			return
		}

		kind := TokenDate
		if delim == '.' {
			kind = TokenNumber
		}
		l.skipDigits()

		// Insist that the delimiters match to get a three-field date.
		if l.at(l.pos) == delim {
			kind = TokenDate
			for isDigit(l.at(l.pos)) || l.at(l.pos) == delim {
				l.pos++
			}
		}
		l.emit(kind, start)
	default:
		l.emit(TokenNumber, start)
	}
}

// lexFraction lexes a number with a leading decimal point.
func (l *lexer) lexFraction() {
	start := l.pos
	l.pos++
	l.skipDigits()
	l.emit(TokenNumber, start)
}

// lexSigned lexes a field starting with + or -: a numeric time zone or
// signed number, or a special word such as -infinity. Returns false if
// neither follows the sign.
func (l *lexer) lexSigned() bool {
	sign := l.src[l.pos]
	l.pos++
	for isSpace(l.at(l.pos)) {
		l.pos++
	}

	start := l.pos
	switch ch := l.at(l.pos); {
	case isDigit(ch):
		for isDigit(l.at(l.pos)) || l.at(l.pos) == ':' || l.at(l.pos) == '.' || l.at(l.pos) == '-' {
			l.pos++
		}
		l.tokens = append(l.tokens, Token{Kind: TokenTZ, Text: string(sign) + l.src[start:l.pos]})
		return true
	case isAlpha(ch):
		for isAlpha(l.at(l.pos)) {
			l.pos++
		}
		l.tokens = append(l.tokens, Token{
			Kind: TokenSpecial,
			Text: string(sign) + strings.ToLower(l.src[start:l.pos]),
		})
		return true
	default:
		return false
	}
}

// lexWord lexes a field starting with a letter: a month or day name, a
// keyword, a unit, a time zone abbreviation, or a date with an embedded text
// month such as jan-02-2024. Returns false if the input does not start with
// a letter.
func (l *lexer) lexWord() bool {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !xid.Start(r) {
			break
		}
		l.pos += size
	}
	if l.pos == start {
		return false
	}

	// Dates can have embedded '-', '/', or '.' separators.
	if ch := l.at(l.pos); (ch == '-' || ch == '/' || ch == '.') && isAlnum(l.at(l.pos+1)) {
		for isAlnum(l.at(l.pos)) || l.at(l.pos) == ch {
			l.pos++
		}
		l.emit(TokenDate, start)
		return true
	}

	l.emit(TokenString, start)
	return true
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
func isAlpha(ch byte) bool { return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' }
func isAlnum(ch byte) bool { return isDigit(ch) || isAlpha(ch) }
func isPunct(ch byte) bool { return '!' <= ch && ch <= '~' && !isAlnum(ch) }
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
