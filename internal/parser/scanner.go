package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"triadc/token"
)

type scanState int

const (
	stateStart scanState = iota
	stateIdentifier
	stateNumber
	stateAssign
	stateComment
)

type ScanError struct {
	Message  string
	Position token.Position // line, column, offset
	Length   int            // optional: how many characters it covers
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// ScanResult is either a token or a lexical error; Err != nil selects the error arm.
type ScanResult struct {
	Token token.Token
	Err   *ScanError
}

func (r ScanResult) IsError() bool {
	return r.Err != nil
}

func (r ScanResult) Pos() token.Position {
	if r.Err != nil {
		return r.Err.Position
	}
	return r.Token.Position
}

type Scanner struct {
	source  string
	results []ScanResult
	state   scanState
	buffer  strings.Builder
	start   token.Position // where the buffered lexeme begins
	offset  int
	line    int
	column  int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize runs a fresh scanner over source.
func Tokenize(source string) []ScanResult {
	return NewScanner(source).Scan()
}

// Scan makes a single forward pass over the source. Lexical errors are
// collected in order next to the tokens and never stop the scan.
func (s *Scanner) Scan() []ScanResult {
	for s.offset < len(s.source) {
		r, size := utf8.DecodeRuneInString(s.source[s.offset:])
		for !s.step(r, size) {
			// the state handed the rune back to stateStart
		}
		s.advance(r, size)
	}
	s.flush()

	for i, res := range s.results {
		s.results[i] = checkResult(res)
	}
	return s.results
}

// step feeds one rune to the current state and reports whether it was consumed.
func (s *Scanner) step(r rune, size int) bool {
	switch s.state {
	case stateStart:
		s.scanStart(r, size)
		return true

	case stateIdentifier:
		if isLetter(r) || isDigit(r) {
			s.buffer.WriteRune(r)
			return true
		}
		s.addBuffered(token.LookupIdent(s.buffer.String()))
		s.state = stateStart
		return false

	case stateNumber:
		if isDigit(r) || (r == '.' && !strings.Contains(s.buffer.String(), ".")) {
			s.buffer.WriteRune(r)
			return true
		}
		s.addConstant()
		s.state = stateStart
		return false

	case stateAssign:
		s.state = stateStart
		if r == '=' {
			s.buffer.WriteRune(r)
			s.addBuffered(token.ASSIGN)
			return true
		}
		s.addBuffered(token.DELIMITER)
		return false

	case stateComment:
		if r == '}' {
			s.state = stateStart
		}
		return true
	}
	return true
}

func (s *Scanner) scanStart(r rune, size int) {
	switch {
	case isWhitespace(r):
		// skipped

	case isLetter(r):
		s.begin(r)
		s.state = stateIdentifier

	case isDigit(r):
		s.begin(r)
		s.state = stateNumber

	case r == '{':
		if strings.ContainsRune(s.source[s.offset+size:], '}') {
			s.state = stateComment
			return
		}
		s.reportError("unterminated comment", s.position(), 1)

	case r == ':':
		s.begin(r)
		s.state = stateAssign

	default:
		text := string(r)
		kind, ok := token.Lookup(text)
		if !ok {
			kind = token.DELIMITER
		}
		s.results = append(s.results, ScanResult{Token: token.Token{
			Kind:     kind,
			Text:     text,
			Position: s.position(),
		}})
	}
}

// flush emits whatever lexeme is still buffered when the input ends.
func (s *Scanner) flush() {
	switch s.state {
	case stateIdentifier:
		s.addBuffered(token.LookupIdent(s.buffer.String()))
	case stateNumber:
		s.addConstant()
	case stateAssign:
		s.addBuffered(token.DELIMITER)
	}
	s.state = stateStart
}

func (s *Scanner) begin(r rune) {
	s.buffer.Reset()
	s.buffer.WriteRune(r)
	s.start = s.position()
}

func (s *Scanner) addBuffered(kind token.Kind) {
	s.results = append(s.results, ScanResult{Token: token.Token{
		Kind:     kind,
		Text:     s.buffer.String(),
		Position: s.start,
	}})
	s.buffer.Reset()
}

// addConstant emits the buffered number; "1." is kept as "1".
func (s *Scanner) addConstant() {
	text := strings.TrimSuffix(s.buffer.String(), ".")
	s.buffer.Reset()
	s.buffer.WriteString(text)
	s.addBuffered(token.CONSTANT)
}

func (s *Scanner) advance(r rune, size int) {
	s.offset += size
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}

func (s *Scanner) position() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.offset}
}

func (s *Scanner) reportError(message string, pos token.Position, length int) {
	s.results = append(s.results, ScanResult{Err: &ScanError{
		Message:  message,
		Position: pos,
		Length:   length,
	}})
}

// checkResult turns delimiters outside the lexeme table into errors.
func checkResult(res ScanResult) ScanResult {
	if res.IsError() || res.Token.Kind != token.DELIMITER || token.IsKnown(res.Token.Text) {
		return res
	}
	return ScanResult{Err: &ScanError{
		Message:  fmt.Sprintf("unknown lexeme %q", res.Token.Text),
		Position: res.Token.Position,
		Length:   utf8.RuneCountInString(res.Token.Text),
	}}
}

// SplitResults separates tokens from lexical errors, keeping their order.
func SplitResults(results []ScanResult) ([]token.Token, []ScanError) {
	var tokens []token.Token
	var errs []ScanError
	for _, res := range results {
		if res.IsError() {
			errs = append(errs, *res.Err)
		} else {
			tokens = append(tokens, res.Token)
		}
	}
	return tokens, errs
}

// Helper functions.

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
