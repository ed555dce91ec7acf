package parser

import "triadc/token"

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(text string) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Is(text)
}

func (p *Parser) match(text string) bool {
	if p.check(text) {
		p.advance()
		return true
	}
	return false
}

// peek returns the current token, or the last one once the input is exhausted.
func (p *Parser) peek() token.Token {
	if p.isAtEnd() {
		if len(p.tokens) == 0 {
			return token.Token{}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

// indexFrom returns the index of the first token at or after from that
// satisfies pred and lies before limit, or -1.
func (p *Parser) indexFrom(from, limit int, pred func(token.Token) bool) int {
	for i := from; i < limit && i < len(p.tokens); i++ {
		if pred(p.tokens[i]) {
			return i
		}
	}
	return -1
}

// elseFor returns the index of the first 'else' at or after from that no
// 'if' in between claims, or -1.
func (p *Parser) elseFor(from int) int {
	depth := 0
	for i := from; i < len(p.tokens); i++ {
		switch {
		case p.tokens[i].Is(token.IF):
			depth++
		case p.tokens[i].Is(token.ELSE):
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func isSemicolon(t token.Token) bool {
	return t.Kind == token.DELIMITER && t.Text == token.SEMICOLON
}

func isThen(t token.Token) bool {
	return t.Is(token.THEN)
}
