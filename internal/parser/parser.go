package parser

import (
	"triadc/internal/ast"
	"triadc/token"
)

// Parser is a recursive-descent parser over a well-formed token slice
// (lexical errors already removed). It stops at the first violation.
//
//	program     = { statement } .
//	statement   = conditional | assignment .
//	assignment  = Identifier ":=" value ";" .
//	conditional = "if" comparison "then" statement [ { statement } "else" statement ] .
//	comparison  = value ( "<" | ">" | "=" ) value .
//	value       = Identifier | Constant .
type Parser struct {
	tokens  []token.Token
	current int
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the parse tree for tokens. The returned error is always a
// *GrammarViolation.
func Parse(tokens []token.Token) (*ast.Node, error) {
	root, violation := NewParser(tokens).ParseProgram()
	if violation != nil {
		return nil, violation
	}
	return root, nil
}

func (p *Parser) ParseProgram() (*ast.Node, *GrammarViolation) {
	root := ast.NewNode(ast.PROGRAM)
	if err := p.parseStatementSequence(root); err != nil {
		return nil, err
	}
	return root, nil
}

// parseStatementSequence appends statements to parent until the tokens run out.
func (p *Parser) parseStatementSequence(parent *ast.Node) *GrammarViolation {
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return err
		}
		parent.AddNode(stmt)
	}
	return nil
}

func (p *Parser) parseStatement() (*ast.Node, *GrammarViolation) {
	end := p.indexFrom(p.current, len(p.tokens), isSemicolon)
	if end < 0 {
		return nil, newViolation(UnterminatedStatement, p.peek(),
			"statement is not terminated by ';'")
	}

	tok := p.peek()
	switch {
	case tok.Is(token.IF):
		return p.parseConditional(end)
	case tok.Kind == token.IDENTIFIER:
		return p.parseAssignment(end)
	}
	return nil, newViolation(InvalidStatementStart, tok,
		"statement must start with an identifier or 'if', found %s", describe(tok))
}

// parseAssignment consumes the tokens up to and including the ';' at end.
func (p *Parser) parseAssignment(end int) (*ast.Node, *GrammarViolation) {
	tokens := p.tokens[p.current:end]

	if len(tokens) < 3 {
		return nil, newViolation(InvalidArity, p.tokens[end],
			"incomplete assignment: expected 3 tokens, found %d", len(tokens))
	}
	if tokens[0].Kind != token.IDENTIFIER {
		return nil, newViolation(InvalidOperand, tokens[0],
			"assignment must start with an identifier, found %s", describe(tokens[0]))
	}
	if tokens[1].Kind != token.ASSIGN {
		return nil, newViolation(UnexpectedOperator, tokens[1],
			"expected ':=' instead of %s", describe(tokens[1]))
	}
	if !tokens[2].IsValue() {
		return nil, newViolation(InvalidOperand, tokens[2],
			"only an identifier or a constant can be assigned, found %s", describe(tokens[2]))
	}
	if len(tokens) > 3 {
		return nil, newViolation(InvalidArity, tokens[3],
			"too many tokens in assignment: expected 3, found %d", len(tokens))
	}

	p.current = end + 1
	return ast.NewBinary(ast.ASSIGNMENT, tokens[0], tokens[1], tokens[2]), nil
}

// parseConditional parses an if statement whose first nested ';' is at stmtEnd.
func (p *Parser) parseConditional(stmtEnd int) (*ast.Node, *GrammarViolation) {
	ifTok := p.advance()

	thenIdx := p.indexFrom(p.current, stmtEnd, isThen)
	if thenIdx < 0 {
		return nil, newViolation(MissingThen, ifTok, "expected 'then' after the condition")
	}

	cond, err := parseComparison(p.tokens[p.current:thenIdx], p.tokens[thenIdx])
	if err != nil {
		return nil, err
	}
	p.current = thenIdx
	thenTok := p.advance()

	thenBody, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	thenBlock := ast.NewNode(ast.BLOCK, thenBody)

	// Without an else of its own the branch ends at its first statement.
	if elseIdx := p.elseFor(p.current); elseIdx > p.current {
		for p.current < elseIdx {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			thenBlock.AddNode(stmt)
		}
	}

	node := ast.NewNode(ast.CONDITIONAL,
		ast.NewLeaf(ifTok),
		cond,
		ast.NewLeaf(thenTok),
		thenBlock,
	)

	if p.match(token.ELSE) {
		elseTok := p.previous()
		if p.isAtEnd() {
			return nil, newViolation(UnterminatedStatement, elseTok, "expected a statement after 'else'")
		}
		elseBody, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.AddNode(ast.NewLeaf(elseTok))
		node.AddNode(ast.NewNode(ast.BLOCK, elseBody))
	}

	return node, nil
}

// parseComparison validates the tokens between 'if' and 'then'.
func parseComparison(tokens []token.Token, then token.Token) (*ast.Node, *GrammarViolation) {
	if len(tokens) < 3 {
		return nil, newViolation(InvalidArity, then,
			"incomplete comparison: expected 3 tokens, found %d", len(tokens))
	}
	if !tokens[0].IsValue() {
		return nil, newViolation(InvalidOperand, tokens[0],
			"only identifiers or constants can be compared, found %s", describe(tokens[0]))
	}
	if tokens[1].Kind != token.COMPARISON {
		return nil, newViolation(UnexpectedOperator, tokens[1],
			"expected a comparison operator instead of %s", describe(tokens[1]))
	}
	if !tokens[2].IsValue() {
		return nil, newViolation(InvalidOperand, tokens[2],
			"only identifiers or constants can be compared, found %s", describe(tokens[2]))
	}
	if len(tokens) > 3 {
		return nil, newViolation(InvalidArity, tokens[3],
			"too many tokens in comparison: expected 3, found %d", len(tokens))
	}
	return ast.NewBinary(ast.COMPARISON, tokens[0], tokens[1], tokens[2]), nil
}

func describe(t token.Token) string {
	if t.Text == "" {
		return "end of input"
	}
	return t.Kind.String() + " '" + t.Text + "'"
}
