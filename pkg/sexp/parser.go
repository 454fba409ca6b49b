package sexp

import (
	"fmt"
	"io"
	"strings"
)

// parser builds Nodes from a token stream
type parser struct {
	lexer   *lexer
	current token
}

// Parse reads a single top-level expression from r.
func Parse(r io.Reader) (*Node, error) {
	nodes, err := ParseAll(r)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	return nodes[0], nil
}

// ParseString parses a single top-level expression from a string.
func ParseString(input string) (*Node, error) {
	return Parse(strings.NewReader(input))
}

// ParseAll parses all top-level expressions from r.
func ParseAll(r io.Reader) ([]*Node, error) {
	p := &parser{lexer: newLexer(r)}

	var result []*Node

	tok, err := p.lexer.nextToken()
	if err != nil {
		return nil, err
	}
	p.current = tok

	for p.current.Type != tokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)

		tok, err := p.lexer.nextToken()
		if err != nil {
			return nil, err
		}
		p.current = tok
	}

	return result, nil
}

// parseExpr parses a single expression at the current token
func (p *parser) parseExpr() (*Node, error) {
	switch p.current.Type {
	case tokenLeftParen:
		return p.parseList()

	case tokenSymbol:
		return Symbol(p.current.Value), nil

	case tokenString:
		return String(p.current.Value), nil

	case tokenRightParen:
		return nil, fmt.Errorf("unexpected ')'")

	case tokenEOF:
		return nil, fmt.Errorf("unexpected EOF")

	default:
		return nil, fmt.Errorf("unexpected token type: %v", p.current.Type)
	}
}

// parseList parses a list: ( ... )
func (p *parser) parseList() (*Node, error) {
	if p.current.Type != tokenLeftParen {
		return nil, fmt.Errorf("expected '(', got %v", p.current.Type)
	}

	node := &Node{Kind: KindList}

	for {
		tok, err := p.lexer.nextToken()
		if err != nil {
			return nil, err
		}
		p.current = tok

		if p.current.Type == tokenRightParen {
			break
		}

		if p.current.Type == tokenEOF {
			return nil, fmt.Errorf("unexpected EOF in list")
		}

		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, elem)
	}

	return node, nil
}
