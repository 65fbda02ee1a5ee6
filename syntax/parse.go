// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"fmt"
	"strings"

	"github.com/kevinawalsh/hou/term"
)

// parser is a recursive-descent parser over a pre-lexed token stream,
// implementing the grammar from spec.md §6.
type parser struct {
	tokens []token
	pos    int
}

// ParseProblem parses a conjunction of "=?" constraints separated by "∧"
// (or its ASCII spelling "/\").
func ParseProblem(input string) (term.Problem, error) {
	p := &parser{tokens: lex(input)}
	prob, err := p.parseProblem()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return prob, nil
}

// ParseTerm parses a single term.
func ParseTerm(input string) (term.Term, error) {
	p := &parser{tokens: lex(input)}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTypingContext parses a sequence of "name : type" declarations,
// one per line (blank lines ignored), into a term.TypingContext.
func ParseTypingContext(input string) (term.TypingContext, error) {
	ctx := term.TypingContext{}
	for _, line := range splitNonEmptyLines(input) {
		p := &parser{tokens: lex(line)}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokColon); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		ctx[name] = ty
	}
	return ctx, nil
}

// ParseNameMap parses a sequence of "Name : y1 y2 ... yk" declarations, one
// per line, into a name_map suitable for engine.Context.NameMap.
func ParseNameMap(input string) (map[string][]string, error) {
	out := map[string][]string{}
	for _, line := range splitNonEmptyLines(input) {
		p := &parser{tokens: lex(line)}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokColon); err != nil {
			return nil, err
		}
		var names []string
		for p.peek().kind == tokName {
			n, err := p.expectName()
			if err != nil {
				return nil, err
			}
			names = append(names, n)
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		out[name] = names
	}
	return out, nil
}

func splitNonEmptyLines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (p *parser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{kind: tokEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind == tokError {
		return t, fmt.Errorf("syntax: %s", t.val)
	}
	if t.kind != kind {
		return t, fmt.Errorf("syntax: expected %s, got %s at position %d", kind, t.kind, t.pos)
	}
	return t, nil
}

func (p *parser) expectName() (string, error) {
	t, err := p.expect(tokName)
	if err != nil {
		return "", err
	}
	return t.val, nil
}

func (p *parser) expectEOF() error {
	t := p.next()
	if t.kind == tokError {
		return fmt.Errorf("syntax: %s", t.val)
	}
	if t.kind != tokEOF {
		return fmt.Errorf("syntax: unexpected trailing input %s at position %d", t.kind, t.pos)
	}
	return nil
}

// parseProblem ::= constraint ( "∧" constraint )*
func (p *parser) parseProblem() (term.Problem, error) {
	var prob term.Problem
	c, err := p.parseConstraint()
	if err != nil {
		return nil, err
	}
	prob = append(prob, c)
	for p.peek().kind == tokAnd {
		p.next()
		c, err := p.parseConstraint()
		if err != nil {
			return nil, err
		}
		prob = append(prob, c)
	}
	return prob, nil
}

// parseConstraint ::= term "=?" term
func (p *parser) parseConstraint() (term.Constraint, error) {
	left, err := p.parseTerm()
	if err != nil {
		return term.Constraint{}, err
	}
	if _, err := p.expect(tokEquals); err != nil {
		return term.Constraint{}, err
	}
	right, err := p.parseTerm()
	if err != nil {
		return term.Constraint{}, err
	}
	return term.Constraint{Left: left, Right: right}, nil
}

// parseTerm ::= "λ" name ":" type "." term | app
func (p *parser) parseTerm() (term.Term, error) {
	if p.peek().kind == tokLambda {
		p.next()
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokColon); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokDot); err != nil {
			return nil, err
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &term.Abs{Name: name, Type: ty, Body: body}, nil
	}
	return p.parseApp()
}

// parseApp ::= atom atom*
func (p *parser) parseApp() (term.Term, error) {
	head, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		head = &term.App{Fun: head, Arg: arg}
	}
	return head, nil
}

func (p *parser) startsAtom() bool {
	switch p.peek().kind {
	case tokName, tokLParen:
		return true
	default:
		return false
	}
}

// parseAtom ::= name | "(" term ")"
func (p *parser) parseAtom() (term.Term, error) {
	t := p.peek()
	switch t.kind {
	case tokName:
		p.next()
		if IsMeta(t.val) {
			return &term.Meta{Name: t.val}, nil
		}
		return &term.Var{Name: t.val}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("syntax: expected a name or '(', got %s at position %d", t.kind, t.pos)
	}
}

// parseType ::= atomType ("->" type)?   (right-associative)
func (p *parser) parseType() (term.Type, error) {
	left, err := p.parseAtomType()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokArrow {
		p.next()
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return term.Arrow{Dom: left, Cod: right}, nil
	}
	return left, nil
}

func (p *parser) parseAtomType() (term.Type, error) {
	t := p.peek()
	switch t.kind {
	case tokStar:
		p.next()
		return term.Star{}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("syntax: expected a type, got %s at position %d", t.kind, t.pos)
	}
}
