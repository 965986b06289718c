package query

import (
	"strings"

	"github.com/JesseCoretta/go-stackage"
)

const (
	tokAnd = "and"
	tokOr  = "or"
)

func isOperator(tok string) bool {
	return tok == tokAnd || tok == tokOr
}

/*
precedence returns AND's binding priority over OR: AND binds tighter,
so it is popped from the operator stack before a lower-or-equal
precedence OR would be pushed on top of it.
*/
func precedence(op string) int {
	if op == tokAnd {
		return 2
	}
	return 1
}

/*
Parse tokenizes query on whitespace, inserts an implicit AND between
adjacent non-operator tokens, and runs the two-step shunting-yard
algorithm described by the specification: operators move through a
scratch [stackage.Stack] to produce a reverse-polish output queue,
which is then assembled into a binary [Tree]. Terms are normalized via
cfg (stop-word removal, length bounds); empty terms after
normalization are dropped. A tree containing only operators yields a
[Tree] with a nil Root.
*/
func Parse(query string, cfg *ParserConfig) *Tree {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	rawTokens := strings.Fields(query)
	tokens := insertImplicitAnd(rawTokens)

	ops := stackage.Basic()
	var output []string

	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if isOperator(lower) {
			for ops.Len() > 0 {
				top, _ := ops.Pop()
				topOp, _ := top.(string)
				if precedence(topOp) < precedence(lower) {
					ops.Push(top)
					break
				}
				output = append(output, topOp)
			}
			ops.Push(lower)
			continue
		}
		if term := cfg.normalize(tok); len(term) > 0 {
			output = append(output, term)
		}
	}
	for ops.Len() > 0 {
		top, _ := ops.Pop()
		if topOp, ok := top.(string); ok {
			output = append(output, topOp)
		}
	}

	root := assemble(output)
	return &Tree{Root: root, Query: query, Config: cfg}
}

/*
insertImplicitAnd inserts the literal token "and" between any two
consecutive non-operator tokens, per the specification's implicit-AND
rule.
*/
func insertImplicitAnd(tokens []string) []string {
	var out []string
	for i, tok := range tokens {
		out = append(out, tok)
		if i+1 >= len(tokens) {
			continue
		}
		cur, next := strings.ToLower(tok), strings.ToLower(tokens[i+1])
		if !isOperator(cur) && !isOperator(next) {
			out = append(out, tokAnd)
		}
	}
	return out
}

/*
assemble consumes a reverse-polish output queue tail-to-head: for each
operator it pops two nodes from a scratch stack to form a binary node,
for each term it pushes a [Leaf]. The final remaining node is the
root, or nil if the queue held only operators or was empty.
*/
func assemble(rpn []string) Node {
	var stack []Node
	for _, tok := range rpn {
		if isOperator(tok) {
			if len(stack) < 2 {
				return nil
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var n Node
			if tok == tokAnd {
				n = &And{Left: left, Right: right}
			} else {
				n = &Or{Left: left, Right: right}
			}
			stack = append(stack, n)
			continue
		}
		stack = append(stack, &Leaf{Term: tok})
	}
	if len(stack) != 1 {
		return nil
	}
	return stack[0]
}
