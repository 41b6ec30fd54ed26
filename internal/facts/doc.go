// Package facts answers the questions a recursive-descent parser asks at
// every decision point, using nothing but the current token kind.
//
// # Components
//
//   - Token classifier (classify.go, modifiers.go): IsPossibleX predicates
//     telling whether a construct of category X can begin with a token.
//   - Operator resolver (operators.go): token kind to syntax kind, separately
//     for prefix, postfix, infix and keyword-name positions.
//   - Precedence table (precedence.go): binding power 1..24 and
//     associativity per syntax kind.
//   - Delimiter and boundary matcher (delims.go, boundaries.go): closers for
//     openers, the fork/join relation, and the stop sets for list loops and
//     panic-mode recovery.
//
// # Contract
//
// Every function is total and pure. Inapplicable inputs yield false,
// token.Unknown, syntax.Unknown or precedence 0, never an error, so the
// package is safe to consult while the parser is itself recovering from
// an error. All tables are read-only package data and may be used from any
// number of goroutines.
//
// IsPossibleExpression is defined in terms of the operator resolver: a
// token that resolves as a prefix or infix operator can start an expression.
package facts
