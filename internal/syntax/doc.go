// Package syntax enumerates the grammatical roles a parsed construct can take.
//
// The kinds here are the output of classification: the facts package decides
// which Kind applies to a token in a given parse position, and the parser
// builds nodes carrying that Kind. Nothing in this package allocates nodes.
package syntax
