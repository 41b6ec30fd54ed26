// Package tables flattens the answers of package facts into rows, one per
// token kind and one per operator syntax kind, and serializes them.
//
// The snapshot is deterministic: rows follow enumeration order and every
// list inside a row follows a fixed predicate order, so two snapshots of the
// same build are byte-identical in both encodings. Downstream tools (syntax
// highlighters, other parser front ends) consume the msgpack form; the JSON
// form is for humans and diffs.
package tables
