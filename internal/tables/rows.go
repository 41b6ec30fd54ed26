package tables

import (
	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// TokenRow is everything facts knows about one token kind.
type TokenRow struct {
	Token       string   `json:"token" msgpack:"token"`
	Text        string   `json:"text,omitempty" msgpack:"text,omitempty"`
	Prefix      string   `json:"prefix,omitempty" msgpack:"prefix,omitempty"`
	Postfix     string   `json:"postfix,omitempty" msgpack:"postfix,omitempty"`
	Binary      string   `json:"binary,omitempty" msgpack:"binary,omitempty"`
	KeywordName string   `json:"keyword_name,omitempty" msgpack:"keyword_name,omitempty"`
	Literal     string   `json:"literal,omitempty" msgpack:"literal,omitempty"`
	Close       string   `json:"close,omitempty" msgpack:"close,omitempty"`
	Starts      []string `json:"starts,omitempty" msgpack:"starts,omitempty"`
	Stops       []string `json:"stops,omitempty" msgpack:"stops,omitempty"`
	Traits      []string `json:"traits,omitempty" msgpack:"traits,omitempty"`
}

// OperatorRow describes one operator syntax kind.
type OperatorRow struct {
	Kind       string `json:"kind" msgpack:"kind"`
	Precedence int    `json:"precedence" msgpack:"precedence"`
	RightAssoc bool   `json:"right_assoc,omitempty" msgpack:"right_assoc,omitempty"`
	Temporal   bool   `json:"temporal,omitempty" msgpack:"temporal,omitempty"`
}

// DelimRow lists every closer accepted for an opener.
type DelimRow struct {
	Open    string   `json:"open" msgpack:"open"`
	Closers []string `json:"closers" msgpack:"closers"`
}

type namedPredicate struct {
	name string
	fn   func(token.Kind) bool
}

// starts are the construct categories a token can begin, in output order.
var starts = []namedPredicate{
	{"data_type", facts.IsPossibleDataType},
	{"expression", facts.IsPossibleExpression},
	{"statement", facts.IsPossibleStatement},
	{"argument", facts.IsPossibleArgument},
	{"non_ansi_port", facts.IsPossibleNonAnsiPort},
	{"ansi_port", facts.IsPossibleAnsiPort},
	{"modport_port", facts.IsPossibleModportPort},
	{"function_port", facts.IsPossibleFunctionPort},
	{"property_port_item", facts.IsPossiblePropertyPortItem},
	{"let_port_item", facts.IsPossibleLetPortItem},
	{"gate_instance", facts.IsPossibleGateInstance},
	{"parameter", facts.IsPossibleParameter},
	{"port_connection", facts.IsPossiblePortConnection},
	{"open_range_element", facts.IsPossibleOpenRangeElement},
	{"pattern", facts.IsPossiblePattern},
	{"trans_set", facts.IsPossibleTransSet},
	{"delay_or_event_control", facts.IsPossibleDelayOrEventControl},
	{"vector_digit", facts.IsPossibleVectorDigit},
	{"for_initializer", facts.IsPossibleForInitializer},
}

// stops are the loop terminators a token triggers.
var stops = []namedPredicate{
	{"end_of_paren_list", facts.IsEndOfParenList},
	{"end_of_braced_list", facts.IsEndOfBracedList},
	{"end_of_bracketed_list", facts.IsEndOfBracketedList},
	{"end_of_case_item", facts.IsEndOfCaseItem},
	{"end_of_conditional_predicate", facts.IsEndOfConditionalPredicate},
	{"end_of_attribute", facts.IsEndOfAttribute},
	{"end_of_parameter_list", facts.IsEndOfParameterList},
	{"end_of_trans_set", facts.IsEndOfTransSet},
	{"not_in_type", facts.IsNotInType},
	{"not_in_port_reference", facts.IsNotInPortReference},
	{"not_in_concatenation", facts.IsNotInConcatenationExpr},
	{"not_in_parameter_list", facts.IsNotInParameterList},
}

var traits = []namedPredicate{
	{"end_keyword", facts.IsEndKeyword},
	{"open_delim", facts.IsOpenDelimOrKeyword},
	{"close_delim", facts.IsCloseDelimOrKeyword},
	{"net_type", facts.IsNetType},
	{"port_direction", facts.IsPortDirection},
	{"declaration_modifier", facts.IsDeclarationModifier},
	{"member_qualifier", facts.IsMemberQualifier},
	{"drive_strength", facts.IsDriveStrength},
	{"charge_strength", facts.IsChargeStrength},
	{"gate_type", facts.IsGateType},
}

func matching(kind token.Kind, preds []namedPredicate) []string {
	var out []string
	for _, p := range preds {
		if p.fn(kind) {
			out = append(out, p.name)
		}
	}
	return out
}

func kindName(k syntax.Kind) string {
	if k == syntax.Unknown {
		return ""
	}
	return k.String()
}

// RowFor summarizes kind.
func RowFor(kind token.Kind) TokenRow {
	row := TokenRow{
		Token:       kind.String(),
		Text:        kind.Text(),
		Prefix:      kindName(facts.UnaryPrefixExpression(kind)),
		Postfix:     kindName(facts.UnaryPostfixExpression(kind)),
		Binary:      kindName(facts.BinaryExpression(kind)),
		KeywordName: kindName(facts.KeywordNameExpression(kind)),
		Literal:     kindName(facts.LiteralExpression(kind)),
		Starts:      matching(kind, starts),
		Stops:       matching(kind, stops),
		Traits:      matching(kind, traits),
	}
	if c := facts.CloseOf(kind); c != token.Unknown {
		row.Close = c.String()
	}
	return row
}

// OperatorRowFor returns the row for k and whether k is an operator.
func OperatorRowFor(k syntax.Kind) (OperatorRow, bool) {
	if !facts.IsOperator(k) {
		return OperatorRow{}, false
	}
	return OperatorRow{
		Kind:       k.String(),
		Precedence: facts.Precedence(k),
		RightAssoc: facts.IsRightAssociative(k),
		Temporal:   facts.IsTemporalOperator(k),
	}, true
}

// Closers lists every kind that validly closes open, in enumeration order.
func Closers(open token.Kind) []string {
	var out []string
	for k := token.Kind(0); k < token.NumKinds; k++ {
		if facts.IsMatchingDelims(open, k) {
			out = append(out, k.String())
		}
	}
	return out
}
