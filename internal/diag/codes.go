package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Token reader
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1004

	// Parser
	SynUnexpectedToken     Code = 2001
	SynUnclosedDelimiter   Code = 2002
	SynMismatchedDelimiter Code = 2003
	SynExpectSemicolon     Code = 2012
	SynModifierNotAllowed  Code = 2015
	SynExpectIdentifier    Code = 2102
	SynExpectExpression    Code = 2203
	SynExpectStatement     Code = 2204
	SynExpectOperand       Code = 2205
	SynSkippedTokens       Code = 2206
	SynTooManyErrors       Code = 2299

	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string literal",
	LexBadNumber:           "Malformed number",
	SynUnexpectedToken:     "Unexpected token",
	SynUnclosedDelimiter:   "Unclosed delimiter",
	SynMismatchedDelimiter: "Mismatched closing delimiter",
	SynExpectSemicolon:     "Expect semicolon",
	SynModifierNotAllowed:  "Modifier not allowed here",
	SynExpectIdentifier:    "Expect identifier",
	SynExpectExpression:    "Expect expression",
	SynExpectStatement:     "Expect statement",
	SynExpectOperand:       "Expect operand after operator",
	SynSkippedTokens:       "Tokens skipped during recovery",
	SynTooManyErrors:       "Too many errors",
	IOLoadFileError:        "I/O load file error",
}

// ID returns the stable identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
