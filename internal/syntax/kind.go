package syntax

// Kind identifies the grammatical role of a syntax node.
// The zero value Unknown means "not applicable" and is never an error.
type Kind uint16

const (
	// Unknown is returned by every lookup that does not apply.
	Unknown Kind = iota

	// Literal expressions.
	StringLiteralExpression
	IntegerLiteralExpression
	UnbasedUnsizedLiteralExpression
	RealLiteralExpression
	TimeLiteralExpression
	NullLiteralExpression
	WildcardLiteralExpression
	OneStepLiteralExpression

	// Unary prefix operators.
	UnaryPlusExpression
	UnaryMinusExpression
	UnaryBitwiseAndExpression
	UnaryBitwiseNandExpression
	UnaryBitwiseOrExpression
	UnaryBitwiseNorExpression
	UnaryBitwiseXorExpression
	UnaryBitwiseXnorExpression
	UnaryPreincrementExpression
	UnaryPredecrementExpression
	UnaryBitwiseNotExpression
	UnaryLogicalNotExpression
	UnarySequenceDelayExpression
	UnarySequenceEventExpression
	AcceptOnPropertyExpression
	RejectOnPropertyExpression
	SyncAcceptOnPropertyExpression
	SyncRejectOnPropertyExpression
	UnaryNotPropertyExpression
	NextTimePropertyExpression
	SNextTimePropertyExpression
	AlwaysPropertyExpression
	SAlwaysPropertyExpression
	EventuallyPropertyExpression
	SEventuallyPropertyExpression

	// Unary postfix operators.
	PostincrementExpression
	PostdecrementExpression

	// Binary operators.
	AddExpression
	SubtractExpression
	MultiplyExpression
	DivideExpression
	ModExpression
	PowerExpression
	EqualityExpression
	InequalityExpression
	CaseEqualityExpression
	CaseInequalityExpression
	WildcardEqualityExpression
	WildcardInequalityExpression
	LogicalAndExpression
	LogicalOrExpression
	LogicalImplicationExpression
	LogicalEquivalenceExpression
	LessThanExpression
	LessThanEqualExpression
	GreaterThanExpression
	GreaterThanEqualExpression
	BinaryAndExpression
	BinaryOrExpression
	BinaryXorExpression
	BinaryXnorExpression
	LogicalShiftRightExpression
	ArithmeticShiftRightExpression
	LogicalShiftLeftExpression
	ArithmeticShiftLeftExpression
	InsideExpression
	AssignmentExpression
	AddAssignmentExpression
	SubtractAssignmentExpression
	MultiplyAssignmentExpression
	DivideAssignmentExpression
	ModAssignmentExpression
	AndAssignmentExpression
	OrAssignmentExpression
	XorAssignmentExpression
	LogicalLeftShiftAssignmentExpression
	LogicalRightShiftAssignmentExpression
	ArithmeticLeftShiftAssignmentExpression
	ArithmeticRightShiftAssignmentExpression
	NonblockingAssignmentExpression
	OrSequenceExpression
	AndSequenceExpression
	IntersectSequenceExpression
	WithinSequenceExpression
	ThroughoutSequenceExpression
	IffPropertyExpression
	UntilPropertyExpression
	SUntilPropertyExpression
	UntilWithPropertyExpression
	SUntilWithPropertyExpression
	ImpliesPropertyExpression
	OverlappedImplicationPropertyExpression
	NonOverlappedImplicationPropertyExpression
	OverlappedFollowedByPropertyExpression
	NonOverlappedFollowedByPropertyExpression
	BinarySequenceDelayExpression

	// Keyword names.
	UnitScope
	RootScope
	LocalScope
	ThisHandle
	SuperHandle
	ArrayUniqueMethod
	ArrayAndMethod
	ArrayOrMethod
	ArrayXorMethod
	ConstructorName

	// Data types.
	BitType
	LogicType
	RegType
	ByteType
	ShortIntType
	IntType
	LongIntType
	IntegerType
	TimeType
	ShortRealType
	RealType
	RealTimeType
	StringType
	CHandleType
	EventType
	VoidType
	NamedType

	// Procedural blocks.
	InitialBlock
	FinalBlock
	AlwaysBlock
	AlwaysCombBlock
	AlwaysFFBlock
	AlwaysLatchBlock

	// Design unit headers and declarations.
	ModuleHeader
	ProgramHeader
	InterfaceHeader
	PackageHeader
	ModuleDeclaration
	ProgramDeclaration
	InterfaceDeclaration
	PackageDeclaration

	// Primaries and statements built by the reference driver.
	IdentifierName
	SystemName
	ParenthesizedExpression
	ConcatenationExpression
	ElementSelectExpression
	MemberAccessExpression
	InvocationExpression
	ExpressionStatement
	EmptyStatement
	SequentialBlockStatement
	ParallelBlockStatement
	SkippedTokens

	// Design-unit, declaration and timing nodes.
	CompilationUnit
	ConditionalExpression
	RangeExpression
	ScopedName
	EdgeExpression
	DelayControl
	EventControl
	TimingControlStatement
	ConditionalStatement
	DataDeclaration
	Declarator
	ContinuousAssign
	ModifierList
	ReplicationExpression
	NamedArgument
	NetType

	// NumKinds is the number of syntax kinds. It is not a valid Kind.
	NumKinds
)

var kindNames = [NumKinds]string{
	Unknown:                                    "Unknown",
	StringLiteralExpression:                    "StringLiteralExpression",
	IntegerLiteralExpression:                   "IntegerLiteralExpression",
	UnbasedUnsizedLiteralExpression:            "UnbasedUnsizedLiteralExpression",
	RealLiteralExpression:                      "RealLiteralExpression",
	TimeLiteralExpression:                      "TimeLiteralExpression",
	NullLiteralExpression:                      "NullLiteralExpression",
	WildcardLiteralExpression:                  "WildcardLiteralExpression",
	OneStepLiteralExpression:                   "OneStepLiteralExpression",
	UnaryPlusExpression:                        "UnaryPlusExpression",
	UnaryMinusExpression:                       "UnaryMinusExpression",
	UnaryBitwiseAndExpression:                  "UnaryBitwiseAndExpression",
	UnaryBitwiseNandExpression:                 "UnaryBitwiseNandExpression",
	UnaryBitwiseOrExpression:                   "UnaryBitwiseOrExpression",
	UnaryBitwiseNorExpression:                  "UnaryBitwiseNorExpression",
	UnaryBitwiseXorExpression:                  "UnaryBitwiseXorExpression",
	UnaryBitwiseXnorExpression:                 "UnaryBitwiseXnorExpression",
	UnaryPreincrementExpression:                "UnaryPreincrementExpression",
	UnaryPredecrementExpression:                "UnaryPredecrementExpression",
	UnaryBitwiseNotExpression:                  "UnaryBitwiseNotExpression",
	UnaryLogicalNotExpression:                  "UnaryLogicalNotExpression",
	UnarySequenceDelayExpression:               "UnarySequenceDelayExpression",
	UnarySequenceEventExpression:               "UnarySequenceEventExpression",
	AcceptOnPropertyExpression:                 "AcceptOnPropertyExpression",
	RejectOnPropertyExpression:                 "RejectOnPropertyExpression",
	SyncAcceptOnPropertyExpression:             "SyncAcceptOnPropertyExpression",
	SyncRejectOnPropertyExpression:             "SyncRejectOnPropertyExpression",
	UnaryNotPropertyExpression:                 "UnaryNotPropertyExpression",
	NextTimePropertyExpression:                 "NextTimePropertyExpression",
	SNextTimePropertyExpression:                "SNextTimePropertyExpression",
	AlwaysPropertyExpression:                   "AlwaysPropertyExpression",
	SAlwaysPropertyExpression:                  "SAlwaysPropertyExpression",
	EventuallyPropertyExpression:               "EventuallyPropertyExpression",
	SEventuallyPropertyExpression:              "SEventuallyPropertyExpression",
	PostincrementExpression:                    "PostincrementExpression",
	PostdecrementExpression:                    "PostdecrementExpression",
	AddExpression:                              "AddExpression",
	SubtractExpression:                         "SubtractExpression",
	MultiplyExpression:                         "MultiplyExpression",
	DivideExpression:                           "DivideExpression",
	ModExpression:                              "ModExpression",
	PowerExpression:                            "PowerExpression",
	EqualityExpression:                         "EqualityExpression",
	InequalityExpression:                       "InequalityExpression",
	CaseEqualityExpression:                     "CaseEqualityExpression",
	CaseInequalityExpression:                   "CaseInequalityExpression",
	WildcardEqualityExpression:                 "WildcardEqualityExpression",
	WildcardInequalityExpression:               "WildcardInequalityExpression",
	LogicalAndExpression:                       "LogicalAndExpression",
	LogicalOrExpression:                        "LogicalOrExpression",
	LogicalImplicationExpression:               "LogicalImplicationExpression",
	LogicalEquivalenceExpression:               "LogicalEquivalenceExpression",
	LessThanExpression:                         "LessThanExpression",
	LessThanEqualExpression:                    "LessThanEqualExpression",
	GreaterThanExpression:                      "GreaterThanExpression",
	GreaterThanEqualExpression:                 "GreaterThanEqualExpression",
	BinaryAndExpression:                        "BinaryAndExpression",
	BinaryOrExpression:                         "BinaryOrExpression",
	BinaryXorExpression:                        "BinaryXorExpression",
	BinaryXnorExpression:                       "BinaryXnorExpression",
	LogicalShiftRightExpression:                "LogicalShiftRightExpression",
	ArithmeticShiftRightExpression:             "ArithmeticShiftRightExpression",
	LogicalShiftLeftExpression:                 "LogicalShiftLeftExpression",
	ArithmeticShiftLeftExpression:              "ArithmeticShiftLeftExpression",
	InsideExpression:                           "InsideExpression",
	AssignmentExpression:                       "AssignmentExpression",
	AddAssignmentExpression:                    "AddAssignmentExpression",
	SubtractAssignmentExpression:               "SubtractAssignmentExpression",
	MultiplyAssignmentExpression:               "MultiplyAssignmentExpression",
	DivideAssignmentExpression:                 "DivideAssignmentExpression",
	ModAssignmentExpression:                    "ModAssignmentExpression",
	AndAssignmentExpression:                    "AndAssignmentExpression",
	OrAssignmentExpression:                     "OrAssignmentExpression",
	XorAssignmentExpression:                    "XorAssignmentExpression",
	LogicalLeftShiftAssignmentExpression:       "LogicalLeftShiftAssignmentExpression",
	LogicalRightShiftAssignmentExpression:      "LogicalRightShiftAssignmentExpression",
	ArithmeticLeftShiftAssignmentExpression:    "ArithmeticLeftShiftAssignmentExpression",
	ArithmeticRightShiftAssignmentExpression:   "ArithmeticRightShiftAssignmentExpression",
	NonblockingAssignmentExpression:            "NonblockingAssignmentExpression",
	OrSequenceExpression:                       "OrSequenceExpression",
	AndSequenceExpression:                      "AndSequenceExpression",
	IntersectSequenceExpression:                "IntersectSequenceExpression",
	WithinSequenceExpression:                   "WithinSequenceExpression",
	ThroughoutSequenceExpression:               "ThroughoutSequenceExpression",
	IffPropertyExpression:                      "IffPropertyExpression",
	UntilPropertyExpression:                    "UntilPropertyExpression",
	SUntilPropertyExpression:                   "SUntilPropertyExpression",
	UntilWithPropertyExpression:                "UntilWithPropertyExpression",
	SUntilWithPropertyExpression:               "SUntilWithPropertyExpression",
	ImpliesPropertyExpression:                  "ImpliesPropertyExpression",
	OverlappedImplicationPropertyExpression:    "OverlappedImplicationPropertyExpression",
	NonOverlappedImplicationPropertyExpression: "NonOverlappedImplicationPropertyExpression",
	OverlappedFollowedByPropertyExpression:     "OverlappedFollowedByPropertyExpression",
	NonOverlappedFollowedByPropertyExpression:  "NonOverlappedFollowedByPropertyExpression",
	BinarySequenceDelayExpression:              "BinarySequenceDelayExpression",
	UnitScope:                                  "UnitScope",
	RootScope:                                  "RootScope",
	LocalScope:                                 "LocalScope",
	ThisHandle:                                 "ThisHandle",
	SuperHandle:                                "SuperHandle",
	ArrayUniqueMethod:                          "ArrayUniqueMethod",
	ArrayAndMethod:                             "ArrayAndMethod",
	ArrayOrMethod:                              "ArrayOrMethod",
	ArrayXorMethod:                             "ArrayXorMethod",
	ConstructorName:                            "ConstructorName",
	BitType:                                    "BitType",
	LogicType:                                  "LogicType",
	RegType:                                    "RegType",
	ByteType:                                   "ByteType",
	ShortIntType:                               "ShortIntType",
	IntType:                                    "IntType",
	LongIntType:                                "LongIntType",
	IntegerType:                                "IntegerType",
	TimeType:                                   "TimeType",
	ShortRealType:                              "ShortRealType",
	RealType:                                   "RealType",
	RealTimeType:                               "RealTimeType",
	StringType:                                 "StringType",
	CHandleType:                                "CHandleType",
	EventType:                                  "EventType",
	VoidType:                                   "VoidType",
	NamedType:                                  "NamedType",
	InitialBlock:                               "InitialBlock",
	FinalBlock:                                 "FinalBlock",
	AlwaysBlock:                                "AlwaysBlock",
	AlwaysCombBlock:                            "AlwaysCombBlock",
	AlwaysFFBlock:                              "AlwaysFFBlock",
	AlwaysLatchBlock:                           "AlwaysLatchBlock",
	ModuleHeader:                               "ModuleHeader",
	ProgramHeader:                              "ProgramHeader",
	InterfaceHeader:                            "InterfaceHeader",
	PackageHeader:                              "PackageHeader",
	ModuleDeclaration:                          "ModuleDeclaration",
	ProgramDeclaration:                         "ProgramDeclaration",
	InterfaceDeclaration:                       "InterfaceDeclaration",
	PackageDeclaration:                         "PackageDeclaration",
	IdentifierName:                             "IdentifierName",
	SystemName:                                 "SystemName",
	ParenthesizedExpression:                    "ParenthesizedExpression",
	ConcatenationExpression:                    "ConcatenationExpression",
	ElementSelectExpression:                    "ElementSelectExpression",
	MemberAccessExpression:                     "MemberAccessExpression",
	InvocationExpression:                       "InvocationExpression",
	ExpressionStatement:                        "ExpressionStatement",
	EmptyStatement:                             "EmptyStatement",
	SequentialBlockStatement:                   "SequentialBlockStatement",
	ParallelBlockStatement:                     "ParallelBlockStatement",
	SkippedTokens:                              "SkippedTokens",
	CompilationUnit:                            "CompilationUnit",
	ConditionalExpression:                      "ConditionalExpression",
	RangeExpression:                            "RangeExpression",
	ScopedName:                                 "ScopedName",
	EdgeExpression:                             "EdgeExpression",
	DelayControl:                               "DelayControl",
	EventControl:                               "EventControl",
	TimingControlStatement:                     "TimingControlStatement",
	ConditionalStatement:                       "ConditionalStatement",
	DataDeclaration:                            "DataDeclaration",
	Declarator:                                 "Declarator",
	ContinuousAssign:                           "ContinuousAssign",
	ModifierList:                               "ModifierList",
	ReplicationExpression:                      "ReplicationExpression",
	NamedArgument:                              "NamedArgument",
	NetType:                                    "NetType",
}

// String returns the kind's name, e.g. "AddExpression".
func (k Kind) String() string {
	if k >= NumKinds {
		return "Kind(?)"
	}
	return kindNames[k]
}
