package token

type kindInfo struct {
	name string
	text string
}

// kindTable holds the Go-style name and the source spelling of every kind.
// Literal and identifier kinds have no fixed spelling.
var kindTable = [NumKinds]kindInfo{
	Unknown:              {"Unknown", ""},
	EOF:                  {"EOF", ""},
	Ident:                {"Ident", ""},
	SystemIdent:          {"SystemIdent", ""},
	StringLit:            {"StringLit", ""},
	IntLit:               {"IntLit", ""},
	IntBase:              {"IntBase", ""},
	UnbasedUnsizedLit:    {"UnbasedUnsizedLit", ""},
	RealLit:              {"RealLit", ""},
	TimeLit:              {"TimeLit", ""},
	UnitSystemName:       {"UnitSystemName", "$unit"},
	RootSystemName:       {"RootSystemName", "$root"},
	OneStep:              {"OneStep", "1step"},
	Apostrophe:           {"Apostrophe", `'`},
	ApostropheLBrace:     {"ApostropheLBrace", `'{`},
	LBrace:               {"LBrace", `{`},
	RBrace:               {"RBrace", `}`},
	LBracket:             {"LBracket", `[`},
	RBracket:             {"RBracket", `]`},
	LParen:               {"LParen", `(`},
	LParenStar:           {"LParenStar", `(*`},
	RParen:               {"RParen", `)`},
	StarRParen:           {"StarRParen", `*)`},
	Semicolon:            {"Semicolon", `;`},
	Colon:                {"Colon", `:`},
	ColonAssign:          {"ColonAssign", `:=`},
	ColonSlash:           {"ColonSlash", `:/`},
	ColonColon:           {"ColonColon", `::`},
	Comma:                {"Comma", `,`},
	DotStar:              {"DotStar", `.*`},
	Dot:                  {"Dot", `.`},
	Slash:                {"Slash", `/`},
	Star:                 {"Star", `*`},
	StarStar:             {"StarStar", `**`},
	StarArrow:            {"StarArrow", `*>`},
	Plus:                 {"Plus", `+`},
	PlusPlus:             {"PlusPlus", `++`},
	PlusColon:            {"PlusColon", `+:`},
	Minus:                {"Minus", `-`},
	MinusMinus:           {"MinusMinus", `--`},
	MinusColon:           {"MinusColon", `-:`},
	Arrow:                {"Arrow", `->`},
	ArrowGt:              {"ArrowGt", `->>`},
	Tilde:                {"Tilde", `~`},
	TildeAmp:             {"TildeAmp", `~&`},
	TildePipe:            {"TildePipe", `~|`},
	TildeCaret:           {"TildeCaret", `~^`},
	Dollar:               {"Dollar", `$`},
	Question:             {"Question", `?`},
	Hash:                 {"Hash", `#`},
	HashHash:             {"HashHash", `##`},
	HashMinusHash:        {"HashMinusHash", `#-#`},
	HashEqHash:           {"HashEqHash", `#=#`},
	Caret:                {"Caret", `^`},
	CaretTilde:           {"CaretTilde", `^~`},
	Assign:               {"Assign", `=`},
	EqEq:                 {"EqEq", `==`},
	EqEqQuestion:         {"EqEqQuestion", `==?`},
	EqEqEq:               {"EqEqEq", `===`},
	FatArrow:             {"FatArrow", `=>`},
	PlusAssign:           {"PlusAssign", `+=`},
	MinusAssign:          {"MinusAssign", `-=`},
	SlashAssign:          {"SlashAssign", `/=`},
	StarAssign:           {"StarAssign", `*=`},
	AmpAssign:            {"AmpAssign", `&=`},
	PipeAssign:           {"PipeAssign", `|=`},
	PercentAssign:        {"PercentAssign", `%=`},
	CaretAssign:          {"CaretAssign", `^=`},
	ShlAssign:            {"ShlAssign", `<<=`},
	Shl3Assign:           {"Shl3Assign", `<<<=`},
	ShrAssign:            {"ShrAssign", `>>=`},
	Shr3Assign:           {"Shr3Assign", `>>>=`},
	Shl:                  {"Shl", `<<`},
	Shr:                  {"Shr", `>>`},
	Shl3:                 {"Shl3", `<<<`},
	Shr3:                 {"Shr3", `>>>`},
	Bang:                 {"Bang", `!`},
	BangEq:               {"BangEq", `!=`},
	BangEqQuestion:       {"BangEqQuestion", `!=?`},
	BangEqEq:             {"BangEqEq", `!==`},
	Percent:              {"Percent", `%`},
	Lt:                   {"Lt", `<`},
	LtEq:                 {"LtEq", `<=`},
	LtArrow:              {"LtArrow", `<->`},
	Gt:                   {"Gt", `>`},
	GtEq:                 {"GtEq", `>=`},
	Pipe:                 {"Pipe", `|`},
	OrOr:                 {"OrOr", `||`},
	PipeArrow:            {"PipeArrow", `|->`},
	PipeFatArrow:         {"PipeFatArrow", `|=>`},
	At:                   {"At", `@`},
	AtAt:                 {"AtAt", `@@`},
	Amp:                  {"Amp", `&`},
	AndAnd:               {"AndAnd", `&&`},
	AndAndAnd:            {"AndAndAnd", `&&&`},
	KwAcceptOn:           {"KwAcceptOn", "accept_on"},
	KwAlias:              {"KwAlias", "alias"},
	KwAlways:             {"KwAlways", "always"},
	KwAlwaysComb:         {"KwAlwaysComb", "always_comb"},
	KwAlwaysFF:           {"KwAlwaysFF", "always_ff"},
	KwAlwaysLatch:        {"KwAlwaysLatch", "always_latch"},
	KwAnd:                {"KwAnd", "and"},
	KwAssert:             {"KwAssert", "assert"},
	KwAssign:             {"KwAssign", "assign"},
	KwAssume:             {"KwAssume", "assume"},
	KwAutomatic:          {"KwAutomatic", "automatic"},
	KwBefore:             {"KwBefore", "before"},
	KwBegin:              {"KwBegin", "begin"},
	KwBind:               {"KwBind", "bind"},
	KwBins:               {"KwBins", "bins"},
	KwBinsOf:             {"KwBinsOf", "binsof"},
	KwBit:                {"KwBit", "bit"},
	KwBreak:              {"KwBreak", "break"},
	KwBuf:                {"KwBuf", "buf"},
	KwBufIf0:             {"KwBufIf0", "bufif0"},
	KwBufIf1:             {"KwBufIf1", "bufif1"},
	KwByte:               {"KwByte", "byte"},
	KwCase:               {"KwCase", "case"},
	KwCaseX:              {"KwCaseX", "casex"},
	KwCaseZ:              {"KwCaseZ", "casez"},
	KwCell:               {"KwCell", "cell"},
	KwCHandle:            {"KwCHandle", "chandle"},
	KwChecker:            {"KwChecker", "checker"},
	KwClass:              {"KwClass", "class"},
	KwClocking:           {"KwClocking", "clocking"},
	KwCmos:               {"KwCmos", "cmos"},
	KwConfig:             {"KwConfig", "config"},
	KwConst:              {"KwConst", "const"},
	KwConstraint:         {"KwConstraint", "constraint"},
	KwContext:            {"KwContext", "context"},
	KwContinue:           {"KwContinue", "continue"},
	KwCover:              {"KwCover", "cover"},
	KwCoverGroup:         {"KwCoverGroup", "covergroup"},
	KwCoverPoint:         {"KwCoverPoint", "coverpoint"},
	KwCross:              {"KwCross", "cross"},
	KwDeassign:           {"KwDeassign", "deassign"},
	KwDefault:            {"KwDefault", "default"},
	KwDefParam:           {"KwDefParam", "defparam"},
	KwDesign:             {"KwDesign", "design"},
	KwDisable:            {"KwDisable", "disable"},
	KwDist:               {"KwDist", "dist"},
	KwDo:                 {"KwDo", "do"},
	KwEdge:               {"KwEdge", "edge"},
	KwElse:               {"KwElse", "else"},
	KwEnd:                {"KwEnd", "end"},
	KwEndCase:            {"KwEndCase", "endcase"},
	KwEndChecker:         {"KwEndChecker", "endchecker"},
	KwEndClass:           {"KwEndClass", "endclass"},
	KwEndClocking:        {"KwEndClocking", "endclocking"},
	KwEndConfig:          {"KwEndConfig", "endconfig"},
	KwEndFunction:        {"KwEndFunction", "endfunction"},
	KwEndGenerate:        {"KwEndGenerate", "endgenerate"},
	KwEndGroup:           {"KwEndGroup", "endgroup"},
	KwEndInterface:       {"KwEndInterface", "endinterface"},
	KwEndModule:          {"KwEndModule", "endmodule"},
	KwEndPackage:         {"KwEndPackage", "endpackage"},
	KwEndPrimitive:       {"KwEndPrimitive", "endprimitive"},
	KwEndProgram:         {"KwEndProgram", "endprogram"},
	KwEndProperty:        {"KwEndProperty", "endproperty"},
	KwEndSpecify:         {"KwEndSpecify", "endspecify"},
	KwEndSequence:        {"KwEndSequence", "endsequence"},
	KwEndTable:           {"KwEndTable", "endtable"},
	KwEndTask:            {"KwEndTask", "endtask"},
	KwEnum:               {"KwEnum", "enum"},
	KwEvent:              {"KwEvent", "event"},
	KwEventually:         {"KwEventually", "eventually"},
	KwExpect:             {"KwExpect", "expect"},
	KwExport:             {"KwExport", "export"},
	KwExtends:            {"KwExtends", "extends"},
	KwExtern:             {"KwExtern", "extern"},
	KwFinal:              {"KwFinal", "final"},
	KwFirstMatch:         {"KwFirstMatch", "first_match"},
	KwFor:                {"KwFor", "for"},
	KwForce:              {"KwForce", "force"},
	KwForeach:            {"KwForeach", "foreach"},
	KwForever:            {"KwForever", "forever"},
	KwFork:               {"KwFork", "fork"},
	KwForkJoin:           {"KwForkJoin", "forkjoin"},
	KwFunction:           {"KwFunction", "function"},
	KwGenerate:           {"KwGenerate", "generate"},
	KwGenVar:             {"KwGenVar", "genvar"},
	KwGlobal:             {"KwGlobal", "global"},
	KwHighZ0:             {"KwHighZ0", "highz0"},
	KwHighZ1:             {"KwHighZ1", "highz1"},
	KwIf:                 {"KwIf", "if"},
	KwIff:                {"KwIff", "iff"},
	KwIfNone:             {"KwIfNone", "ifnone"},
	KwIgnoreBins:         {"KwIgnoreBins", "ignore_bins"},
	KwIllegalBins:        {"KwIllegalBins", "illegal_bins"},
	KwImplements:         {"KwImplements", "implements"},
	KwImplies:            {"KwImplies", "implies"},
	KwImport:             {"KwImport", "import"},
	KwIncDir:             {"KwIncDir", "incdir"},
	KwInclude:            {"KwInclude", "include"},
	KwInitial:            {"KwInitial", "initial"},
	KwInOut:              {"KwInOut", "inout"},
	KwInput:              {"KwInput", "input"},
	KwInside:             {"KwInside", "inside"},
	KwInstance:           {"KwInstance", "instance"},
	KwInt:                {"KwInt", "int"},
	KwInteger:            {"KwInteger", "integer"},
	KwInterconnect:       {"KwInterconnect", "interconnect"},
	KwInterface:          {"KwInterface", "interface"},
	KwIntersect:          {"KwIntersect", "intersect"},
	KwJoin:               {"KwJoin", "join"},
	KwJoinAny:            {"KwJoinAny", "join_any"},
	KwJoinNone:           {"KwJoinNone", "join_none"},
	KwLarge:              {"KwLarge", "large"},
	KwLet:                {"KwLet", "let"},
	KwLibList:            {"KwLibList", "liblist"},
	KwLibrary:            {"KwLibrary", "library"},
	KwLocal:              {"KwLocal", "local"},
	KwLocalParam:         {"KwLocalParam", "localparam"},
	KwLogic:              {"KwLogic", "logic"},
	KwLongInt:            {"KwLongInt", "longint"},
	KwMacromodule:        {"KwMacromodule", "macromodule"},
	KwMatches:            {"KwMatches", "matches"},
	KwMedium:             {"KwMedium", "medium"},
	KwModport:            {"KwModport", "modport"},
	KwModule:             {"KwModule", "module"},
	KwNand:               {"KwNand", "nand"},
	KwNegEdge:            {"KwNegEdge", "negedge"},
	KwNetType:            {"KwNetType", "nettype"},
	KwNew:                {"KwNew", "new"},
	KwNextTime:           {"KwNextTime", "nexttime"},
	KwNmos:               {"KwNmos", "nmos"},
	KwNor:                {"KwNor", "nor"},
	KwNoShowCancelled:    {"KwNoShowCancelled", "noshowcancelled"},
	KwNot:                {"KwNot", "not"},
	KwNotIf0:             {"KwNotIf0", "notif0"},
	KwNotIf1:             {"KwNotIf1", "notif1"},
	KwNull:               {"KwNull", "null"},
	KwOr:                 {"KwOr", "or"},
	KwOutput:             {"KwOutput", "output"},
	KwPackage:            {"KwPackage", "package"},
	KwPacked:             {"KwPacked", "packed"},
	KwParameter:          {"KwParameter", "parameter"},
	KwPmos:               {"KwPmos", "pmos"},
	KwPosEdge:            {"KwPosEdge", "posedge"},
	KwPrimitive:          {"KwPrimitive", "primitive"},
	KwPriority:           {"KwPriority", "priority"},
	KwProgram:            {"KwProgram", "program"},
	KwProperty:           {"KwProperty", "property"},
	KwProtected:          {"KwProtected", "protected"},
	KwPull0:              {"KwPull0", "pull0"},
	KwPull1:              {"KwPull1", "pull1"},
	KwPullDown:           {"KwPullDown", "pulldown"},
	KwPullUp:             {"KwPullUp", "pullup"},
	KwPulseStyleOnDetect: {"KwPulseStyleOnDetect", "pulsestyle_ondetect"},
	KwPulseStyleOnEvent:  {"KwPulseStyleOnEvent", "pulsestyle_onevent"},
	KwPure:               {"KwPure", "pure"},
	KwRand:               {"KwRand", "rand"},
	KwRandC:              {"KwRandC", "randc"},
	KwRandCase:           {"KwRandCase", "randcase"},
	KwRandSequence:       {"KwRandSequence", "randsequence"},
	KwRcmos:              {"KwRcmos", "rcmos"},
	KwReal:               {"KwReal", "real"},
	KwRealTime:           {"KwRealTime", "realtime"},
	KwRef:                {"KwRef", "ref"},
	KwReg:                {"KwReg", "reg"},
	KwRejectOn:           {"KwRejectOn", "reject_on"},
	KwRelease:            {"KwRelease", "release"},
	KwRepeat:             {"KwRepeat", "repeat"},
	KwRestrict:           {"KwRestrict", "restrict"},
	KwReturn:             {"KwReturn", "return"},
	KwRnmos:              {"KwRnmos", "rnmos"},
	KwRpmos:              {"KwRpmos", "rpmos"},
	KwRtran:              {"KwRtran", "rtran"},
	KwRtranIf0:           {"KwRtranIf0", "rtranif0"},
	KwRtranIf1:           {"KwRtranIf1", "rtranif1"},
	KwSAlways:            {"KwSAlways", "s_always"},
	KwSEventually:        {"KwSEventually", "s_eventually"},
	KwSNextTime:          {"KwSNextTime", "s_nexttime"},
	KwSUntil:             {"KwSUntil", "s_until"},
	KwSUntilWith:         {"KwSUntilWith", "s_until_with"},
	KwScalared:           {"KwScalared", "scalared"},
	KwSequence:           {"KwSequence", "sequence"},
	KwShortInt:           {"KwShortInt", "shortint"},
	KwShortReal:          {"KwShortReal", "shortreal"},
	KwShowCancelled:      {"KwShowCancelled", "showcancelled"},
	KwSigned:             {"KwSigned", "signed"},
	KwSmall:              {"KwSmall", "small"},
	KwSoft:               {"KwSoft", "soft"},
	KwSolve:              {"KwSolve", "solve"},
	KwSpecify:            {"KwSpecify", "specify"},
	KwSpecParam:          {"KwSpecParam", "specparam"},
	KwStatic:             {"KwStatic", "static"},
	KwString:             {"KwString", "string"},
	KwStrong:             {"KwStrong", "strong"},
	KwStrong0:            {"KwStrong0", "strong0"},
	KwStrong1:            {"KwStrong1", "strong1"},
	KwStruct:             {"KwStruct", "struct"},
	KwSuper:              {"KwSuper", "super"},
	KwSupply0:            {"KwSupply0", "supply0"},
	KwSupply1:            {"KwSupply1", "supply1"},
	KwSyncAcceptOn:       {"KwSyncAcceptOn", "sync_accept_on"},
	KwSyncRejectOn:       {"KwSyncRejectOn", "sync_reject_on"},
	KwTable:              {"KwTable", "table"},
	KwTagged:             {"KwTagged", "tagged"},
	KwTask:               {"KwTask", "task"},
	KwThis:               {"KwThis", "this"},
	KwThroughout:         {"KwThroughout", "throughout"},
	KwTime:               {"KwTime", "time"},
	KwTimePrecision:      {"KwTimePrecision", "timeprecision"},
	KwTimeUnit:           {"KwTimeUnit", "timeunit"},
	KwTran:               {"KwTran", "tran"},
	KwTranIf0:            {"KwTranIf0", "tranif0"},
	KwTranIf1:            {"KwTranIf1", "tranif1"},
	KwTri:                {"KwTri", "tri"},
	KwTri0:               {"KwTri0", "tri0"},
	KwTri1:               {"KwTri1", "tri1"},
	KwTriAnd:             {"KwTriAnd", "triand"},
	KwTriOr:              {"KwTriOr", "trior"},
	KwTriReg:             {"KwTriReg", "trireg"},
	KwType:               {"KwType", "type"},
	KwTypedef:            {"KwTypedef", "typedef"},
	KwUnion:              {"KwUnion", "union"},
	KwUnique:             {"KwUnique", "unique"},
	KwUnique0:            {"KwUnique0", "unique0"},
	KwUnsigned:           {"KwUnsigned", "unsigned"},
	KwUntil:              {"KwUntil", "until"},
	KwUntilWith:          {"KwUntilWith", "until_with"},
	KwUntyped:            {"KwUntyped", "untyped"},
	KwUse:                {"KwUse", "use"},
	KwUWire:              {"KwUWire", "uwire"},
	KwVar:                {"KwVar", "var"},
	KwVectored:           {"KwVectored", "vectored"},
	KwVirtual:            {"KwVirtual", "virtual"},
	KwVoid:               {"KwVoid", "void"},
	KwWait:               {"KwWait", "wait"},
	KwWaitOrder:          {"KwWaitOrder", "wait_order"},
	KwWAnd:               {"KwWAnd", "wand"},
	KwWeak:               {"KwWeak", "weak"},
	KwWeak0:              {"KwWeak0", "weak0"},
	KwWeak1:              {"KwWeak1", "weak1"},
	KwWhile:              {"KwWhile", "while"},
	KwWildcard:           {"KwWildcard", "wildcard"},
	KwWire:               {"KwWire", "wire"},
	KwWith:               {"KwWith", "with"},
	KwWithin:             {"KwWithin", "within"},
	KwWOr:                {"KwWOr", "wor"},
	KwXnor:               {"KwXnor", "xnor"},
	KwXor:                {"KwXor", "xor"},
}
