package token

// Kind identifies the lexical category of a token.
// The set is closed; NumKinds bounds every table indexed by Kind.
type Kind uint16

const (
	// Unknown is the zero Kind. Lookups that do not apply return it.
	Unknown Kind = iota
	// EOF marks the end of the token stream.
	EOF

	Ident       // simple or escaped identifier
	SystemIdent // $display, $bits, ...
	StringLit
	IntLit
	IntBase           // 'h, 'sb, ...
	UnbasedUnsizedLit // '0 '1 'x 'z
	RealLit
	TimeLit
	UnitSystemName // $unit
	RootSystemName // $root
	OneStep        // 1step

	// Punctuation and operators.
	Apostrophe       // '
	ApostropheLBrace // '{
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	LParen           // (
	LParenStar       // (*
	RParen           // )
	StarRParen       // *)
	Semicolon        // ;
	Colon            // :
	ColonAssign      // :=
	ColonSlash       // :/
	ColonColon       // ::
	Comma            // ,
	DotStar          // .*
	Dot              // .
	Slash            // /
	Star             // *
	StarStar         // **
	StarArrow        // *>
	Plus             // +
	PlusPlus         // ++
	PlusColon        // +:
	Minus            // -
	MinusMinus       // --
	MinusColon       // -:
	Arrow            // ->
	ArrowGt          // ->>
	Tilde            // ~
	TildeAmp         // ~&
	TildePipe        // ~|
	TildeCaret       // ~^
	Dollar           // $
	Question         // ?
	Hash             // #
	HashHash         // ##
	HashMinusHash    // #-#
	HashEqHash       // #=#
	Caret            // ^
	CaretTilde       // ^~
	Assign           // =
	EqEq             // ==
	EqEqQuestion     // ==?
	EqEqEq           // ===
	FatArrow         // =>
	PlusAssign       // +=
	MinusAssign      // -=
	SlashAssign      // /=
	StarAssign       // *=
	AmpAssign        // &=
	PipeAssign       // |=
	PercentAssign    // %=
	CaretAssign      // ^=
	ShlAssign        // <<=
	Shl3Assign       // <<<=
	ShrAssign        // >>=
	Shr3Assign       // >>>=
	Shl              // <<
	Shr              // >>
	Shl3             // <<<
	Shr3             // >>>
	Bang             // !
	BangEq           // !=
	BangEqQuestion   // !=?
	BangEqEq         // !==
	Percent          // %
	Lt               // <
	LtEq             // <=
	LtArrow          // <->
	Gt               // >
	GtEq             // >=
	Pipe             // |
	OrOr             // ||
	PipeArrow        // |->
	PipeFatArrow     // |=>
	At               // @
	AtAt             // @@
	Amp              // &
	AndAnd           // &&
	AndAndAnd        // &&&

	// Keywords, IEEE 1800-2017 Annex B.
	KwAcceptOn           // accept_on
	KwAlias              // alias
	KwAlways             // always
	KwAlwaysComb         // always_comb
	KwAlwaysFF           // always_ff
	KwAlwaysLatch        // always_latch
	KwAnd                // and
	KwAssert             // assert
	KwAssign             // assign
	KwAssume             // assume
	KwAutomatic          // automatic
	KwBefore             // before
	KwBegin              // begin
	KwBind               // bind
	KwBins               // bins
	KwBinsOf             // binsof
	KwBit                // bit
	KwBreak              // break
	KwBuf                // buf
	KwBufIf0             // bufif0
	KwBufIf1             // bufif1
	KwByte               // byte
	KwCase               // case
	KwCaseX              // casex
	KwCaseZ              // casez
	KwCell               // cell
	KwCHandle            // chandle
	KwChecker            // checker
	KwClass              // class
	KwClocking           // clocking
	KwCmos               // cmos
	KwConfig             // config
	KwConst              // const
	KwConstraint         // constraint
	KwContext            // context
	KwContinue           // continue
	KwCover              // cover
	KwCoverGroup         // covergroup
	KwCoverPoint         // coverpoint
	KwCross              // cross
	KwDeassign           // deassign
	KwDefault            // default
	KwDefParam           // defparam
	KwDesign             // design
	KwDisable            // disable
	KwDist               // dist
	KwDo                 // do
	KwEdge               // edge
	KwElse               // else
	KwEnd                // end
	KwEndCase            // endcase
	KwEndChecker         // endchecker
	KwEndClass           // endclass
	KwEndClocking        // endclocking
	KwEndConfig          // endconfig
	KwEndFunction        // endfunction
	KwEndGenerate        // endgenerate
	KwEndGroup           // endgroup
	KwEndInterface       // endinterface
	KwEndModule          // endmodule
	KwEndPackage         // endpackage
	KwEndPrimitive       // endprimitive
	KwEndProgram         // endprogram
	KwEndProperty        // endproperty
	KwEndSpecify         // endspecify
	KwEndSequence        // endsequence
	KwEndTable           // endtable
	KwEndTask            // endtask
	KwEnum               // enum
	KwEvent              // event
	KwEventually         // eventually
	KwExpect             // expect
	KwExport             // export
	KwExtends            // extends
	KwExtern             // extern
	KwFinal              // final
	KwFirstMatch         // first_match
	KwFor                // for
	KwForce              // force
	KwForeach            // foreach
	KwForever            // forever
	KwFork               // fork
	KwForkJoin           // forkjoin
	KwFunction           // function
	KwGenerate           // generate
	KwGenVar             // genvar
	KwGlobal             // global
	KwHighZ0             // highz0
	KwHighZ1             // highz1
	KwIf                 // if
	KwIff                // iff
	KwIfNone             // ifnone
	KwIgnoreBins         // ignore_bins
	KwIllegalBins        // illegal_bins
	KwImplements         // implements
	KwImplies            // implies
	KwImport             // import
	KwIncDir             // incdir
	KwInclude            // include
	KwInitial            // initial
	KwInOut              // inout
	KwInput              // input
	KwInside             // inside
	KwInstance           // instance
	KwInt                // int
	KwInteger            // integer
	KwInterconnect       // interconnect
	KwInterface          // interface
	KwIntersect          // intersect
	KwJoin               // join
	KwJoinAny            // join_any
	KwJoinNone           // join_none
	KwLarge              // large
	KwLet                // let
	KwLibList            // liblist
	KwLibrary            // library
	KwLocal              // local
	KwLocalParam         // localparam
	KwLogic              // logic
	KwLongInt            // longint
	KwMacromodule        // macromodule
	KwMatches            // matches
	KwMedium             // medium
	KwModport            // modport
	KwModule             // module
	KwNand               // nand
	KwNegEdge            // negedge
	KwNetType            // nettype
	KwNew                // new
	KwNextTime           // nexttime
	KwNmos               // nmos
	KwNor                // nor
	KwNoShowCancelled    // noshowcancelled
	KwNot                // not
	KwNotIf0             // notif0
	KwNotIf1             // notif1
	KwNull               // null
	KwOr                 // or
	KwOutput             // output
	KwPackage            // package
	KwPacked             // packed
	KwParameter          // parameter
	KwPmos               // pmos
	KwPosEdge            // posedge
	KwPrimitive          // primitive
	KwPriority           // priority
	KwProgram            // program
	KwProperty           // property
	KwProtected          // protected
	KwPull0              // pull0
	KwPull1              // pull1
	KwPullDown           // pulldown
	KwPullUp             // pullup
	KwPulseStyleOnDetect // pulsestyle_ondetect
	KwPulseStyleOnEvent  // pulsestyle_onevent
	KwPure               // pure
	KwRand               // rand
	KwRandC              // randc
	KwRandCase           // randcase
	KwRandSequence       // randsequence
	KwRcmos              // rcmos
	KwReal               // real
	KwRealTime           // realtime
	KwRef                // ref
	KwReg                // reg
	KwRejectOn           // reject_on
	KwRelease            // release
	KwRepeat             // repeat
	KwRestrict           // restrict
	KwReturn             // return
	KwRnmos              // rnmos
	KwRpmos              // rpmos
	KwRtran              // rtran
	KwRtranIf0           // rtranif0
	KwRtranIf1           // rtranif1
	KwSAlways            // s_always
	KwSEventually        // s_eventually
	KwSNextTime          // s_nexttime
	KwSUntil             // s_until
	KwSUntilWith         // s_until_with
	KwScalared           // scalared
	KwSequence           // sequence
	KwShortInt           // shortint
	KwShortReal          // shortreal
	KwShowCancelled      // showcancelled
	KwSigned             // signed
	KwSmall              // small
	KwSoft               // soft
	KwSolve              // solve
	KwSpecify            // specify
	KwSpecParam          // specparam
	KwStatic             // static
	KwString             // string
	KwStrong             // strong
	KwStrong0            // strong0
	KwStrong1            // strong1
	KwStruct             // struct
	KwSuper              // super
	KwSupply0            // supply0
	KwSupply1            // supply1
	KwSyncAcceptOn       // sync_accept_on
	KwSyncRejectOn       // sync_reject_on
	KwTable              // table
	KwTagged             // tagged
	KwTask               // task
	KwThis               // this
	KwThroughout         // throughout
	KwTime               // time
	KwTimePrecision      // timeprecision
	KwTimeUnit           // timeunit
	KwTran               // tran
	KwTranIf0            // tranif0
	KwTranIf1            // tranif1
	KwTri                // tri
	KwTri0               // tri0
	KwTri1               // tri1
	KwTriAnd             // triand
	KwTriOr              // trior
	KwTriReg             // trireg
	KwType               // type
	KwTypedef            // typedef
	KwUnion              // union
	KwUnique             // unique
	KwUnique0            // unique0
	KwUnsigned           // unsigned
	KwUntil              // until
	KwUntilWith          // until_with
	KwUntyped            // untyped
	KwUse                // use
	KwUWire              // uwire
	KwVar                // var
	KwVectored           // vectored
	KwVirtual            // virtual
	KwVoid               // void
	KwWait               // wait
	KwWaitOrder          // wait_order
	KwWAnd               // wand
	KwWeak               // weak
	KwWeak0              // weak0
	KwWeak1              // weak1
	KwWhile              // while
	KwWildcard           // wildcard
	KwWire               // wire
	KwWith               // with
	KwWithin             // within
	KwWOr                // wor
	KwXnor               // xnor
	KwXor                // xor

	// NumKinds is the number of token kinds. It is not a valid Kind.
	NumKinds
)
