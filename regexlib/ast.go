package regexlib

// The grammar types double as the regex AST.
//
//	Expr   = Branch { "|" Branch }   union
//	Branch = Factor { Factor }       concatenation
//	Factor = Atom { "*" }            star
//	Atom   = Char | "(" Expr ")"     literal or group

type exprNode struct {
	Branches []*branchNode `parser:"@@ ( '|' @@ )*"`
}

type branchNode struct {
	Factors []*factorNode `parser:"@@+"`
}

type factorNode struct {
	Atom  *atomNode `parser:"@@"`
	Stars []string  `parser:"@'*'*"`
}

type atomNode struct {
	Literal *string   `parser:"  @Char"`
	Group   *exprNode `parser:"| '(' @@ ')'"`
}
