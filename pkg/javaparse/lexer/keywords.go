package lexer

// keywords maps reserved-word spelling to its token kind. true/false/null
// are deliberately absent: they are literal tokens, not keywords.
var keywords = map[string]TokenKind{
	"abstract": TokenAbstract,
	"assert": TokenAssert,
	"boolean": TokenBoolean,
	"break": TokenBreak,
	"byte": TokenByte,
	"case": TokenCase,
	"catch": TokenCatch,
	"char": TokenChar,
	"class": TokenClass,
	"const": TokenConst,
	"continue": TokenContinue,
	"default": TokenDefault,
	"do": TokenDo,
	"double": TokenDouble,
	"else": TokenElse,
	"enum": TokenEnum,
	"extends": TokenExtends,
	"final": TokenFinal,
	"finally": TokenFinally,
	"float": TokenFloat,
	"for": TokenFor,
	"goto": TokenGoto,
	"if": TokenIf,
	"implements": TokenImplements,
	"import": TokenImport,
	"instanceof": TokenInstanceof,
	"int": TokenInt,
	"interface": TokenInterface,
	"long": TokenLong,
	"native": TokenNative,
	"new": TokenNew,
	"package": TokenPackage,
	"private": TokenPrivate,
	"protected": TokenProtected,
	"public": TokenPublic,
	"return": TokenReturn,
	"short": TokenShort,
	"static": TokenStatic,
	"strictfp": TokenStrictfp,
	"super": TokenSuper,
	"switch": TokenSwitch,
	"synchronized": TokenSynchronized,
	"this": TokenThis,
	"throw": TokenThrow,
	"throws": TokenThrows,
	"transient": TokenTransient,
	"try": TokenTry,
	"void": TokenVoid,
	"volatile": TokenVolatile,
	"while": TokenWhile,
}

// contextualKeywords holds words reserved only in specific syntactic
// positions. The lexer always
// emits their distinct kind; the parser decides, per production, whether
// to accept the kind or fall back to treating it as TokenIdentifier.
var contextualKeywords = map[string]TokenKind{
	"var": TokenVar,
	"yield": TokenYield,
	"record": TokenRecord,
	"module": TokenModule,
	"open": TokenOpen,
	"to": TokenTo,
	"requires": TokenRequires,
	"exports": TokenExports,
	"opens": TokenOpens,
	"uses": TokenUses,
	"provides": TokenProvides,
	"with": TokenWith,
	"transitive": TokenTransitive,
	"sealed": TokenSealed,
	"permits": TokenPermits,
	"non-sealed": TokenNonSealed,
	"when": TokenWhen,
}

// literalWords holds the three words that are lexed as literal tokens
// rather than keywords or identifiers.
var literalWords = map[string]TokenKind{
	"true": TokenBooleanLiteral,
	"false": TokenBooleanLiteral,
	"null": TokenNullLiteral,
}

// keywordText inverts keywords and contextualKeywords for TokenKind.String.
var keywordText map[TokenKind]string

func init() {
	keywordText = make(map[TokenKind]string, len(keywords)+len(contextualKeywords))
	for text, kind := range keywords {
		keywordText[kind] = text
	}
	for text, kind := range contextualKeywords {
		keywordText[kind] = text
	}
}

// classifyWord looks up decoded identifier text and returns the kind it
// should lex as: a reserved keyword, a contextual keyword, a literal, or
// plain TokenIdentifier.
func classifyWord(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	if kind, ok := contextualKeywords[text]; ok {
		return kind
	}
	if kind, ok := literalWords[text]; ok {
		return kind
	}
	return TokenIdentifier
}

// IsContextualKeyword reports whether kind is one of the contextual
// keywords the parser may reinterpret as an identifier.
func IsContextualKeyword(kind TokenKind) bool {
	switch kind {
	case TokenVar, TokenYield, TokenRecord, TokenModule, TokenOpen, TokenTo,
		TokenRequires, TokenExports, TokenOpens, TokenUses, TokenProvides,
		TokenWith, TokenTransitive, TokenSealed, TokenPermits, TokenNonSealed,
		TokenWhen:
		return true
	}
	return false
}
