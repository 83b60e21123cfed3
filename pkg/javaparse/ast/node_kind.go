package ast

// NodeKind discriminates the ~120 node shapes the parser can allocate into
// the node arena. It is stored as a single byte in each arena entry
// (see arena.Node), so the inventory here is the one true list of what a
// caller can see come back out of a parse.
//
// Per-kind structural data is not stored on the node itself: callers
// recompute it from the node's source span, or a later stage holds it in
// a side table keyed by node index.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota

	// Roots.
	KindCompilationUnit
	KindModuleDeclaration

	// Compilation unit members.
	KindPackageDeclaration
	KindImportDeclaration
	KindModuleImportDeclaration
	KindStaticImportDeclaration
	KindQualifiedName

	// Module directives.
	KindRequiresDirective
	KindExportsDirective
	KindOpensDirective
	KindUsesDirective
	KindProvidesDirective

	// Type declarations.
	KindClassDeclaration
	KindInterfaceDeclaration
	KindEnumDeclaration
	KindRecordDeclaration
	KindAnnotationDeclaration
	KindEnumConstant
	KindRecordComponent
	KindTypeParameter
	KindExtendsClause
	KindImplementsClause
	KindPermitsClause
	KindAnonymousClassBody

	// Members.
	KindFieldDeclaration
	KindVariableDeclarator
	KindMethodDeclaration
	KindConstructorDeclaration
	KindCompactConstructorDeclaration
	KindParameter
	KindInitializerBlock
	KindThrowsClause
	KindAnnotationElementDeclaration
	KindModifierList
	KindAnnotation
	KindAnnotationArgument

	// Statements.
	KindBlockStatement
	KindIfStatement
	KindForStatement
	KindEnhancedForStatement
	KindWhileStatement
	KindDoWhileStatement
	KindSwitchStatement
	KindSwitchRule
	KindSwitchLabel
	KindTryStatement
	KindCatchClause
	KindResourceDeclaration
	KindSynchronizedStatement
	KindReturnStatement
	KindThrowStatement
	KindYieldStatement
	KindBreakStatement
	KindContinueStatement
	KindAssertStatement
	KindEmptyStatement
	KindLabeledStatement
	KindLocalClassStatement
	KindLocalVariableStatement
	KindExpressionStatement

	// Expressions.
	KindAssignmentExpression
	KindTernaryExpression
	KindBinaryExpression
	KindInstanceofExpression
	KindUnaryExpression
	KindPostfixExpression
	KindCastExpression
	KindParenthesizedExpression
	KindLambdaExpression
	KindMethodReferenceExpression
	KindMethodInvocationExpression
	KindFieldAccessExpression
	KindArrayAccessExpression
	KindArrayCreationExpression
	KindArrayInitializer
	KindObjectCreationExpression
	KindClassLiteralExpression
	KindThisExpression
	KindSuperExpression
	KindSwitchExpression
	KindNameExpression
	KindArgumentList

	// Literals.
	KindIntegerLiteral
	KindLongLiteral
	KindFloatLiteral
	KindDoubleLiteral
	KindBooleanLiteral
	KindCharLiteral
	KindStringLiteral
	KindTextBlockLiteral
	KindNullLiteral

	// Patterns.
	KindTypePattern
	KindRecordPattern
	KindPrimitivePattern
	KindGuardExpression

	// Types.
	KindPrimitiveType
	KindClassType
	KindParameterizedType
	KindWildcardType
	KindArrayType
	KindUnionType
	KindIntersectionType

	// Comments.
	KindLineComment
	KindMarkdownDocComment
	KindBlockComment
	KindJavadocComment

	kindCount
)

var nodeKindNames = [kindCount]string{
	KindInvalid: "invalid",
	KindCompilationUnit: "compilation_unit",
	KindModuleDeclaration: "module_declaration",
	KindPackageDeclaration: "package_declaration",
	KindImportDeclaration: "import_declaration",
	KindModuleImportDeclaration: "module_import_declaration",
	KindStaticImportDeclaration: "static_import_declaration",
	KindQualifiedName: "qualified_name",
	KindRequiresDirective: "requires_directive",
	KindExportsDirective: "exports_directive",
	KindOpensDirective: "opens_directive",
	KindUsesDirective: "uses_directive",
	KindProvidesDirective: "provides_directive",
	KindClassDeclaration: "class_declaration",
	KindInterfaceDeclaration: "interface_declaration",
	KindEnumDeclaration: "enum_declaration",
	KindRecordDeclaration: "record_declaration",
	KindAnnotationDeclaration: "annotation_declaration",
	KindEnumConstant: "enum_constant",
	KindRecordComponent: "record_component",
	KindTypeParameter: "type_parameter",
	KindExtendsClause: "extends_clause",
	KindImplementsClause: "implements_clause",
	KindPermitsClause: "permits_clause",
	KindAnonymousClassBody: "anonymous_class_body",
	KindFieldDeclaration: "field_declaration",
	KindVariableDeclarator: "variable_declarator",
	KindMethodDeclaration: "method_declaration",
	KindConstructorDeclaration: "constructor_declaration",
	KindCompactConstructorDeclaration: "compact_constructor_declaration",
	KindParameter: "parameter",
	KindInitializerBlock: "initializer_block",
	KindThrowsClause: "throws_clause",
	KindAnnotationElementDeclaration: "annotation_element_declaration",
	KindModifierList: "modifier_list",
	KindAnnotation: "annotation",
	KindAnnotationArgument: "annotation_argument",
	KindBlockStatement: "block_statement",
	KindIfStatement: "if_statement",
	KindForStatement: "for_statement",
	KindEnhancedForStatement: "enhanced_for_statement",
	KindWhileStatement: "while_statement",
	KindDoWhileStatement: "do_while_statement",
	KindSwitchStatement: "switch_statement",
	KindSwitchRule: "switch_rule",
	KindSwitchLabel: "switch_label",
	KindTryStatement: "try_statement",
	KindCatchClause: "catch_clause",
	KindResourceDeclaration: "resource_declaration",
	KindSynchronizedStatement: "synchronized_statement",
	KindReturnStatement: "return_statement",
	KindThrowStatement: "throw_statement",
	KindYieldStatement: "yield_statement",
	KindBreakStatement: "break_statement",
	KindContinueStatement: "continue_statement",
	KindAssertStatement: "assert_statement",
	KindEmptyStatement: "empty_statement",
	KindLabeledStatement: "labeled_statement",
	KindLocalClassStatement: "local_class_statement",
	KindLocalVariableStatement: "local_variable_statement",
	KindExpressionStatement: "expression_statement",
	KindAssignmentExpression: "assignment_expression",
	KindTernaryExpression: "ternary_expression",
	KindBinaryExpression: "binary_expression",
	KindInstanceofExpression: "instanceof_expression",
	KindUnaryExpression: "unary_expression",
	KindPostfixExpression: "postfix_expression",
	KindCastExpression: "cast_expression",
	KindParenthesizedExpression: "parenthesized_expression",
	KindLambdaExpression: "lambda_expression",
	KindMethodReferenceExpression: "method_reference_expression",
	KindMethodInvocationExpression: "method_invocation_expression",
	KindFieldAccessExpression: "field_access_expression",
	KindArrayAccessExpression: "array_access_expression",
	KindArrayCreationExpression: "array_creation_expression",
	KindArrayInitializer: "array_initializer",
	KindObjectCreationExpression: "object_creation_expression",
	KindClassLiteralExpression: "class_literal_expression",
	KindThisExpression: "this_expression",
	KindSuperExpression: "super_expression",
	KindSwitchExpression: "switch_expression",
	KindNameExpression: "name_expression",
	KindArgumentList: "argument_list",
	KindIntegerLiteral: "integer_literal",
	KindLongLiteral: "long_literal",
	KindFloatLiteral: "float_literal",
	KindDoubleLiteral: "double_literal",
	KindBooleanLiteral: "boolean_literal",
	KindCharLiteral: "char_literal",
	KindStringLiteral: "string_literal",
	KindTextBlockLiteral: "text_block_literal",
	KindNullLiteral: "null_literal",
	KindTypePattern: "type_pattern",
	KindRecordPattern: "record_pattern",
	KindPrimitivePattern: "primitive_pattern",
	KindGuardExpression: "guard_expression",
	KindPrimitiveType: "primitive_type",
	KindClassType: "class_type",
	KindParameterizedType: "parameterized_type",
	KindWildcardType: "wildcard_type",
	KindArrayType: "array_type",
	KindUnionType: "union_type",
	KindIntersectionType: "intersection_type",
	KindLineComment: "line_comment",
	KindMarkdownDocComment: "markdown_doc_comment",
	KindBlockComment: "block_comment",
	KindJavadocComment: "javadoc_comment",
}

// String returns the lower_snake_case name of the node kind, used in
// diagnostics and debug dumps.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "unknown"
}
