package lang

func cppSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       CPP,
		Class:          ClassGeneric,
		FileExtensions: []string{".cpp", ".cc", ".cxx", ".hpp"},
		FunctionQuery:  "(function_definition declarator: (function_declarator declarator: (identifier) @func))",
		ClassQuery:     "(class_specifier name: (type_identifier) @class)",
		Comments:       cStyleComments(),
	}
}
