package lang

func goSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Go,
		Class:          ClassGeneric,
		FileExtensions: []string{".go"},
		FunctionQuery:  "(function_declaration name: (identifier) @func)",
		ClassQuery:     "(type_declaration (type_spec name: (type_identifier) @class))",
		Comments:       cStyleComments(),
	}
}
