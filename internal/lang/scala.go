package lang

func scalaSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Scala,
		Class:          ClassGeneric,
		FileExtensions: []string{".scala"},
		FunctionQuery:  "(function_definition name: (identifier) @func)",
		ClassQuery:     "(class_definition name: (identifier) @class)",
		Comments:       cStyleComments(),
	}
}
