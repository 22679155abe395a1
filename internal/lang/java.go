package lang

func javaSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Java,
		Class:          ClassGeneric,
		FileExtensions: []string{".java"},
		FunctionQuery:  "(method_declaration name: (identifier) @func)",
		ClassQuery:     "(class_declaration name: (identifier) @class)",
		Comments:       cStyleComments(),
	}
}
