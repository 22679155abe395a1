package lang

func csharpSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       CSharp,
		Class:          ClassGeneric,
		FileExtensions: []string{".cs"},
		FunctionQuery:  "(method_declaration name: (identifier) @func)",
		ClassQuery:     "(class_declaration name: (identifier) @class)",
		Comments:       cStyleComments(),
	}
}
