package lang

func rustSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Rust,
		Class:          ClassGeneric,
		FileExtensions: []string{".rs"},
		FunctionQuery:  "(function_item name: (identifier) @func)",
		ClassQuery:     "(struct_item name: (type_identifier) @class)",
		Comments:       cStyleComments(),
	}
}
