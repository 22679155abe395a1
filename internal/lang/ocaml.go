package lang

func ocamlSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       OCaml,
		Class:          ClassGeneric,
		FileExtensions: []string{".ml", ".mli"},
		FunctionQuery:  "(value_definition (let_binding pattern: (value_name) @func))",
		ClassQuery:     "(type_definition (type_binding name: (type_constructor) @class))",
		Comments: CommentStyle{
			BlockStart: "(*",
			BlockEnd:   "*)",
		},
	}
}
