package lang

// Languages from here down have no grammar linked in; they flow through the
// generic strategy's degraded path (language tag and line count only).

func swiftSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Swift,
		Class:          ClassGeneric,
		FileExtensions: []string{".swift"},
		Comments:       cStyleComments(),
	}
}
