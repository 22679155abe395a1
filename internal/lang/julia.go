package lang

func juliaSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Julia,
		Class:          ClassGeneric,
		FileExtensions: []string{".jl"},
		Comments: CommentStyle{
			LinePrefixes: []string{"#"},
			BlockStart:   "#=",
			BlockEnd:     "=#",
		},
	}
}
