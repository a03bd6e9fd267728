package profile

// Profile is the site owner's configuration: who to highlight in author
// lists and what the mini terminal answers.
type Profile struct {
	// Owner is shown in the browse banner.
	Owner string `yaml:"owner"`

	// HighlightAuthor is emphasised in publication author lists.
	HighlightAuthor string `yaml:"highlight_author"`

	// CodeStyle is the syntax highlighting style for post code blocks.
	CodeStyle string `yaml:"code_style"`

	Terminal TerminalResponses `yaml:"terminal"`
}

// TerminalResponses are the markup bodies of the terminal commands.
// They are trusted site content and are not escaped.
type TerminalResponses struct {
	Skills  string `yaml:"skills"`
	Contact string `yaml:"contact"`
	Pubs    string `yaml:"pubs"`
	Coffee  string `yaml:"coffee"`
}
