package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the site profile file
type Loader struct {
	filePath string
}

// NewLoader creates a new profile loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads the profile file and fills unset fields from Default.
// An empty path yields Default.
func (l *Loader) Load() (Profile, error) {
	if l.filePath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile yaml: %w", err)
	}

	return p.withDefaults(), nil
}

// Default is the built-in profile.
func Default() Profile {
	return Profile{
		Owner:           "Fan J",
		HighlightAuthor: "Fan J",
		CodeStyle:       "github",
		Terminal: TerminalResponses{
			Skills: `<span class="term-highlight">Languages:</span> Python, R, Bash, SQL, Java
<span class="term-highlight">Areas:</span> Bioinformatics, Genomics, ML, Data Pipelines
<span class="term-highlight">Tools:</span> Docker, Snakemake, Nextflow, AWS, Git`,
			Contact: `<span class="term-highlight">LinkedIn:</span> see the Contact section
<span class="term-muted">For inquiries, reach out via LinkedIn</span>`,
			Pubs: `<span class="term-highlight">First-author publications:</span>
<span class="term-muted">See Publications tab for full list</span>`,
			Coffee: `I take mine black. Good taste.`,
		},
	}
}

func (p Profile) withDefaults() Profile {
	def := Default()

	if p.Owner == "" {
		p.Owner = def.Owner
	}
	if p.HighlightAuthor == "" {
		p.HighlightAuthor = def.HighlightAuthor
	}
	if p.CodeStyle == "" {
		p.CodeStyle = def.CodeStyle
	}
	if p.Terminal.Skills == "" {
		p.Terminal.Skills = def.Terminal.Skills
	}
	if p.Terminal.Contact == "" {
		p.Terminal.Contact = def.Terminal.Contact
	}
	if p.Terminal.Pubs == "" {
		p.Terminal.Pubs = def.Terminal.Pubs
	}
	if p.Terminal.Coffee == "" {
		p.Terminal.Coffee = def.Terminal.Coffee
	}
	return p
}
