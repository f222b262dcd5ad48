package manifest

import "github.com/voust/alignment/internal/domain"

// DefaultTitle is the top-level heading of the rendered manifest
const DefaultTitle = "Summary"

// IntroductionLabel is the link label of the root landing page
const IntroductionLabel = "Introduction"

// Manifest is the ordered navigation tree of a source root
type Manifest struct {
	Title        string           `yaml:"title" json:"title"`
	Introduction string           `yaml:"introduction,omitempty" json:"introduction,omitempty"`
	Sections     []domain.Section `yaml:"sections" json:"sections"`
}

// New creates an empty manifest
func New() *Manifest {
	return &Manifest{
		Title:    DefaultTitle,
		Sections: []domain.Section{},
	}
}

// DocumentCount returns the number of documents across all sections
func (m *Manifest) DocumentCount() int {
	n := 0
	for _, sec := range m.Sections {
		n += len(sec.Documents)
	}
	return n
}
