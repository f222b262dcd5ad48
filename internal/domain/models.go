package domain

// Section is a numbered top-level content folder forming one navigation group
type Section struct {
	Name      string     `json:"folder" yaml:"folder"`
	Number    int        `json:"number" yaml:"number"`
	Slug      string     `json:"slug" yaml:"slug"`
	Title     string     `json:"title" yaml:"title"`
	Documents []Document `json:"documents,omitempty" yaml:"documents,omitempty"`
}

// IndexPath returns the manifest link target of the section landing page
func (s Section) IndexPath() string {
	return s.Name + "/" + IndexFile
}

// Document is a Markdown page inside a section
type Document struct {
	Name  string `json:"file" yaml:"file"`
	Title string `json:"title" yaml:"title"`
	Path  string `json:"path" yaml:"path"`
}

// IndexFile is the landing page name at the root and inside every section
const IndexFile = "index.md"

// MarkdownExt is the only document extension picked up by the scan
const MarkdownExt = ".md"
