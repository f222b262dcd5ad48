package manifest

import (
	"fmt"
	"strings"
)

const indent = "    "

// Lines returns the manifest as Markdown lines, without line terminators
func (m *Manifest) Lines() []string {
	lines := []string{"# " + m.Title, ""}

	if m.Introduction != "" {
		lines = append(lines, link(0, IntroductionLabel, m.Introduction), "")
	}

	for _, sec := range m.Sections {
		lines = append(lines, link(0, sec.Title, sec.IndexPath()))
		for _, doc := range sec.Documents {
			lines = append(lines, link(1, doc.Title, doc.Path))
		}
	}

	return lines
}

// Render returns the manifest file content: lines joined by "\n" plus a
// single trailing newline
func (m *Manifest) Render() []byte {
	return []byte(strings.Join(m.Lines(), "\n") + "\n")
}

func link(depth int, title, target string) string {
	return fmt.Sprintf("%s- [%s](%s)", strings.Repeat(indent, depth), title, target)
}
