package template

import "strings"

// Template is the structure of a generated configuration file.
type Template struct {
	// Header lines precede the annotation, e.g. the import line.
	Header []string `yaml:"header" toml:"header"`

	// Annotation is the marker line placed directly above the class.
	Annotation string `yaml:"annotation" toml:"annotation"`

	// Class is the name of the declaration block.
	Class string `yaml:"class" toml:"class"`

	// Groups are the declarations inside the class, in output order.
	Groups []Group `yaml:"groups" toml:"groups"`
}

// Group is one declaration with its optional leading comments.
type Group struct {
	// Comments are rendered as "// text" lines above the declaration.
	Comments []string `yaml:"comments,omitempty" toml:"comments,omitempty"`

	// Lines are the declaration itself, already indented.
	Lines []string `yaml:"lines" toml:"lines"`

	// Blank adds an empty line after the group.
	Blank bool `yaml:"blank,omitempty" toml:"blank,omitempty"`
}

const indent = "  "

// Render writes the template line by line. Every line, including the last,
// ends with a newline.
func Render(t *Template) []byte {
	w := &lineWriter{}

	for _, line := range t.Header {
		w.line(line)
	}
	if t.Annotation != "" {
		w.line(t.Annotation)
	}
	w.line("class " + t.Class + " {")
	for _, g := range t.Groups {
		for _, c := range g.Comments {
			w.line(commentLine(c))
		}
		for _, l := range g.Lines {
			w.line(l)
		}
		if g.Blank {
			w.line("")
		}
	}
	w.line("}")

	return []byte(w.String())
}

// commentLine turns comment text into an indented Dart line comment.
// Empty text yields a bare "//" so paragraphs can be separated.
func commentLine(text string) string {
	if text == "" {
		return indent + "//"
	}
	return indent + "// " + text
}

type lineWriter struct {
	strings.Builder
}

func (w *lineWriter) line(s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}
