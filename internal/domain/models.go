package domain

// ElementKind classifies a navigable element
type ElementKind string

const (
	KindHeading   ElementKind = "heading"
	KindParagraph ElementKind = "paragraph"
	KindListItem  ElementKind = "listitem"
	KindLink      ElementKind = "link"
)

// Element represents one navigable target in a document
type Element struct {
	ID     int // position in reading order, stable for the document's lifetime
	Kind   ElementKind
	Level  int    // heading level (1-6), 0 for non-headings
	Text   string // textual content with markup stripped
	Target string // activation target (URL), "" if none
	Line   int    // 1-based source line the element starts on
}

// Activatable reports whether the element carries a resolvable destination
func (e Element) Activatable() bool {
	return e.Target != ""
}

// Document represents a scanned document
type Document struct {
	Path     string
	Title    string // first heading text, or the file name
	Elements []Element
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning    bool
	ElementsFound int
	CurrentPath   string
}
