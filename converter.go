package lexique

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be an isolated content fragment (e.g., a single
	// definition block). Returns the Markdown representation.
	Convert(html string) (string, error)
}
