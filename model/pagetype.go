package model

// PageTypeFormat enumerates background formats. Formats with a ":" prefix
// are special backgrounds not drawn from a ruling pattern.
type PageTypeFormat string

const (
	FormatPlain     PageTypeFormat = "plain"
	FormatRuled     PageTypeFormat = "ruled"
	FormatLined     PageTypeFormat = "lined"
	FormatStaves    PageTypeFormat = "staves"
	FormatGraph     PageTypeFormat = "graph"
	FormatDotted    PageTypeFormat = "dotted"
	FormatIsoDotted PageTypeFormat = "isodotted"
	FormatIsoGraph  PageTypeFormat = "isograph"
	FormatPdf       PageTypeFormat = ":pdf"
	FormatImage     PageTypeFormat = ":image"
	FormatCopy      PageTypeFormat = ":copy"
)

var pageTypeFormats = map[string]PageTypeFormat{
	"plain":     FormatPlain,
	"ruled":     FormatRuled,
	"lined":     FormatLined,
	"staves":    FormatStaves,
	"graph":     FormatGraph,
	"dotted":    FormatDotted,
	"isodotted": FormatIsoDotted,
	"isograph":  FormatIsoGraph,
	":pdf":      FormatPdf,
	":image":    FormatImage,
	":copy":     FormatCopy,
}

// PageTypeFormatFromString resolves a format token. ok is false for tokens
// outside the known set.
func PageTypeFormatFromString(s string) (PageTypeFormat, bool) {
	f, ok := pageTypeFormats[s]
	return f, ok
}

// PageType is a page background: a format plus an optional format-specific
// configuration string (ruling spacing, colors and the like).
type PageType struct {
	Format PageTypeFormat
	Config string
}

// IsPdfPage reports whether the background is backed by a pdf page.
func (pt PageType) IsPdfPage() bool { return pt.Format == FormatPdf }

// IsSpecial reports whether the background is not a ruling pattern.
func (pt PageType) IsSpecial() bool {
	return pt.Format == FormatPdf || pt.Format == FormatImage || pt.Format == FormatCopy
}
