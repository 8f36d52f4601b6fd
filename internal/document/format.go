package document

import (
	"strings"

	"github.com/handiism/vimtag/internal/model"
)

// Markers of the edit document. The "# File:" line is the identity of
// a block: the parser maps each block back to its audio file by this
// line, so it must survive the editor round trip unchanged.
const (
	filePrefix = "# File: "
	blockStart = "# --- Metadata ---"
	blockEnd   = "# --- End Metadata ---"
)

// instructions is rendered once at the top of the document.
const instructions = `# vimtag metadata editor
# Instructions:
# - Edit the values after each "key:".
# - Leave a value blank to clear that tag.
# - Do NOT edit the "# File:" lines or the metadata separators.
# - Blocks may be reordered, but every "# File:" line must stay
#   present exactly once.
# - Save and close the editor to apply changes.
# --------------------------------------------------
`

// Format renders the edit document for a set of scanned files: the
// instruction header once, then one block per file with a "key: value"
// line for every editable field. Missing tags render as empty values
// so the user can fill them in.
func Format(files []*model.AudioFile) []byte {
	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n")

	for _, f := range files {
		b.WriteString(filePrefix)
		b.WriteString(f.Path)
		b.WriteString("\n")
		b.WriteString(blockStart)
		b.WriteString("\n")
		for _, field := range model.Fields {
			b.WriteString(field)
			b.WriteString(": ")
			// Normalized so the value survives the line format and
			// the parser's trimming unchanged.
			b.WriteString(model.NormalizeValue(f.Tags.Get(field)))
			b.WriteString("\n")
		}
		b.WriteString(blockEnd)
		b.WriteString("\n\n")
	}

	return []byte(b.String())
}
