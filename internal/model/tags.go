package model

import "strings"

// Editable tag fields, in the order they appear in the edit document.
const (
	FieldTitle       = "title"
	FieldArtist      = "artist"
	FieldAlbum       = "album"
	FieldGenre       = "genre"
	FieldTrackNumber = "tracknumber"
	FieldDate        = "date"
)

// Fields lists every editable tag field in document order.
//
// The order is fixed so that the edit document renders identically for
// every file, and so that change sets are reported in a stable order.
var Fields = []string{
	FieldTitle,
	FieldArtist,
	FieldAlbum,
	FieldGenre,
	FieldTrackNumber,
	FieldDate,
}

// KnownField reports whether name is one of the editable tag fields.
func KnownField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Tags maps editable tag fields to their string values.
//
// A missing key and an empty value mean the same thing: the tag is not
// set. Tag stores normalize every format's native representation (ID3
// frames, Vorbis comments, MP4 atoms) into this one shape so the rest
// of the pipeline never sees format-specific types.
type Tags map[string]string

// Get returns the value for field, or "" when the field is not set.
func (t Tags) Get(field string) string {
	return t[field]
}

// Clone returns an independent copy of the tag mapping.
func (t Tags) Clone() Tags {
	c := make(Tags, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// NormalizeValue canonicalizes a tag value the way the edit document
// represents it: newlines become spaces and surrounding whitespace is
// dropped. The serializer writes normalized values and the parser
// trims everything it reads back, so values are compared in this form
// or a stored value with stray whitespace would diff against its own
// round trip.
func NormalizeValue(v string) string {
	return strings.TrimSpace(strings.ReplaceAll(v, "\n", " "))
}

// Diff compares t (the original tags) against edited and returns one
// Change per field whose normalized value differs. Fields are compared
// in document order. A field present in t but absent or blank in
// edited produces a Change with an empty New value, which the writer
// treats as "clear this tag".
func (t Tags) Diff(edited Tags) []Change {
	var changes []Change
	for _, field := range Fields {
		oldVal := t.Get(field)
		newVal := NormalizeValue(edited.Get(field))
		if NormalizeValue(oldVal) != newVal {
			changes = append(changes, Change{Field: field, Old: oldVal, New: newVal})
		}
	}
	return changes
}
