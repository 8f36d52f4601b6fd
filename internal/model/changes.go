package model

// Change records one edited tag field on one file.
type Change struct {
	// Field is the tag field name (one of Fields).
	Field string

	// Old is the value captured when the file was scanned.
	Old string

	// New is the value parsed back from the edit document.
	// Empty means the user cleared the tag.
	New string
}

// ChangeSet is the computed difference between a file's original tags
// and the tags parsed back from the edit document.
//
// An empty ChangeSet means the user left the file's block untouched and
// the writer skips the file entirely.
type ChangeSet struct {
	// Path is the absolute path of the audio file the changes apply to.
	Path string

	// Changes holds one entry per edited field, in document order.
	Changes []Change
}

// Empty reports whether the change set contains no edits.
func (cs ChangeSet) Empty() bool {
	return len(cs.Changes) == 0
}

// Get returns the change for field, if any.
func (cs ChangeSet) Get(field string) (Change, bool) {
	for _, c := range cs.Changes {
		if c.Field == field {
			return c, true
		}
	}
	return Change{}, false
}

// TitleChange returns the new title and true when the set contains a
// title edit with a non-empty new value. Clearing the title is a tag
// change like any other but never triggers a rename.
func (cs ChangeSet) TitleChange() (string, bool) {
	c, ok := cs.Get(FieldTitle)
	if !ok || c.New == "" {
		return "", false
	}
	return c.New, true
}
