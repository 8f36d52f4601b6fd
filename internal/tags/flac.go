package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/go-flac"

	"github.com/handiism/vimtag/internal/model"
)

// Vorbis comment keys for the editable fields. Comment keys are
// case-insensitive; these are the conventional upper-case spellings.
var vorbisKeys = map[string]string{
	model.FieldTitle:       "TITLE",
	model.FieldArtist:      "ARTIST",
	model.FieldAlbum:       "ALBUM",
	model.FieldGenre:       "GENRE",
	model.FieldTrackNumber: "TRACKNUMBER",
	model.FieldDate:        "DATE",
}

// flacStore reads and writes Vorbis comments on FLAC files, working on
// the raw VORBIS_COMMENT metadata block through the go-flac library.
type flacStore struct{}

func (flacStore) Read(path string) (model.Tags, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse flac file: %w", err)
	}

	tags := model.Tags{}
	for field := range vorbisKeys {
		tags[field] = ""
	}

	block := findVorbisBlock(f)
	if block == nil {
		return tags, nil
	}

	cmts, err := parseVorbisComment(block.Data)
	if err != nil {
		return nil, fmt.Errorf("parse vorbis comments: %w", err)
	}

	fieldByKey := make(map[string]string, len(vorbisKeys))
	for field, key := range vorbisKeys {
		fieldByKey[key] = field
	}

	for _, c := range cmts.Comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		field, ok := fieldByKey[strings.ToUpper(key)]
		if !ok {
			continue
		}
		// First value wins when a key is repeated.
		if tags[field] == "" {
			tags[field] = value
		}
	}
	return tags, nil
}

func (flacStore) Apply(path string, changes model.ChangeSet) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac file: %w", err)
	}

	block := findVorbisBlock(f)
	cmts := &vorbisComment{Vendor: "vimtag"}
	if block != nil {
		cmts, err = parseVorbisComment(block.Data)
		if err != nil {
			return fmt.Errorf("parse vorbis comments: %w", err)
		}
	}

	changed := make(map[string]string, len(changes.Changes))
	for _, change := range changes.Changes {
		if key, ok := vorbisKeys[change.Field]; ok {
			changed[key] = change.New
		}
	}

	// Rebuild the comment list: keep comments for untouched keys,
	// drop every entry for a changed key.
	kept := cmts.Comments[:0]
	for _, c := range cmts.Comments {
		key, _, ok := strings.Cut(c, "=")
		if ok {
			if _, isChanged := changed[strings.ToUpper(key)]; isChanged {
				continue
			}
		}
		kept = append(kept, c)
	}
	cmts.Comments = kept

	// Append the new values in stable field order.
	for _, field := range model.Fields {
		key := vorbisKeys[field]
		if value, ok := changed[key]; ok && value != "" {
			cmts.Comments = append(cmts.Comments, key+"="+value)
		}
	}

	if block == nil {
		block = &flac.MetaDataBlock{Type: flac.VorbisComment}
		f.Meta = append(f.Meta, block)
	}
	block.Data = cmts.marshal()

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac file: %w", err)
	}
	return nil
}

func findVorbisBlock(f *flac.File) *flac.MetaDataBlock {
	for _, block := range f.Meta {
		if block.Type == flac.VorbisComment {
			return block
		}
	}
	return nil
}
