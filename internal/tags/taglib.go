package tags

import (
	"fmt"

	"go.senan.xyz/taglib"

	"github.com/handiism/vimtag/internal/model"
)

// taglibStore handles the formats without a native Go tag writer
// (M4A, OGG, Opus, WAV) through the sandboxed TagLib binding. TagLib
// normalizes all of them to the same upper-case property keys the
// Vorbis mapping uses.
type taglibStore struct{}

var taglibKeys = map[string]string{
	model.FieldTitle:       taglib.Title,
	model.FieldArtist:      taglib.Artist,
	model.FieldAlbum:       taglib.Album,
	model.FieldGenre:       taglib.Genre,
	model.FieldTrackNumber: taglib.TrackNumber,
	model.FieldDate:        taglib.Date,
}

func (taglibStore) Read(path string) (model.Tags, error) {
	props, err := taglib.ReadTags(path)
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	tags := model.Tags{}
	for field, key := range taglibKeys {
		if values := props[key]; len(values) > 0 {
			tags[field] = values[0]
		} else {
			tags[field] = ""
		}
	}
	return tags, nil
}

func (taglibStore) Apply(path string, changes model.ChangeSet) error {
	props := make(map[string][]string, len(changes.Changes))
	for _, change := range changes.Changes {
		key, ok := taglibKeys[change.Field]
		if !ok {
			continue
		}
		if change.New == "" {
			// An empty value list removes the property.
			props[key] = nil
		} else {
			props[key] = []string{change.New}
		}
	}
	if len(props) == 0 {
		return nil
	}

	if err := taglib.WriteTags(path, props, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}
