package tags

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/handiism/vimtag/internal/model"
)

// ID3v2 text frame IDs for the editable fields.
const (
	frameTitle  = "TIT2"
	frameArtist = "TPE1"
	frameAlbum  = "TALB"
	frameGenre  = "TCON"
	frameTrack  = "TRCK"
	frameDate   = "TDRC"
	frameYear   = "TYER" // ID3v2.3 fallback for date
)

// mp3Store reads and writes ID3v2 tags on MP3 files using the id3v2
// library.
type mp3Store struct{}

func (mp3Store) Read(path string) (model.Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open mp3 tags: %w", err)
	}
	defer tag.Close()

	date := tag.GetTextFrame(frameDate).Text
	if date == "" {
		date = tag.GetTextFrame(frameYear).Text
	}

	return model.Tags{
		model.FieldTitle:       tag.Title(),
		model.FieldArtist:      tag.Artist(),
		model.FieldAlbum:       tag.Album(),
		model.FieldGenre:       tag.Genre(),
		model.FieldTrackNumber: tag.GetTextFrame(frameTrack).Text,
		model.FieldDate:        date,
	}, nil
}

func (mp3Store) Apply(path string, changes model.ChangeSet) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open mp3 tags: %w", err)
	}
	defer tag.Close()

	for _, change := range changes.Changes {
		id, ok := mp3FrameID(change.Field)
		if !ok {
			continue
		}
		tag.DeleteFrames(id)
		if change.Field == model.FieldDate {
			// A stale ID3v2.3 year frame would shadow the cleared or
			// rewritten date on the next read.
			tag.DeleteFrames(frameYear)
		}
		if change.New != "" {
			tag.AddTextFrame(id, id3v2.EncodingUTF8, change.New)
		}
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save mp3 tags: %w", err)
	}
	return nil
}

func mp3FrameID(field string) (string, bool) {
	switch field {
	case model.FieldTitle:
		return frameTitle, true
	case model.FieldArtist:
		return frameArtist, true
	case model.FieldAlbum:
		return frameAlbum, true
	case model.FieldGenre:
		return frameGenre, true
	case model.FieldTrackNumber:
		return frameTrack, true
	case model.FieldDate:
		return frameDate, true
	}
	return "", false
}
