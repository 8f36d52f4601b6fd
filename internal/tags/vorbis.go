package tags

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// vorbisComment is the decoded payload of a FLAC VORBIS_COMMENT
// metadata block: a vendor string plus a list of "KEY=value" entries.
// Comments for keys vimtag does not edit are carried through untouched.
type vorbisComment struct {
	Vendor   string
	Comments []string
}

// parseVorbisComment decodes a VORBIS_COMMENT block. All lengths come
// from file data and are checked against the bytes actually remaining
// in the block before anything is allocated, so a corrupt or hostile
// header yields an error instead of an enormous allocation.
func parseVorbisComment(data []byte) (*vorbisComment, error) {
	r := bytes.NewReader(data)

	var vendorLen uint32
	if err := binary.Read(r, binary.LittleEndian, &vendorLen); err != nil {
		return nil, err
	}
	if int64(vendorLen) > int64(r.Len()) {
		return nil, fmt.Errorf("vorbis comment: vendor length %d exceeds block size %d", vendorLen, len(data))
	}

	vendorBytes := make([]byte, vendorLen)
	if _, err := io.ReadFull(r, vendorBytes); err != nil {
		return nil, err
	}

	var listLen uint32
	if err := binary.Read(r, binary.LittleEndian, &listLen); err != nil {
		return nil, err
	}
	// Every comment occupies at least its own 4-byte length prefix.
	if int64(listLen) > int64(r.Len())/4 {
		return nil, fmt.Errorf("vorbis comment: comment count %d exceeds block size %d", listLen, len(data))
	}

	comments := make([]string, 0, listLen)
	for i := uint32(0); i < listLen; i++ {
		var commentLen uint32
		if err := binary.Read(r, binary.LittleEndian, &commentLen); err != nil {
			return nil, err
		}
		if int64(commentLen) > int64(r.Len()) {
			return nil, fmt.Errorf("vorbis comment: comment length %d exceeds block size %d", commentLen, len(data))
		}

		commentBytes := make([]byte, commentLen)
		if _, err := io.ReadFull(r, commentBytes); err != nil {
			return nil, err
		}
		comments = append(comments, string(commentBytes))
	}

	return &vorbisComment{Vendor: string(vendorBytes), Comments: comments}, nil
}

func (vc *vorbisComment) marshal() []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, uint32(len(vc.Vendor)))
	buf.WriteString(vc.Vendor)

	binary.Write(buf, binary.LittleEndian, uint32(len(vc.Comments)))
	for _, c := range vc.Comments {
		binary.Write(buf, binary.LittleEndian, uint32(len(c)))
		buf.WriteString(c)
	}
	return buf.Bytes()
}
