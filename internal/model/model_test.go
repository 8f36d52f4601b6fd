package model

import "testing"

func TestTags_Diff(t *testing.T) {
	original := Tags{
		FieldTitle:  "Old Name",
		FieldArtist: "Some Artist",
		FieldAlbum:  "Some Album",
	}

	tests := []struct {
		name   string
		edited Tags
		want   []Change
	}{
		{
			name:   "no edits",
			edited: original.Clone(),
			want:   nil,
		},
		{
			name: "single field edited",
			edited: Tags{
				FieldTitle:  "Old Name",
				FieldArtist: "Another Artist",
				FieldAlbum:  "Some Album",
			},
			want: []Change{
				{Field: FieldArtist, Old: "Some Artist", New: "Another Artist"},
			},
		},
		{
			name: "cleared field",
			edited: Tags{
				FieldTitle:  "Old Name",
				FieldArtist: "Some Artist",
			},
			want: []Change{
				{Field: FieldAlbum, Old: "Some Album", New: ""},
			},
		},
		{
			name: "whitespace-only difference is not a change",
			edited: Tags{
				FieldTitle:  "Old Name",
				FieldArtist: "Some Artist",
				FieldAlbum:  "Some Album ",
			},
			want: nil,
		},
		{
			name: "added field",
			edited: Tags{
				FieldTitle:  "Old Name",
				FieldArtist: "Some Artist",
				FieldAlbum:  "Some Album",
				FieldGenre:  "Jazz",
			},
			want: []Change{
				{Field: FieldGenre, Old: "", New: "Jazz"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := original.Diff(tt.edited)
			if len(got) != len(tt.want) {
				t.Fatalf("Diff() returned %d changes, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Diff()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTags_DiffOrder(t *testing.T) {
	original := Tags{}
	edited := Tags{
		FieldDate:   "2001",
		FieldTitle:  "T",
		FieldArtist: "A",
	}

	got := original.Diff(edited)
	wantOrder := []string{FieldTitle, FieldArtist, FieldDate}
	if len(got) != len(wantOrder) {
		t.Fatalf("Diff() returned %d changes, want %d", len(got), len(wantOrder))
	}
	for i, field := range wantOrder {
		if got[i].Field != field {
			t.Errorf("Diff()[%d].Field = %q, want %q", i, got[i].Field, field)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"line\nbreak", "line break"},
		{" \n ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeValue(tt.input); got != tt.want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestChangeSet_TitleChange(t *testing.T) {
	tests := []struct {
		name      string
		set       ChangeSet
		wantTitle string
		wantOK    bool
	}{
		{
			name: "title edited",
			set: ChangeSet{Changes: []Change{
				{Field: FieldTitle, Old: "Old", New: "New"},
			}},
			wantTitle: "New",
			wantOK:    true,
		},
		{
			name: "title cleared",
			set: ChangeSet{Changes: []Change{
				{Field: FieldTitle, Old: "Old", New: ""},
			}},
			wantOK: false,
		},
		{
			name: "other field edited",
			set: ChangeSet{Changes: []Change{
				{Field: FieldArtist, Old: "Old", New: "New"},
			}},
			wantOK: false,
		},
		{
			name:   "empty set",
			set:    ChangeSet{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := tt.set.TitleChange()
			if ok != tt.wantOK {
				t.Fatalf("TitleChange() ok = %v, want %v", ok, tt.wantOK)
			}
			if title != tt.wantTitle {
				t.Errorf("TitleChange() = %q, want %q", title, tt.wantTitle)
			}
		})
	}
}

func TestKnownField(t *testing.T) {
	for _, f := range Fields {
		if !KnownField(f) {
			t.Errorf("KnownField(%q) = false, want true", f)
		}
	}
	for _, f := range []string{"", "composer", "Title", "lyrics"} {
		if KnownField(f) {
			t.Errorf("KnownField(%q) = true, want false", f)
		}
	}
}
