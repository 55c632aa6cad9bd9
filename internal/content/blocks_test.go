package content

import (
	"encoding/json"
	"testing"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/video.mp4", "", false},
	}
	for _, tt := range tests {
		got, ok := YouTubeID(tt.url)
		if got != tt.want || ok != tt.ok {
			t.Errorf("YouTubeID(%q) = %q, %v; want %q, %v", tt.url, got, ok, tt.want, tt.ok)
		}
	}
}

func TestVimeoID(t *testing.T) {
	if id, ok := VimeoID("https://vimeo.com/76979871"); !ok || id != "76979871" {
		t.Errorf("VimeoID = %q, %v", id, ok)
	}
	if _, ok := VimeoID("https://vimeo.com/channels"); ok {
		t.Error("expected no id for a non-numeric path")
	}
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  string
	}{
		{
			"youtube autoplay",
			Block{Type: BlockVideo, VideoType: VideoYouTube, VideoURL: "https://youtu.be/dQw4w9WgXcQ", Autoplay: true},
			"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&loop=0",
		},
		{
			"vimeo loop",
			Block{Type: BlockVideo, VideoType: VideoVimeo, VideoURL: "https://vimeo.com/76979871", Loop: true},
			"https://player.vimeo.com/video/76979871?autoplay=0&loop=1",
		},
		{
			"unparseable",
			Block{Type: BlockVideo, VideoType: VideoYouTube, VideoURL: "https://example.com"},
			"",
		},
		{
			"file",
			Block{Type: BlockVideo, VideoType: VideoFile, VideoFileURL: "/v.mp4"},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.EmbedURL(); got != tt.want {
				t.Errorf("EmbedURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlockDefaults(t *testing.T) {
	var b Block
	if b.GalleryColumns() != 3 {
		t.Errorf("GalleryColumns() = %d, want 3", b.GalleryColumns())
	}
	b.Columns = 4
	if b.GalleryColumns() != 4 {
		t.Errorf("GalleryColumns() = %d, want 4", b.GalleryColumns())
	}
	b.Columns = 5
	if b.GalleryColumns() != 3 {
		t.Errorf("GalleryColumns() with 5 = %d, want 3", b.GalleryColumns())
	}

	if b.BeforeCaption() != "Before" || b.AfterCaption() != "After" {
		t.Errorf("captions = %q, %q", b.BeforeCaption(), b.AfterCaption())
	}
	b.BeforeLabel = "Old"
	if b.BeforeCaption() != "Old" {
		t.Errorf("BeforeCaption() = %q, want Old", b.BeforeCaption())
	}

	for size, want := range map[SpacerSize]string{
		SpacerSmall:  "h-8",
		SpacerMedium: "h-16",
		SpacerLarge:  "h-32",
		SpacerXLarge: "h-48 md:h-64",
		"":           "h-16",
	} {
		if got := (Block{Size: size}).SpacerClass(); got != want {
			t.Errorf("SpacerClass(%q) = %q, want %q", size, got, want)
		}
	}

	if (Font{}).SampleText() != DefaultFontSample {
		t.Error("expected default font sample")
	}
}

func TestUnknownBlockDecodes(t *testing.T) {
	var p Project
	err := json.Unmarshal([]byte(`{"content":[{"type":"hologram","depth":3},{"type":"spacer","size":"large"}]}`), &p)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(p.Content) != 2 {
		t.Fatalf("got %d blocks, want 2", len(p.Content))
	}
	if p.Content[0].Known() {
		t.Error("hologram block reported as known")
	}
	if !p.Content[1].Known() || p.Content[1].Size != SpacerLarge {
		t.Errorf("spacer block = %+v", p.Content[1])
	}
}
