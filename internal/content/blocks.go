package content

import (
	"fmt"
	"regexp"
)

// BlockType tags a case-study content block.
type BlockType string

const (
	BlockFullWidthImage BlockType = "fullWidthImage"
	BlockDualGrid       BlockType = "dualGrid"
	BlockTripleGrid     BlockType = "tripleGrid"
	BlockGallery        BlockType = "gallery"
	BlockRichText       BlockType = "richText"
	BlockStat           BlockType = "statBlock"
	BlockVideo          BlockType = "video"
	BlockQuote          BlockType = "quote"
	BlockBeforeAfter    BlockType = "beforeAfter"
	BlockColorPalette   BlockType = "colorPalette"
	BlockTypography     BlockType = "typography"
	BlockSpacer         BlockType = "spacer"
)

var knownBlocks = map[BlockType]bool{
	BlockFullWidthImage: true, BlockDualGrid: true, BlockTripleGrid: true,
	BlockGallery: true, BlockRichText: true, BlockStat: true, BlockVideo: true,
	BlockQuote: true, BlockBeforeAfter: true, BlockColorPalette: true,
	BlockTypography: true, BlockSpacer: true,
}

type VideoType string

const (
	VideoFile    VideoType = "file"
	VideoYouTube VideoType = "youtube"
	VideoVimeo   VideoType = "vimeo"
)

type SpacerSize string

const (
	SpacerSmall  SpacerSize = "small"
	SpacerMedium SpacerSize = "medium"
	SpacerLarge  SpacerSize = "large"
	SpacerXLarge SpacerSize = "xlarge"
)

const (
	DefaultBeforeLabel   = "Before"
	DefaultAfterLabel    = "After"
	DefaultFontSample    = "Aa Bb Cc Dd Ee Ff Gg"
	DefaultGalleryColumn = 3
)

type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	// Size is "small", "medium" or "large"; large gallery images span two
	// columns.
	Size string `json:"size,omitempty"`
}

type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Font struct {
	Name     string `json:"name"`
	Usage    string `json:"usage,omitempty"`
	Sample   string `json:"sample,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Block is one entry of a project's content list. Type selects which of
// the remaining fields apply. Blocks with an unrecognised Type decode
// without error and are skipped when rendering.
type Block struct {
	Type BlockType `json:"type"`

	// fullWidthImage
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"altText,omitempty"`

	// dualGrid, tripleGrid, gallery
	Images  []Image `json:"images,omitempty"`
	Columns int     `json:"columns,omitempty"`

	// richText
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text,omitempty"`

	// statBlock
	Number string `json:"number,omitempty"`
	Label  string `json:"label,omitempty"`

	// video
	VideoType    VideoType `json:"videoType,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	VideoFileURL string    `json:"videoFileUrl,omitempty"`
	PosterURL    string    `json:"posterUrl,omitempty"`
	Autoplay     bool      `json:"autoplay,omitempty"`
	Loop         bool      `json:"loop,omitempty"`

	// quote
	Quote  string `json:"quote,omitempty"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`

	// beforeAfter
	BeforeImage string `json:"beforeImage,omitempty"`
	AfterImage  string `json:"afterImage,omitempty"`
	BeforeLabel string `json:"beforeLabel,omitempty"`
	AfterLabel  string `json:"afterLabel,omitempty"`

	// colorPalette
	Colors []Color `json:"colors,omitempty"`

	// typography
	Fonts []Font `json:"fonts,omitempty"`

	// spacer
	Size SpacerSize `json:"size,omitempty"`
}

// Known reports whether the block has a recognised tag.
func (b Block) Known() bool {
	return knownBlocks[b.Type]
}

// GalleryColumns returns the desktop column count: 2 or 4 when set to
// those, 3 otherwise.
func (b Block) GalleryColumns() int {
	switch b.Columns {
	case 2, 4:
		return b.Columns
	}
	return DefaultGalleryColumn
}

// BeforeCaption returns the before label, defaulting to "Before".
func (b Block) BeforeCaption() string {
	if b.BeforeLabel != "" {
		return b.BeforeLabel
	}
	return DefaultBeforeLabel
}

// AfterCaption returns the after label, defaulting to "After".
func (b Block) AfterCaption() string {
	if b.AfterLabel != "" {
		return b.AfterLabel
	}
	return DefaultAfterLabel
}

// SpacerClass returns the height utility class for a spacer. Unknown sizes
// fall back to medium.
func (b Block) SpacerClass() string {
	switch b.Size {
	case SpacerSmall:
		return "h-8"
	case SpacerLarge:
		return "h-32"
	case SpacerXLarge:
		return "h-48 md:h-64"
	}
	return "h-16"
}

// SampleText returns the font specimen text.
func (f Font) SampleText() string {
	if f.Sample != "" {
		return f.Sample
	}
	return DefaultFontSample
}

var (
	youTubeID = regexp.MustCompile(`(?:youtu\.be/|youtube\.com(?:/embed/|/v/|/watch\?v=|/user/\S+|/ytscreeningroom\?v=))([\w-]{10,12})`)
	vimeoID   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// YouTubeID extracts the video id from a YouTube watch, share or embed URL.
func YouTubeID(u string) (string, bool) {
	m := youTubeID.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// VimeoID extracts the numeric id from a Vimeo URL.
func VimeoID(u string) (string, bool) {
	m := vimeoID.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// EmbedURL returns the iframe URL for a YouTube or Vimeo block, or "" when
// the block is a file video or the id cannot be extracted.
func (b Block) EmbedURL() string {
	flag := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	switch b.VideoType {
	case VideoYouTube:
		if id, ok := YouTubeID(b.VideoURL); ok {
			return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=%d&loop=%d", id, flag(b.Autoplay), flag(b.Loop))
		}
	case VideoVimeo:
		if id, ok := VimeoID(b.VideoURL); ok {
			return fmt.Sprintf("https://player.vimeo.com/video/%s?autoplay=%d&loop=%d", id, flag(b.Autoplay), flag(b.Loop))
		}
	}
	return ""
}

// IsFileVideo reports whether the block plays an uploaded file.
func (b Block) IsFileVideo() bool {
	return b.VideoType == VideoFile && b.VideoFileURL != ""
}
