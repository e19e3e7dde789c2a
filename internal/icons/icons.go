package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio       string
	Artist      string
	AlbumArtist string
	Album       string
	Playlist    string
	Favorite    string
	Unfavorite  string
	PlayNext    string
	Queue       string
	Share       string
	Info        string
	Delete      string
	Drag        string
	Menu        string
	Playing     string
	Close       string
}

var (
	nerdIcons = Icons{
		Audio:       "\uf001",  // nf-fa-music
		Artist:      "\uf007",  // nf-fa-user
		AlbumArtist: "\uf0c0",  // nf-fa-users
		Album:       "󰀥",       // nf-md-album
		Playlist:    "󰲸",       // nf-md-playlist_music
		Favorite:    "󰣐",       // nf-md-heart
		Unfavorite:  "\uf08a",  // nf-fa-heart_o
		PlayNext:    "\uf051",  // nf-fa-step_forward
		Queue:       "\uf0ca",  // nf-fa-list_ul
		Share:       "\uf064",  // nf-fa-share
		Info:        "\uf05a",  // nf-fa-info_circle
		Delete:      "\uf1f8",  // nf-fa-trash
		Drag:        "\uf0c9",  // nf-fa-bars
		Menu:        "\uf142",  // nf-fa-ellipsis_v
		Playing:     "\uf04b",  // nf-fa-play
		Close:       "\uf00d",  // nf-fa-times
	}

	unicodeIcons = Icons{
		Audio:       "🎵",
		Artist:      "👤",
		AlbumArtist: "👥",
		Album:       "💿",
		Playlist:    "📋",
		Favorite:    "♥",
		Unfavorite:  "♡",
		PlayNext:    "⏭",
		Queue:       "☰",
		Share:       "↗",
		Info:        "ⓘ",
		Delete:      "✕",
		Drag:        "⠿",
		Menu:        "⋮",
		Playing:     "▶",
		Close:       "✕",
	}

	noneIcons = Icons{
		Audio:       "",
		Artist:      "",
		AlbumArtist: "",
		Album:       "",
		Playlist:    "",
		Favorite:    "*",
		Unfavorite:  "",
		PlayNext:    ">>",
		Queue:       "+",
		Share:       "",
		Info:        "",
		Delete:      "",
		Drag:        "=",
		Menu:        "...",
		Playing:     ">",
		Close:       "x",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Prefix joins icon and text with a space, or returns text alone when the
// icon is empty.
func Prefix(icon, text string) string {
	if icon == "" {
		return text
	}
	return icon + " " + text
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	return Prefix(current.Artist, name)
}

// FormatAlbum formats an album name with the appropriate icon.
func FormatAlbum(name string) string {
	return Prefix(current.Album, name)
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return Prefix(current.Playlist, name)
}

// Favorite returns the favorite/heart icon.
func Favorite() string {
	return current.Favorite
}

// Drag returns the drag handle glyph.
func Drag() string {
	return current.Drag
}

// Menu returns the overflow menu glyph.
func Menu() string {
	return current.Menu
}

// Playing returns the now-playing marker.
func Playing() string {
	return current.Playing
}

// Audio returns the placeholder glyph for tracks without artwork.
func Audio() string {
	return current.Audio
}
