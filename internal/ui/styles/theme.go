package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette. S returns the styles built from it.
type Theme struct {
	Primary   lipgloss.Color // accent: active tab, hearts, playing rows
	Secondary lipgloss.Color

	FgBase, FgMuted, FgSubtle lipgloss.Color
	BgBase, BgCursor          lipgloss.Color

	// Badges drawn over artwork.
	SurfaceVariant, OnSurfaceVariant lipgloss.Color

	Border, BorderFocus lipgloss.Color
	Error               lipgloss.Color

	styles *Styles
}

// Styles are the lipgloss styles components render with.
type Styles struct {
	Base, Muted, Subtle lipgloss.Style
	Title               lipgloss.Style
	Playing             lipgloss.Style
	Cursor              lipgloss.Style
	Error               lipgloss.Style

	LabelDefault, LabelSubtle lipgloss.Style // thumbnail labels
	DropZone, DropZoneActive  lipgloss.Style
	Heart                     lipgloss.Style
	Notice                    lipgloss.Style // footer toast
}

var dark = Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	FgBase:   "#c0c0c0",
	FgMuted:  "#808080",
	FgSubtle: "#585858",
	BgBase:   "#1a1a1a",
	BgCursor: "#303030",

	SurfaceVariant:   "#3a3547",
	OnSurfaceVariant: "#cac4d0",

	Border:      "#585858",
	BorderFocus: "#a78bfa",
	Error:       "#ff5555",
}

// T returns the active theme.
func T() *Theme { return &dark }

// S returns the theme's styles, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.build()
	}
	return t.styles
}

// dropZoneAlpha is how much accent shows through a hovered drop zone.
const dropZoneAlpha = 0.45

func (t *Theme) build() *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	badge := lipgloss.NewStyle().Background(t.SurfaceVariant)

	return &Styles{
		Base:    fg(t.FgBase),
		Muted:   fg(t.FgMuted),
		Subtle:  fg(t.FgSubtle),
		Title:   fg(t.FgBase).Bold(true),
		Playing: fg(t.Primary).Bold(true),
		Cursor:  fg(t.FgBase).Background(t.BgCursor),
		Error:   fg(t.Error),

		LabelDefault: badge.Foreground(t.Primary),
		LabelSubtle:  badge.Foreground(t.OnSurfaceVariant),
		DropZone:     fg(t.BgCursor),
		DropZoneActive: fg(t.Primary).
			Background(Blend(t.BgBase, t.Primary, dropZoneAlpha)),
		Heart:  fg(t.Primary),
		Notice: fg(t.FgBase).Background(t.SurfaceVariant).Padding(0, 1),
	}
}
