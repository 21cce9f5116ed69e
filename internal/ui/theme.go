package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EditorTheme is a dark, slightly compact theme with a blue accent
type EditorTheme struct{}

// NewEditorTheme creates the editor theme
func NewEditorTheme() fyne.Theme {
	return &EditorTheme{}
}

// Palette
var (
	colorBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 255}
	colorInput      = color.RGBA{R: 0x25, G: 0x25, B: 0x26, A: 255}
	colorButton     = color.RGBA{R: 0x32, G: 0x32, B: 0x33, A: 255}
	colorPrimary    = color.RGBA{R: 0x00, G: 0x7a, B: 0xcc, A: 255}
	colorListText   = color.RGBA{R: 0xd4, G: 0xd4, B: 0xd4, A: 255}
	colorForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Color returns theme colors; the palette is dark regardless of variant
func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return colorBackground
	case theme.ColorNameInputBackground, theme.ColorNameHeaderBackground:
		return colorInput
	case theme.ColorNameButton:
		return colorButton
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorPrimary
	case theme.ColorNameForeground:
		return colorForeground
	case theme.ColorNamePlaceHolder:
		return colorListText
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
