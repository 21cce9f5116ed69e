package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCheck    = "✓"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconPending  = "⏳"
	IconError    = "❌"
	IconFolder   = "📁"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Window and layout sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600

	OperationColumns = 2

	FileListMinHeight float32 = 160

	StatusLabelWidth  float32 = 96
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 72
)

// Dialog sizing
const (
	ParamDialogWidth    float32 = 320
	PickerDialogWidth   float32 = 520
	PickerDialogHeight  float32 = 380
	SettingsDialogWidth float32 = 500
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
