package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-editor/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	ffmpegEntry    *widget.Entry
	ffprobeEntry   *widget.Entry
	languageSelect *widget.Select
	autoRevealChk  *widget.Check

	// languageCodes maps select labels back to language codes
	languageCodes map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder("ffmpeg")
	sd.ffprobeEntry = widget.NewEntry()
	sd.ffprobeEntry.SetPlaceHolder("ffprobe")

	ffmpegRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(sd.localization.GetText(KeyBrowse), func() { sd.browseExecutable(sd.ffmpegEntry) }),
		sd.ffmpegEntry)
	ffprobeRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(sd.localization.GetText(KeyBrowse), func() { sd.browseExecutable(sd.ffprobeEntry) }),
		sd.ffprobeEntry)

	labels := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.autoRevealChk = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyFFmpegPath)),
		ffmpegRow,
		widget.NewLabel(sd.localization.GetText(KeyFFprobePath)),
		ffprobeRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
		sd.autoRevealChk,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, form.MinSize().Height+120))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.ffprobeEntry.SetText(sd.settings.GetFFprobePath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// browseExecutable fills entry with a file chosen in the open dialog
func (sd *SettingsDialog) browseExecutable(entry *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		entry.SetText(reader.URI().Path())
		_ = reader.Close()
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the dialog values to settings
func (sd *SettingsDialog) apply() {
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetFFprobePath(sd.ffprobeEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealChk.Checked)
}
