package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/media-editor/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFFmpegPath         = "ffmpeg_path"
	KeyFFprobePath        = "ffprobe_path"
	KeyLastDirectory      = "last_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages user configuration stored in Fyne preferences.
// Tool paths left empty fall back to the environment.
type Settings struct {
	app fyne.App
	env *Env
}

// NewSettings creates a new settings manager; env may be nil
func NewSettings(app fyne.App, env *Env) *Settings {
	if env == nil {
		env = DefaultEnv()
	}
	return &Settings{app: app, env: env}
}

// GetFFmpegPath returns the ffmpeg executable, preferring the saved preference
func (s *Settings) GetFFmpegPath() string {
	if path := s.app.Preferences().String(KeyFFmpegPath); path != "" {
		return path
	}
	return s.env.FFmpegPath
}

// SetFFmpegPath saves the ffmpeg executable; empty or the env value clears the override
func (s *Settings) SetFFmpegPath(path string) {
	if path == s.env.FFmpegPath {
		path = ""
	}
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetFFprobePath returns the ffprobe executable, preferring the saved preference
func (s *Settings) GetFFprobePath() string {
	if path := s.app.Preferences().String(KeyFFprobePath); path != "" {
		return path
	}
	return s.env.FFprobePath
}

// SetFFprobePath saves the ffprobe executable; empty or the env value clears the override
func (s *Settings) SetFFprobePath(path string) {
	if path == s.env.FFprobePath {
		path = ""
	}
	s.app.Preferences().SetString(KeyFFprobePath, path)
}

// GetLastDirectory returns the directory the file dialogs open in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetDefaultMediaDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the last picked file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal finished outputs automatically
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal finished outputs automatically
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"tr":     "Türkçe",
	}
}
