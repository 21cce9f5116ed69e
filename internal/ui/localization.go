package ui

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySelectFiles     = "select_files"
	KeySelectedFiles   = "selected_files"
	KeyNoFiles         = "no_files"
	KeySelectOperation = "select_operation"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyStop            = "stop"
	KeyReveal          = "reveal"
	KeyOpen            = "open"
	KeyWarning         = "warning"
	KeySuccess         = "success"
	KeyError           = "error"

	KeyOpMergeVideos  = "op_merge_videos"
	KeyOpMergeAudio   = "op_merge_audio"
	KeyOpTrimVideo    = "op_trim_video"
	KeyOpTrimAudio    = "op_trim_audio"
	KeyOpExtractAudio = "op_extract_audio"
	KeyOpAdjustVolume = "op_adjust_volume"
	KeyOpConvert      = "op_convert"
	KeyOpCombine      = "op_combine"

	KeyTrimVideoTitle = "trim_video_title"
	KeyTrimAudioTitle = "trim_audio_title"
	KeyStartSeconds   = "start_seconds"
	KeyEndSeconds     = "end_seconds"
	KeyTrim           = "trim"
	KeyVolumeTitle    = "volume_title"
	KeyVolumeFactor   = "volume_factor"
	KeyApply          = "apply"
	KeyConvertTitle   = "convert_title"
	KeyTargetFormat   = "target_format"
	KeyConvert        = "convert"

	KeyPickerTitle = "picker_title"
	KeyAddFile     = "add_file"
	KeyRemoveLast  = "remove_last"
	KeyClear       = "clear"
	KeyFileTypes   = "file_types"
	KeyOK          = "ok"

	KeyOutputTitle     = "output_title"
	KeyFileName        = "file_name"
	KeyFolder          = "folder"
	KeyOverwriteTitle  = "overwrite_title"
	KeyOverwriteFormat = "overwrite_format"

	KeyNeedFile           = "need_file"
	KeyNeedVideoFile      = "need_video_file"
	KeyNeedAudioFile      = "need_audio_file"
	KeyNeedTwoVideos      = "need_two_videos"
	KeyNeedTwoAudios      = "need_two_audios"
	KeyNeedVideoAndAudio  = "need_video_and_audio"
	KeyUnknownFileType    = "unknown_file_type"
	KeyUnsupportedConvert = "unsupported_convert"
	KeyOutputIsInput      = "output_is_input"
	KeyInvalidParams      = "invalid_params"
	KeyBusy               = "busy"

	KeyOutputWritten    = "output_written"
	KeyOperationFailed  = "operation_failed"
	KeyOperationStopped = "operation_stopped"

	KeyFFmpegPath        = "ffmpeg_path"
	KeyFFprobePath       = "ffprobe_path"
	KeyAutoReveal        = "auto_reveal"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyToolMissing       = "tool_missing"
	KeyErrorStoppingTask = "error_stopping_task"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = SystemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// supportedLanguages lists translated languages; the first one is the fallback
var supportedLanguages = []language.Tag{language.English, language.Turkish}

var languageMatcher = language.NewMatcher(supportedLanguages)

// SystemLanguage matches the locale from LC_ALL, LC_MESSAGES or LANG against
// the translated languages
func SystemLanguage() string {
	var locales []string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := posixToBCP47(os.Getenv(key)); v != "" {
			locales = append(locales, v)
		}
	}
	_, index := language.MatchStrings(languageMatcher, locales...)
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// posixToBCP47 turns "tr_TR.UTF-8" into "tr-TR"; "C" and "POSIX" become ""
func posixToBCP47(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"tr": "Türkçe",
	}
}

// OperationText returns the button label of an operation
func (l *Localization) OperationText(op model.Operation) string {
	return l.GetText(operationKeys[op])
}

var operationKeys = map[model.Operation]string{
	model.OpMergeVideos:  KeyOpMergeVideos,
	model.OpMergeAudio:   KeyOpMergeAudio,
	model.OpTrimVideo:    KeyOpTrimVideo,
	model.OpTrimAudio:    KeyOpTrimAudio,
	model.OpExtractAudio: KeyOpExtractAudio,
	model.OpAdjustVolume: KeyOpAdjustVolume,
	model.OpConvert:      KeyOpConvert,
	model.OpCombine:      KeyOpCombine,
}

// PreconditionText returns the warning shown when op is refused with err
func (l *Localization) PreconditionText(op model.Operation, err error) string {
	switch {
	case errors.Is(err, edit.ErrNeedTwoFiles):
		if op == model.OpMergeAudio {
			return l.GetText(KeyNeedTwoAudios)
		}
		return l.GetText(KeyNeedTwoVideos)
	case errors.Is(err, edit.ErrNeedFile):
		switch op {
		case model.OpTrimAudio:
			return l.GetText(KeyNeedAudioFile)
		case model.OpExtractAudio:
			return l.GetText(KeyNeedVideoFile)
		default:
			return l.GetText(KeyNeedFile)
		}
	case errors.Is(err, edit.ErrNeedVideoAndAudio):
		return l.GetText(KeyNeedVideoAndAudio)
	case errors.Is(err, edit.ErrUnknownExtension):
		return l.GetText(KeyUnknownFileType)
	case errors.Is(err, edit.ErrUnsupportedConvert):
		return l.GetText(KeyUnsupportedConvert)
	case errors.Is(err, edit.ErrOutputIsInput):
		return l.GetText(KeyOutputIsInput)
	case errors.Is(err, edit.ErrInvalidParams):
		return l.GetText(KeyInvalidParams) + "\n" + err.Error()
	case errors.Is(err, edit.ErrBusy):
		return l.GetText(KeyBusy)
	default:
		return err.Error()
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "🎬 Video & Audio Editor",
		KeySelectFiles:     IconFolder + " Select Files (Multiple)",
		KeySelectedFiles:   "Selected files",
		KeyNoFiles:         "No files selected",
		KeySelectOperation: "Select Operation",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyStop:            "Stop",
		KeyReveal:          "Reveal",
		KeyOpen:            "Open",
		KeyWarning:         "Warning",
		KeySuccess:         "Success",
		KeyError:           "Error",

		KeyOpMergeVideos:  "🔗 Merge Videos",
		KeyOpMergeAudio:   "🎵 Merge Audio",
		KeyOpTrimVideo:    "✂️ Trim Video",
		KeyOpTrimAudio:    "✂️🎵 Trim Audio",
		KeyOpExtractAudio: "🔇 Extract Audio (Video → Audio)",
		KeyOpAdjustVolume: "🔊 Adjust Volume",
		KeyOpConvert:      "🔄 Convert Format",
		KeyOpCombine:      "🎬 Combine Audio + Video",

		KeyTrimVideoTitle: "Trim Video",
		KeyTrimAudioTitle: "Trim Audio",
		KeyStartSeconds:   "Start (seconds):",
		KeyEndSeconds:     "End (seconds):",
		KeyTrim:           "Trim",
		KeyVolumeTitle:    "Adjust Volume",
		KeyVolumeFactor:   "Volume factor (1.0 = normal, 2.0 = 2x):",
		KeyApply:          "Apply",
		KeyConvertTitle:   "Convert Format",
		KeyTargetFormat:   "Choose target format:",
		KeyConvert:        "Convert",

		KeyPickerTitle: "Select Files",
		KeyAddFile:     "Add file…",
		KeyRemoveLast:  "Remove last",
		KeyClear:       "Clear",
		KeyFileTypes:   "File types:",
		KeyOK:          "OK",

		KeyOutputTitle:     "Save Output As",
		KeyFileName:        "File name",
		KeyFolder:          "Folder",
		KeyOverwriteTitle:  "Replace File",
		KeyOverwriteFormat: "%s already exists. Replace it?",

		KeyNeedFile:           "You must select a file!",
		KeyNeedVideoFile:      "You must select a video file!",
		KeyNeedAudioFile:      "You must select an audio file!",
		KeyNeedTwoVideos:      "You must select at least 2 video files!",
		KeyNeedTwoAudios:      "You must select at least 2 audio files!",
		KeyNeedVideoAndAudio:  "You must select 1 video and 1 audio file!",
		KeyUnknownFileType:    "Unsupported file type!",
		KeyUnsupportedConvert: "This format conversion is not supported!",
		KeyOutputIsInput:      "Choose an output file that is not one of the selected files!",
		KeyInvalidParams:      "Invalid value!",
		KeyBusy:               "Another operation is still running.",

		KeyOutputWritten:    "Output written:",
		KeyOperationFailed:  "Operation failed:",
		KeyOperationStopped: "Operation stopped",

		KeyFFmpegPath:        "ffmpeg executable",
		KeyFFprobePath:       "ffprobe executable",
		KeyAutoReveal:        "Reveal output when finished",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyToolMissing:       "ffmpeg was not found. Install it or set its path in Settings.",
		KeyErrorStoppingTask: "Error stopping task",
	}

	l.texts["tr"] = map[string]string{
		KeyAppTitle:        "🎬 Video & Ses Düzenleme Aracı",
		KeySelectFiles:     IconFolder + " Dosya Seç (Multiple)",
		KeySelectedFiles:   "Seçilen dosyalar",
		KeyNoFiles:         "Dosya seçilmedi",
		KeySelectOperation: "İşlem Seç",
		KeySettings:        "Ayarlar",
		KeyFile:            "Dosya",
		KeyLanguage:        "Dil",
		KeySave:            "Kaydet",
		KeyCancel:          "İptal",
		KeyBrowse:          "Gözat",
		KeyStop:            "Durdur",
		KeyReveal:          "Göster",
		KeyOpen:            "Aç",
		KeyWarning:         "Uyarı",
		KeySuccess:         "Başarılı",
		KeyError:           "Hata",

		KeyOpMergeVideos:  "🔗 Video Birleştir",
		KeyOpMergeAudio:   "🎵 Ses Birleştir",
		KeyOpTrimVideo:    "✂️ Video Kes",
		KeyOpTrimAudio:    "✂️🎵 Ses Kes",
		KeyOpExtractAudio: "🔇 Ses Çıkar (Video → Audio)",
		KeyOpAdjustVolume: "🔊 Ses Seviyesi Ayarla",
		KeyOpConvert:      "🔄 Format Dönüştür",
		KeyOpCombine:      "🎬 Ses + Video Birleştir",

		KeyTrimVideoTitle: "Video Kes",
		KeyTrimAudioTitle: "Ses Kes",
		KeyStartSeconds:   "Başlangıç (saniye):",
		KeyEndSeconds:     "Bitiş (saniye):",
		KeyTrim:           "Kes",
		KeyVolumeTitle:    "Ses Seviyesi Ayarla",
		KeyVolumeFactor:   "Ses Katı (1.0 = normal, 2.0 = 2x):",
		KeyApply:          "Uygula",
		KeyConvertTitle:   "Format Dönüştür",
		KeyTargetFormat:   "Hedef Format Seçin:",
		KeyConvert:        "Dönüştür",

		KeyPickerTitle: "Dosya Seçin",
		KeyAddFile:     "Dosya ekle…",
		KeyRemoveLast:  "Sonuncuyu kaldır",
		KeyClear:       "Temizle",
		KeyFileTypes:   "Dosya türleri:",
		KeyOK:          "Tamam",

		KeyOutputTitle:     "Çıktıyı Farklı Kaydet",
		KeyFileName:        "Dosya adı",
		KeyFolder:          "Klasör",
		KeyOverwriteTitle:  "Dosyayı Değiştir",
		KeyOverwriteFormat: "%s zaten var. Değiştirilsin mi?",

		KeyNeedFile:           "Dosya seçmelisiniz!",
		KeyNeedVideoFile:      "Video dosyası seçmelisiniz!",
		KeyNeedAudioFile:      "Ses dosyası seçmelisiniz!",
		KeyNeedTwoVideos:      "En az 2 video dosyası seçmelisiniz!",
		KeyNeedTwoAudios:      "En az 2 ses dosyası seçmelisiniz!",
		KeyNeedVideoAndAudio:  "1 video ve 1 ses dosyası seçmelisiniz!",
		KeyUnknownFileType:    "Desteklenmeyen dosya türü!",
		KeyUnsupportedConvert: "Bu format dönüşümü desteklenmiyor!",
		KeyOutputIsInput:      "Seçili dosyalardan farklı bir çıktı dosyası seçin!",
		KeyInvalidParams:      "Geçersiz değer!",
		KeyBusy:               "Başka bir işlem hâlâ çalışıyor.",

		KeyOutputWritten:    "Çıktı yazıldı:",
		KeyOperationFailed:  "İşlem başarısız:",
		KeyOperationStopped: "İşlem durduruldu",

		KeyFFmpegPath:        "ffmpeg yolu",
		KeyFFprobePath:       "ffprobe yolu",
		KeyAutoReveal:        "Bitince çıktıyı göster",
		KeySettingsSaved:     "Ayarlar kaydedildi!",
		KeyErrorOpeningFile:  "Dosya açılamadı",
		KeyToolMissing:       "ffmpeg bulunamadı. Kurun veya Ayarlar'dan yolunu belirtin.",
		KeyErrorStoppingTask: "Görev durdurulamadı",
	}
}
