package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/model"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !assert.True(t, ok, lang) {
			continue
		}
		for key := range l.texts["en"] {
			assert.NotEmpty(t, texts[key], "%s missing %s", lang, key)
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("tr")
	assert.Equal(t, "tr", l.GetCurrentLanguage())
	assert.Equal(t, "Uyarı", l.GetText(KeyWarning))

	l.SetLanguage("xx")
	assert.Equal(t, "tr", l.GetCurrentLanguage(), "unknown languages are ignored")

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "C")
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_OperationText(t *testing.T) {
	l := NewLocalization()
	for _, op := range model.AllOperations() {
		text := l.OperationText(op)
		assert.NotEmpty(t, text)
		assert.NotEqual(t, "", operationKeys[op], op)
	}
	assert.Equal(t, "🎬 Combine Audio + Video", l.OperationText(model.OpCombine))
}

func TestLocalization_PreconditionText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		op   model.Operation
		err  error
		want string
	}{
		{model.OpMergeVideos, edit.ErrNeedTwoFiles, l.GetText(KeyNeedTwoVideos)},
		{model.OpMergeAudio, edit.ErrNeedTwoFiles, l.GetText(KeyNeedTwoAudios)},
		{model.OpTrimAudio, edit.ErrNeedFile, l.GetText(KeyNeedAudioFile)},
		{model.OpExtractAudio, edit.ErrNeedFile, l.GetText(KeyNeedVideoFile)},
		{model.OpTrimVideo, edit.ErrNeedFile, l.GetText(KeyNeedFile)},
		{model.OpCombine, edit.ErrNeedVideoAndAudio, l.GetText(KeyNeedVideoAndAudio)},
		{model.OpAdjustVolume, edit.ErrUnknownExtension, l.GetText(KeyUnknownFileType)},
		{model.OpConvert, edit.ErrUnsupportedConvert, l.GetText(KeyUnsupportedConvert)},
		{model.OpAdjustVolume, fmt.Errorf("%w: song.mp3", edit.ErrOutputIsInput), l.GetText(KeyOutputIsInput)},
		{model.OpMergeVideos, fmt.Errorf("%w: merge", edit.ErrBusy), l.GetText(KeyBusy)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, l.PreconditionText(tt.op, tt.err), "%s %v", tt.op, tt.err)
	}

	text := l.PreconditionText(model.OpTrimVideo, fmt.Errorf("%w: end must follow start", edit.ErrInvalidParams))
	assert.Contains(t, text, l.GetText(KeyInvalidParams))
	assert.Contains(t, text, "end must follow start")
}

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		lcAll, lang string
		expected    string
	}{
		{"", "tr_TR.UTF-8", "tr"},
		{"", "en_GB.UTF-8", "en"},
		{"", "de_DE.UTF-8", "en"},
		{"", "C", "en"},
		{"tr_TR", "en_US.UTF-8", "tr"},
		{"", "", "en"},
	}

	for _, tt := range tests {
		t.Setenv("LC_ALL", tt.lcAll)
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", tt.lang)
		assert.Equal(t, tt.expected, SystemLanguage(), "LC_ALL=%q LANG=%q", tt.lcAll, tt.lang)
	}
}

func TestPosixToBCP47(t *testing.T) {
	assert.Equal(t, "tr-TR", posixToBCP47("tr_TR.UTF-8"))
	assert.Equal(t, "de-DE", posixToBCP47("de_DE@euro"))
	assert.Equal(t, "", posixToBCP47("POSIX"))
	assert.Equal(t, "en", posixToBCP47("en"))
}
