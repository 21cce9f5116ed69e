package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeFixture = `{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720},
    {"codec_type": "audio", "codec_name": "aac", "sample_rate": "48000", "channels": 2}
  ],
  "format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "12.480000", "bit_rate": "1500000"}
}`

const probeCoverArtFixture = `{
  "streams": [
    {"codec_type": "audio", "codec_name": "mp3", "sample_rate": "44100", "channels": 2},
    {"codec_type": "video", "codec_name": "mjpeg", "width": 500, "height": 500, "disposition": {"attached_pic": 1}}
  ],
  "format": {"format_name": "mp3", "duration": "180.5"}
}`

func TestParseProbeOutput(t *testing.T) {
	info, err := parseProbeOutput("a.mp4", []byte(probeFixture))
	require.NoError(t, err)

	assert.Equal(t, "a.mp4", info.Path)
	assert.InDelta(t, 12.48, info.Duration, 0.0001)
	assert.Equal(t, int64(1500000), info.Bitrate)
	assert.True(t, info.HasVideo)
	assert.True(t, info.HasAudio)
	assert.Equal(t, "h264", info.VideoCodec)
	assert.Equal(t, "aac", info.AudioCodec)
	assert.Equal(t, 1280, info.Width)
	assert.Equal(t, 720, info.Height)
	assert.Equal(t, 48000, info.SampleRate)
	assert.Equal(t, 2, info.Channels)
}

func TestParseProbeOutput_IgnoresCoverArt(t *testing.T) {
	info, err := parseProbeOutput("song.mp3", []byte(probeCoverArtFixture))
	require.NoError(t, err)

	assert.False(t, info.HasVideo)
	assert.True(t, info.HasAudio)
	assert.InDelta(t, 180.5, info.Duration, 0.0001)
}

func TestParseProbeOutput_Invalid(t *testing.T) {
	_, err := parseProbeOutput("x", []byte("not json"))
	assert.Error(t, err)

	_, err = parseProbeOutput("x", []byte(`{"format": {"duration": "N/A"}}`))
	assert.Error(t, err)
}
