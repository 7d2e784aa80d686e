package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectURL(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantChannel string
		wantErr     error
	}{
		{
			name:        "ссылка без окончания",
			raw:         "https://studio.code.org/projects/music/abc123",
			wantChannel: "abc123",
		},
		{
			name:        "ссылка с окончанием /edit",
			raw:         "https://studio.code.org/projects/music/abc123/edit",
			wantChannel: "abc123",
		},
		{
			name:        "ссылка с окончанием /view",
			raw:         "https://studio.code.org/projects/music/xyz789/view",
			wantChannel: "xyz789",
		},
		{
			name:        "ссылка с завершающим слешем",
			raw:         "https://studio.code.org/projects/music/a_B-9/",
			wantChannel: "a_B-9",
		},
		{
			name:    "неизвестное окончание",
			raw:     "https://studio.code.org/projects/music/abc/export",
			wantErr: ErrInvalidProjectURL,
		},
		{
			name:    "пустой идентификатор",
			raw:     "https://studio.code.org/projects/music/",
			wantErr: ErrInvalidProjectURL,
		},
		{
			name:    "недопустимый символ в идентификаторе",
			raw:     "https://studio.code.org/projects/music/abc%20def",
			wantErr: ErrInvalidProjectURL,
		},
		{
			name:    "ссылка внутри другой строки",
			raw:     "смотри https://studio.code.org/projects/music/abc123",
			wantErr: ErrInvalidProjectURL,
		},
		{
			name:    "http вместо https",
			raw:     "http://studio.code.org/projects/music/abc123",
			wantErr: ErrInvalidProjectURL,
		},
		{
			name:    "пустая строка",
			raw:     "",
			wantErr: ErrInvalidProjectURL,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, err := ParseProjectURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChannel, channel)
		})
	}
}

func TestParseCombinedURL(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantChannels []string
		wantErr      error
	}{
		{
			name:         "несколько каналов",
			raw:          "https://studio.code.org/musiclab/embed?channels=foo,bar&library=",
			wantChannels: []string{"foo", "bar"},
		},
		{
			name:         "один канал",
			raw:          "https://studio.code.org/musiclab/embed?channels=abc123&library=",
			wantChannels: []string{"abc123"},
		},
		{
			name:         "пустой список каналов",
			raw:          "https://studio.code.org/musiclab/embed?channels=&library=",
			wantChannels: []string{},
		},
		{
			name:         "лишние запятые отбрасываются",
			raw:          "https://studio.code.org/musiclab/embed?channels=a,,b&library=",
			wantChannels: []string{"a", "b"},
		},
		{
			name:         "запятые в начале и конце",
			raw:          "https://studio.code.org/musiclab/embed?channels=,abc,&library=",
			wantChannels: []string{"abc"},
		},
		{
			name:    "нет параметра library",
			raw:     "https://studio.code.org/musiclab/embed?channels=abc",
			wantErr: ErrInvalidCombinedURL,
		},
		{
			name:    "недопустимый символ в списке",
			raw:     "https://studio.code.org/musiclab/embed?channels=a b&library=",
			wantErr: ErrInvalidCombinedURL,
		},
		{
			name:    "ссылка на проект вместо общей",
			raw:     "https://studio.code.org/projects/music/abc123",
			wantErr: ErrInvalidCombinedURL,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channels, err := ParseCombinedURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChannels, channels)
		})
	}
}

func TestProjectURLRoundTrip(t *testing.T) {
	// для любого валидного идентификатора разбор собранной ссылки возвращает его же
	for _, channel := range []string{"a", "abc123", "a_B-9", "-_", "0"} {
		parsed, err := ParseProjectURL(BuildProjectURL(channel))
		require.NoError(t, err)
		assert.Equal(t, channel, parsed)
	}
}

func TestCombinedURLRoundTrip(t *testing.T) {
	tests := [][]string{
		{},
		{"abc123"},
		{"foo", "bar"},
		{"a", "b", "c", "d", "e"},
	}
	for _, channels := range tests {
		parsed, err := ParseCombinedURL(BuildCombinedURL(channels))
		require.NoError(t, err)
		assert.Equal(t, channels, parsed)
	}
}

func TestBuildCombinedURL(t *testing.T) {
	assert.Equal(t, "https://studio.code.org/musiclab/embed?channels=abc123,xyz789&library=", BuildCombinedURL([]string{"abc123", "xyz789"}))
	// пустой плейлист дает вырожденную, но валидную ссылку
	assert.Equal(t, "https://studio.code.org/musiclab/embed?channels=&library=", BuildCombinedURL(nil))
}
