package codec

import (
	"strconv"
	"testing"
)

func BenchmarkParseProjectURL(b *testing.B) {
	b.Run("валидная ссылка", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ParseProjectURL("https://studio.code.org/projects/music/abc123/edit")
		}
	})
	b.Run("невалидная ссылка", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ParseProjectURL("https://studio.code.org/projects/music/abc123/export")
		}
	})
}

func BenchmarkCombinedURL(b *testing.B) {
	channels := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		channels = append(channels, "channel"+strconv.Itoa(i))
	}
	combined := BuildCombinedURL(channels)

	b.Run("сборка 100 каналов", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = BuildCombinedURL(channels)
		}
	})
	b.Run("разбор 100 каналов", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ParseCombinedURL(combined)
		}
	})
}
