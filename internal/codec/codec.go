// пакет codec содержит чистые функции разбора и сборки ссылок Music Lab.
// никакого состояния тут нет - только два формата строк и преобразования между ними
package codec

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// ProjectURLPrefix общий префикс ссылки на отдельный проект
	ProjectURLPrefix = "https://studio.code.org/projects/music/"

	// combinedURLPrefix и combinedURLSuffix обрамляют список каналов в общей ссылке
	combinedURLPrefix = "https://studio.code.org/musiclab/embed?channels="
	combinedURLSuffix = "&library="
)

var (
	// ErrInvalidProjectURL строка не является ссылкой на проект Music Lab
	ErrInvalidProjectURL = errors.New("невалидная ссылка на проект. ожидаем " + ProjectURLPrefix + "{id}")

	// ErrInvalidCombinedURL строка не является общей ссылкой плейлиста
	ErrInvalidCombinedURL = errors.New("невалидная общая ссылка. ожидаем " + combinedURLPrefix + "{id,id,...}" + combinedURLSuffix)
)

var (
	// возможные окончания ссылки на проект: /edit, /view, просто / или ничего.
	// совпадение строго по всей строке, частичные вхождения не принимаем
	projectRE = regexp.MustCompile(`^https://studio\.code\.org/projects/music/([A-Za-z0-9_-]+)(?:/edit|/view|/)?$`)

	// список каналов может быть пустым, поэтому в группе квантификатор *
	combinedRE = regexp.MustCompile(`^https://studio\.code\.org/musiclab/embed\?channels=([A-Za-z0-9_,-]*)&library=$`)
)

// ParseProjectURL разбирает ссылку на отдельный проект и возвращает идентификатор канала
func ParseProjectURL(raw string) (string, error) {
	matches := projectRE.FindStringSubmatch(raw)
	if len(matches) < 2 {
		return "", ErrInvalidProjectURL
	}
	return matches[1], nil
}

// BuildProjectURL собирает каноничную ссылку на проект для канала channel.
// каноничная форма всегда с окончанием /edit, независимо от того в каком виде ссылка пришла к нам
func BuildProjectURL(channel string) string {
	return ProjectURLPrefix + channel + "/edit"
}

// ParseCombinedURL разбирает общую ссылку плейлиста и возвращает идентификаторы каналов в исходном порядке.
// пустые элементы списка (лишние запятые, пустой список) отбрасываются, поэтому результат может быть пустым срезом
func ParseCombinedURL(raw string) ([]string, error) {
	matches := combinedRE.FindStringSubmatch(raw)
	if len(matches) < 2 {
		return nil, ErrInvalidCombinedURL
	}
	channels := make([]string, 0)
	for _, channel := range strings.Split(matches[1], ",") {
		if channel == "" {
			continue
		}
		channels = append(channels, channel)
	}
	return channels, nil
}

// BuildCombinedURL собирает общую ссылку плейлиста из каналов channels.
// пустой список каналов дает вырожденную, но валидную ссылку с пустым параметром channels
func BuildCombinedURL(channels []string) string {
	return combinedURLPrefix + strings.Join(channels, ",") + combinedURLSuffix
}
