// пакет playlist реализует упорядоченный список ссылок на проекты Music Lab одной сессии.
// тип Playlist не потокобезопасен - за блокировки отвечает хранилище, которое им владеет
package playlist

import (
	"github.com/kTowkA/musiclab/internal/codec"
	"github.com/kTowkA/musiclab/internal/model"
	"github.com/kTowkA/musiclab/internal/storage"
)

const (
	statusAdded   = "ссылка добавлена в плейлист"
	statusRemoved = "ссылка удалена из плейлиста"
	statusLoaded  = "плейлист загружен"
)

// Playlist упорядоченный набор пар (ссылка на проект, канал) и последнее статусное сообщение.
// статус перезаписывается каждой операцией - истории сообщений нет
type Playlist struct {
	entries []model.Entry
	status  string
}

// New создает пустой плейлист
func New() *Playlist {
	return &Playlist{
		entries: make([]model.Entry, 0),
	}
}

// Add проверяет ссылку rawURL и добавляет ее в конец плейлиста.
// дубликаты определяются по полному совпадению строки, а не по каналу:
// одна и та же ссылка в формах /edit и /view считается двумя разными записями
func (p *Playlist) Add(rawURL string) (model.Entry, error) {
	channel, err := codec.ParseProjectURL(rawURL)
	if err != nil {
		p.status = err.Error()
		return model.Entry{}, err
	}
	for _, e := range p.entries {
		if e.ProjectURL == rawURL {
			p.status = storage.ErrDuplicateEntry.Error()
			return model.Entry{}, storage.ErrDuplicateEntry
		}
	}
	entry := model.Entry{
		ProjectURL: rawURL,
		Channel:    channel,
	}
	p.entries = append(p.entries, entry)
	p.status = statusAdded
	return entry, nil
}

// RemoveAt удаляет элемент с номером index, нумерация с нуля.
// при неверном номере плейлист остается нетронутым
func (p *Playlist) RemoveAt(index int) (model.Entry, error) {
	if index < 0 || index >= len(p.entries) {
		p.status = storage.ErrIndexOutOfRange.Error()
		return model.Entry{}, storage.ErrIndexOutOfRange
	}
	removed := p.entries[index]
	p.entries = append(p.entries[:index], p.entries[index+1:]...)
	p.status = statusRemoved
	return removed, nil
}

// ReplaceAll заменяет весь плейлист содержимым общей ссылки rawURL.
// ссылки на проекты пересобираются в каноничной форме /edit в том порядке, в котором каналы шли в общей ссылке.
// при невалидной общей ссылке текущий плейлист остается нетронутым
func (p *Playlist) ReplaceAll(rawURL string) ([]model.Entry, error) {
	channels, err := codec.ParseCombinedURL(rawURL)
	if err != nil {
		p.status = err.Error()
		return nil, err
	}
	entries := make([]model.Entry, 0, len(channels))
	for _, channel := range channels {
		entries = append(entries, model.Entry{
			ProjectURL: codec.BuildProjectURL(channel),
			Channel:    channel,
		})
	}
	p.entries = entries
	p.status = statusLoaded
	return p.Entries(), nil
}

// CombinedURL собирает общую ссылку из текущих каналов.
// значение всегда вычисляется заново и нигде не хранится, поэтому разойтись с плейлистом не может
func (p *Playlist) CombinedURL() string {
	channels := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		channels = append(channels, e.Channel)
	}
	return codec.BuildCombinedURL(channels)
}

// ShareURL возвращает общую ссылку для копирования или открытия.
// в отличие от CombinedURL пустой плейлист здесь считается ошибкой - делиться нечем
func (p *Playlist) ShareURL() (string, error) {
	if len(p.entries) == 0 {
		p.status = storage.ErrEmptyPlaylist.Error()
		return "", storage.ErrEmptyPlaylist
	}
	return p.CombinedURL(), nil
}

// Entries возвращает копию текущих элементов плейлиста
func (p *Playlist) Entries() []model.Entry {
	entries := make([]model.Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// Len количество элементов в плейлисте
func (p *Playlist) Len() int {
	return len(p.entries)
}

// Status последнее статусное сообщение
func (p *Playlist) Status() string {
	return p.status
}
