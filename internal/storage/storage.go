package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kTowkA/musiclab/internal/model"
)

var (
	// ErrDuplicateEntry такая ссылка уже была добавлена в плейлист
	ErrDuplicateEntry = errors.New("такая ссылка уже есть в плейлисте")

	// ErrIndexOutOfRange элемента с таким номером в плейлисте нет
	ErrIndexOutOfRange = errors.New("в плейлисте нет элемента с таким номером")

	// ErrEmptyPlaylist плейлист пуст, делиться нечем
	ErrEmptyPlaylist = errors.New("плейлист пуст")
)

type Storager interface {
	// AddLink проверяет ссылку на проект и добавляет ее в плейлист сессии session
	AddLink(ctx context.Context, session uuid.UUID, rawURL string) (model.Entry, error)

	// RemoveAt удаляет из плейлиста сессии session элемент с номером index (нумерация с нуля)
	RemoveAt(ctx context.Context, session uuid.UUID, index int) (model.Entry, error)

	// ReplaceAll заменяет весь плейлист сессии session содержимым общей ссылки rawURL
	ReplaceAll(ctx context.Context, session uuid.UUID, rawURL string) ([]model.Entry, error)

	// Playlist возвращает текущее состояние плейлиста сессии session
	Playlist(ctx context.Context, session uuid.UUID) (model.PlaylistState, error)

	// ShareURL возвращает общую ссылку плейлиста сессии session. для пустого плейлиста вернет ошибку
	ShareURL(ctx context.Context, session uuid.UUID) (string, error)

	// Ping проверка доступности хранилища
	Ping(ctx context.Context) error

	// Close закрытие хранилища
	Close() error
}
