// пакет memory реализует хранилище плейлистов в памяти процесса.
// плейлисты живут только пока живет сервис - никакого сохранения на диск
// или между сессиями нет специально
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kTowkA/musiclab/internal/model"
	"github.com/kTowkA/musiclab/internal/playlist"
)

type Storage struct {
	playlists map[uuid.UUID]*playlist.Playlist
	sync.Mutex
}

func NewStorage() *Storage {
	return &Storage{
		playlists: make(map[uuid.UUID]*playlist.Playlist),
		Mutex:     sync.Mutex{},
	}
}

// session возвращает плейлист сессии, создавая пустой при первом обращении.
// вызывающий уже должен держать мьютекс
func (s *Storage) session(session uuid.UUID) *playlist.Playlist {
	p, ok := s.playlists[session]
	if !ok {
		p = playlist.New()
		s.playlists[session] = p
	}
	return p
}

func (s *Storage) AddLink(ctx context.Context, session uuid.UUID, rawURL string) (model.Entry, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	return s.session(session).Add(rawURL)
}

func (s *Storage) RemoveAt(ctx context.Context, session uuid.UUID, index int) (model.Entry, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	return s.session(session).RemoveAt(index)
}

func (s *Storage) ReplaceAll(ctx context.Context, session uuid.UUID, rawURL string) ([]model.Entry, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	return s.session(session).ReplaceAll(rawURL)
}

func (s *Storage) Playlist(ctx context.Context, session uuid.UUID) (model.PlaylistState, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	p := s.session(session)
	return model.PlaylistState{
		Entries:     p.Entries(),
		CombinedURL: p.CombinedURL(),
		Status:      p.Status(),
	}, nil
}

func (s *Storage) ShareURL(ctx context.Context, session uuid.UUID) (string, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	return s.session(session).ShareURL()
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	s.playlists = make(map[uuid.UUID]*playlist.Playlist)
	return nil
}
