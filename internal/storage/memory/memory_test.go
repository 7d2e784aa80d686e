package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kTowkA/musiclab/internal/storage"
	"github.com/stretchr/testify/suite"
)

type memorySuite struct {
	suite.Suite
	*Storage
}

func (suite *memorySuite) SetupSuite() {
	suite.Storage = NewStorage()
}

func (suite *memorySuite) TearDownSuite() {
	err := suite.Storage.Close()
	suite.Require().NoError(err)
}

func (suite *memorySuite) TestAddLink() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session1 := uuid.New()
	tests := []struct {
		name          string
		session       uuid.UUID
		rawURL        string
		expectedError error
	}{
		{
			"успешное сохранение",
			session1,
			"https://studio.code.org/projects/music/TestAddLink_1/edit",
			nil,
		},
		{
			"ссылка уже есть в плейлисте",
			session1,
			"https://studio.code.org/projects/music/TestAddLink_1/edit",
			storage.ErrDuplicateEntry,
		},
		{
			"та же ссылка в чужой сессии дубликатом не считается",
			uuid.New(),
			"https://studio.code.org/projects/music/TestAddLink_1/edit",
			nil,
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			entry, err := suite.Storage.AddLink(ctx, tt.session, tt.rawURL)
			if tt.expectedError != nil {
				suite.ErrorIs(err, tt.expectedError)
				return
			}
			suite.NoError(err)
			suite.EqualValues(tt.rawURL, entry.ProjectURL)
		})
	}
}

func (suite *memorySuite) TestReplaceAllAndRemoveAt() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session := uuid.New()
	entries, err := suite.Storage.ReplaceAll(ctx, session, "https://studio.code.org/musiclab/embed?channels=foo,bar&library=")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	removed, err := suite.Storage.RemoveAt(ctx, session, 0)
	suite.NoError(err)
	suite.EqualValues("foo", removed.Channel)

	_, err = suite.Storage.RemoveAt(ctx, session, 1)
	suite.ErrorIs(err, storage.ErrIndexOutOfRange)

	state, err := suite.Storage.Playlist(ctx, session)
	suite.Require().NoError(err)
	suite.Require().Len(state.Entries, 1)
	suite.EqualValues("bar", state.Entries[0].Channel)
	suite.EqualValues("https://studio.code.org/musiclab/embed?channels=bar&library=", state.CombinedURL)
}

func (suite *memorySuite) TestPlaylistNewSession() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// первое обращение новой сессии создает пустой плейлист
	state, err := suite.Storage.Playlist(ctx, uuid.New())
	suite.Require().NoError(err)
	suite.Empty(state.Entries)
	suite.EqualValues("https://studio.code.org/musiclab/embed?channels=&library=", state.CombinedURL)

	// а поделиться пустым плейлистом нельзя
	_, err = suite.Storage.ShareURL(ctx, uuid.New())
	suite.ErrorIs(err, storage.ErrEmptyPlaylist)
}

func (suite *memorySuite) TestPing() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	suite.NoError(suite.Storage.Ping(ctx))
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(memorySuite))
}
