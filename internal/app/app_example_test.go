package app

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/kTowkA/musiclab/internal/config"
	"github.com/kTowkA/musiclab/internal/storage/memory"
)

func Example() {
	// создаем экземпляр сервера
	server, err := NewServer(config.DefaultConfig, slog.Default())
	if err != nil {
		log.Fatal(err)
	}

	// создаем экземпляр хранилища плейлистов в памяти
	st := memory.NewStorage()
	defer st.Close()

	// установим контекст отмены в несколько секунд
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// запускаем сервер с заданным контекстом отмены и хранилищем
	if err = server.Run(ctx, st); err != nil {
		log.Fatal(err)
	}
}
