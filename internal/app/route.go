package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kTowkA/musiclab/internal/codec"
	"github.com/kTowkA/musiclab/internal/model"
	"github.com/kTowkA/musiclab/internal/storage"
)

// addLink обработчик для добавления ссылки на проект из текстового запроса
func (s *Server) addLink(w http.ResponseWriter, r *http.Request) {
	// проверяем, что контент тайп нужный
	if !strings.HasPrefix(r.Header.Get(contentType), plainTextContentType) && !strings.HasPrefix(r.Header.Get(contentType), "application/x-gzip") {
		http.Error(w, "разрешенные типы контента: text/plain, application/x-gzip", http.StatusBadRequest)
		return
	}

	// проверяем, что тело существует
	if r.Body == nil {
		http.Error(w, "пустой запрос", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// читаем тело
	sc := bufio.NewScanner(r.Body)
	link := ""
	for sc.Scan() {
		link = strings.TrimSpace(sc.Text())
		if link != "" {
			break
		}
	}

	// проверяем, что запрос не пуст
	if link == "" {
		http.Error(w, "пустой запрос", http.StatusBadRequest)
		return
	}

	_, err := s.db.AddLink(r.Context(), sessionID(r), link)
	if errors.Is(err, codec.ErrInvalidProjectURL) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if errors.Is(err, storage.ErrDuplicateEntry) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state, err := s.db.Playlist(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// успешно. в ответе общая ссылка уже с учетом добавленной записи
	w.Header().Set(contentType, plainTextContentType)
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(state.CombinedURL))
}

// apiAddLink обработчик добавления ссылки на проект для API
func (s *Server) apiAddLink(w http.ResponseWriter, r *http.Request) {
	// проверяем, что тело существует
	if r.Body == nil {
		http.Error(w, "пустой запрос", http.StatusBadRequest)
		return
	}

	// работаем с телом запроса
	buf := bytes.Buffer{}
	_, err := buf.ReadFrom(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	req := model.RequestAddLink{}
	err = json.Unmarshal(buf.Bytes(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = s.db.AddLink(r.Context(), sessionID(r), strings.TrimSpace(req.URL))
	if errors.Is(err, codec.ErrInvalidProjectURL) {
		s.writeStatus(w, http.StatusBadRequest, model.ResponseStatus{Result: model.ResultError, Message: err.Error()})
		return
	} else if errors.Is(err, storage.ErrDuplicateEntry) {
		s.writeStatus(w, http.StatusConflict, model.ResponseStatus{Result: model.ResultError, Message: err.Error()})
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state, err := s.db.Playlist(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeStatus(w, http.StatusCreated, model.ResponseStatus{
		Result:      model.ResultOK,
		Message:     state.Status,
		CombinedURL: state.CombinedURL,
	})
}

// apiLoadPlaylist обработчик загрузки плейлиста из общей ссылки.
// при невалидной ссылке текущий плейлист остается нетронутым
func (s *Server) apiLoadPlaylist(w http.ResponseWriter, r *http.Request) {
	// проверяем, что тело существует
	if r.Body == nil {
		http.Error(w, "пустой запрос", http.StatusBadRequest)
		return
	}

	buf := bytes.Buffer{}
	_, err := buf.ReadFrom(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	req := model.RequestLoadPlaylist{}
	err = json.Unmarshal(buf.Bytes(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = s.db.ReplaceAll(r.Context(), sessionID(r), strings.TrimSpace(req.URL))
	if errors.Is(err, codec.ErrInvalidCombinedURL) {
		s.writeStatus(w, http.StatusBadRequest, model.ResponseStatus{Result: model.ResultError, Message: err.Error()})
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state, err := s.db.Playlist(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeStatus(w, http.StatusOK, model.ResponseStatus{
		Result:      model.ResultOK,
		Message:     state.Status,
		CombinedURL: state.CombinedURL,
	})
}

// removeLink обработчик удаления элемента плейлиста по номеру (нумерация с нуля)
func (s *Server) removeLink(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "номер элемента должен быть целым числом", http.StatusBadRequest)
		return
	}

	_, err = s.db.RemoveAt(r.Context(), sessionID(r), index)
	if errors.Is(err, storage.ErrIndexOutOfRange) {
		s.writeStatus(w, http.StatusBadRequest, model.ResponseStatus{Result: model.ResultError, Message: err.Error()})
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state, err := s.db.Playlist(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeStatus(w, http.StatusOK, model.ResponseStatus{
		Result:      model.ResultOK,
		Message:     state.Status,
		CombinedURL: state.CombinedURL,
	})
}

// playlistState обработчик получения текущего состояния плейлиста
func (s *Server) playlistState(w http.ResponseWriter, r *http.Request) {
	state, err := s.db.Playlist(r.Context(), sessionID(r))
	if err != nil {
		s.logger.Error("запрос состояния плейлиста", slog.String("ошибка", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	result, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		s.logger.Error("конвертация в json", slog.String("ошибка", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set(contentType, jsonContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result)
}

// shareLink обработчик выдачи общей ссылки для копирования или открытия.
// для пустого плейлиста делиться нечем - возвращаем конфликт
func (s *Server) shareLink(w http.ResponseWriter, r *http.Request) {
	combined, err := s.db.ShareURL(r.Context(), sessionID(r))
	if errors.Is(err, storage.ErrEmptyPlaylist) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set(contentType, plainTextContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(combined))
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	err := s.db.Ping(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeStatus записывает результат операции в формате json
func (s *Server) writeStatus(w http.ResponseWriter, code int, status model.ResponseStatus) {
	resp, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if w.Header().Get(contentType) == "" {
		w.Header().Set(contentType, jsonContentType)
	}
	w.WriteHeader(code)
	_, _ = w.Write(resp)
}
