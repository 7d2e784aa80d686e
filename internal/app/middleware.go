package app

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	sessionCookie = "musiclab_session"
)

type contextKey string

// Claims — структура утверждений, которая включает стандартные утверждения и
// одно пользовательское SessionID
type Claims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID
}

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

func withLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		logFn := func(w http.ResponseWriter, r *http.Request) {

			start := time.Now()

			lw := loggingResponseWriter{
				ResponseWriter: w,
				responseData:   &responseData{},
			}

			h.ServeHTTP(&lw, r)

			duration := time.Since(start)
			log.Info(
				"входящий запрос",
				slog.String("uri", r.RequestURI),
				slog.String("http метод", r.Method),
				slog.Duration("длительность запроса", duration),
				slog.Int("статус", lw.responseData.status),
				slog.Int("размер ответа", lw.responseData.size),
			)
		}

		return http.HandlerFunc(logFn)
	}
}

type (
	gzipWriter struct {
		http.ResponseWriter
		gzw *gzip.Writer
	}
	gzipReader struct {
		orig io.ReadCloser
		gzr  *gzip.Reader
	}
)

func (gzw *gzipWriter) Write(p []byte) (int, error) {
	return gzw.gzw.Write(p)
}

func (gzr *gzipReader) Read(p []byte) (n int, err error) {
	return gzr.gzr.Read(p)
}

func (gzr *gzipReader) Close() error {
	if err := gzr.orig.Close(); err != nil {
		return err
	}
	return gzr.gzr.Close()
}

func withGZIP(h http.Handler) http.Handler {
	zfunc := func(w http.ResponseWriter, r *http.Request) {
		newWriter := w

		if gzipValidContenType(r.Header) {
			cw := &gzipWriter{
				ResponseWriter: w,
				gzw:            gzip.NewWriter(w),
			}
			newWriter = cw
			cw.Header().Set("Content-Encoding", "gzip")
			defer cw.gzw.Close()
		}

		if strings.Contains(r.Header.Get("content-encoding"), "gzip") {
			// оборачиваем тело запроса в io.Reader с поддержкой декомпрессии
			rzip, err := gzip.NewReader(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			gzr := &gzipReader{
				orig: r.Body,
				gzr:  rzip,
			}
			r.Body = gzr
			defer gzr.Close()
		}

		h.ServeHTTP(newWriter, r)
	}
	return http.HandlerFunc(zfunc)
}

func gzipValidContenType(header http.Header) bool {
	validContentType := []string{
		"text/html",
		"application/json",
	}
	if !strings.Contains(header.Get("accept-encoding"), "gzip") {
		return false
	}
	for _, ct := range validContentType {
		if strings.Contains(header.Get("content-type"), ct) {
			return true
		}
	}
	return false
}

// withSession следит за тем, чтобы у каждого браузера была своя сессия со своим плейлистом.
// регистрации нет - если валидного токена в cookie не оказалось, просто создаем новую сессию
func (s *Server) withSession(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := getSessionIDFromCookie(r, s.Config.SecretKey())
		if err == nil {
			// все хорошо, токен валиден и есть sessionID - продолжаем
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey("sessionID"), sessionID)))
			return
		}
		// создаем новую сессию с пустым плейлистом
		sessionID = uuid.New()
		newTokenString, err := buildJWTString(sessionID, s.Config.SecretKey(), s.Config.TokenTTL())
		if err != nil {
			s.logger.Error("создание сессионного токена", slog.String("ошибка", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: newTokenString, Path: "/"})

		// сохраняем ID сессии в контекте запроса и передаем дальше
		h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey("sessionID"), sessionID)))
	})
}

// buildJWTString создаёт токен сессии и возвращает его в виде строки.
func buildJWTString(sessionID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		// собственное утверждение
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// getSessionIDFromToken - получает ID сессии из JWT токена
func getSessionIDFromToken(tokenString, secret string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
	if err != nil {
		return uuid.UUID{}, err
	}

	if !token.Valid {
		return uuid.UUID{}, fmt.Errorf("токен не прошел проверку")
	}

	return claims.SessionID, nil
}

// getSessionIDFromCookie - получает ID сессии из куки
func getSessionIDFromCookie(r *http.Request, secret string) (uuid.UUID, error) {
	token, err := r.Cookie(sessionCookie)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("не смогли получить cookie. %w", err)
	}
	sessionID, err := getSessionIDFromToken(token.Value, secret)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("не смогли получить sessionID из токена. %w", err)
	}
	if err := uuid.Validate(sessionID.String()); err != nil {
		return uuid.UUID{}, fmt.Errorf("sessionID не представляет собой UUID. %w", err)
	}
	return sessionID, nil
}

// sessionID достает ID сессии из контекста запроса.
// сюда мы попадаем уже после withSession, но на всякий случай при отсутствии значения создаем новый
func sessionID(r *http.Request) uuid.UUID {
	id, ok := r.Context().Value(contextKey("sessionID")).(uuid.UUID)
	if !ok {
		return uuid.New()
	}
	return id
}
