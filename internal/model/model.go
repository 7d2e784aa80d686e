// пакет model служит для представления используемых моделей приложения
package model

// Entry один элемент плейлиста - ссылка на проект и извлеченный из нее канал
type Entry struct {
	ProjectURL string `json:"project_url"`
	Channel    string `json:"channel"`
}

// RequestAddLink запрос на добавление ссылки на проект в плейлист
type RequestAddLink struct {
	URL string `json:"url,omitempty"`
}

// RequestLoadPlaylist запрос на загрузку плейлиста из общей ссылки
type RequestLoadPlaylist struct {
	URL string `json:"url,omitempty"`
}

// ResponseStatus ответ с результатом отдельной операции.
// каждая операция возвращает собственный результат, чтобы клиенту не приходилось разбирать текст сообщения
type ResponseStatus struct {
	Result      string `json:"result"`
	Message     string `json:"message,omitempty"`
	CombinedURL string `json:"combined_url,omitempty"`
}

// PlaylistState текущее состояние плейлиста одной сессии
type PlaylistState struct {
	Entries     []Entry `json:"entries"`
	CombinedURL string  `json:"combined_url"`
	Status      string  `json:"status,omitempty"`
}

const (
	// ResultOK операция выполнена успешно
	ResultOK = "ok"
	// ResultError операция завершилась ошибкой
	ResultError = "error"
)
