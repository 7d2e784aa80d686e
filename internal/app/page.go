package app

import (
	"html/template"
	"log/slog"
	"net/http"
)

// pageTemplate единственная страница приложения: форма добавления, список плейлиста,
// общая ссылка и блок загрузки сохраненного плейлиста
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Сборщик плейлистов Music Lab</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            background: #0f172a;
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            max-width: 720px;
            margin: 0 auto;
            padding: 2rem 1rem;
        }
        h1 { font-size: 1.25rem; margin-bottom: 1rem; }
        form, .share { margin-bottom: 1.5rem; display: flex; gap: 0.5rem; }
        input[type=text] {
            flex: 1;
            padding: 0.5rem;
            border: 1px solid #334155;
            border-radius: 4px;
            background: #1e293b;
            color: #e2e8f0;
        }
        button {
            padding: 0.5rem 1rem;
            border: none;
            border-radius: 4px;
            background: #2563eb;
            color: #fff;
            cursor: pointer;
        }
        button.remove { background: #7f1d1d; padding: 0.25rem 0.5rem; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 1.5rem; }
        td { padding: 0.375rem 0.5rem; border-bottom: 1px solid #1e293b; word-break: break-all; }
        .status { min-height: 1.5rem; color: #94a3b8; margin-bottom: 1rem; }
        .combined { color: #38bdf8; word-break: break-all; margin-bottom: 1.5rem; }
    </style>
</head>
<body>
    <h1>Сборщик плейлистов Music Lab</h1>
    <div id="status" class="status">{{.Status}}</div>
    <form id="add-form">
        <input type="text" id="add-url" placeholder="https://studio.code.org/projects/music/...">
        <button type="submit">Добавить</button>
    </form>
    <table id="playlist">
        {{range $i, $e := .Entries}}<tr>
            <td>{{$i}}</td>
            <td>{{$e.ProjectURL}}</td>
            <td><button class="remove" data-index="{{$i}}">&times;</button></td>
        </tr>{{end}}
    </table>
    <div class="combined" id="combined">{{.CombinedURL}}</div>
    <div class="share">
        <button id="copy">Скопировать общую ссылку</button>
        <button id="open">Открыть</button>
    </div>
    <form id="load-form">
        <input type="text" id="load-url" placeholder="https://studio.code.org/musiclab/embed?channels=...">
        <button type="submit">Загрузить плейлист</button>
    </form>
    <script>
        const status = (msg) => { document.getElementById('status').textContent = msg; };
        const reload = () => { window.location.reload(); };

        document.getElementById('add-form').addEventListener('submit', async (e) => {
            e.preventDefault();
            const resp = await fetch('/api/playlist', {
                method: 'POST',
                headers: {'content-type': 'application/json'},
                body: JSON.stringify({url: document.getElementById('add-url').value})
            });
            const data = await resp.json().catch(() => ({}));
            resp.ok ? reload() : status(data.message || 'ошибка');
        });

        document.getElementById('load-form').addEventListener('submit', async (e) => {
            e.preventDefault();
            const resp = await fetch('/api/playlist/load', {
                method: 'POST',
                headers: {'content-type': 'application/json'},
                body: JSON.stringify({url: document.getElementById('load-url').value})
            });
            const data = await resp.json().catch(() => ({}));
            resp.ok ? reload() : status(data.message || 'ошибка');
        });

        document.getElementById('playlist').addEventListener('click', async (e) => {
            if (!e.target.dataset.index) { return; }
            const resp = await fetch('/api/playlist/' + e.target.dataset.index, {method: 'DELETE'});
            resp.ok ? reload() : status('не смогли удалить элемент');
        });

        document.getElementById('copy').addEventListener('click', async () => {
            const resp = await fetch('/api/playlist/share');
            const link = await resp.text();
            if (!resp.ok) { status(link); return; }
            try {
                await navigator.clipboard.writeText(link);
                status('общая ссылка скопирована');
            } catch {
                status('буфер обмена недоступен - скопируйте ссылку вручную');
            }
        });

        document.getElementById('open').addEventListener('click', async () => {
            const resp = await fetch('/api/playlist/share');
            const link = await resp.text();
            resp.ok ? window.open(link, '_blank') : status(link);
        });
    </script>
</body>
</html>
`))

// page обработчик единственной страницы приложения
func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	state, err := s.db.Playlist(r.Context(), sessionID(r))
	if err != nil {
		s.logger.Error("запрос состояния плейлиста", slog.String("ошибка", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set(contentType, "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := pageTemplate.Execute(w, state); err != nil {
		s.logger.Error("отрисовка страницы", slog.String("ошибка", err.Error()))
	}
}
