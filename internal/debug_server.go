package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key      string
	Type     string
	EntityID string
	Label    string
	Date     string
	Detail   string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only HTML view over the badger store on
// its own port. Only wired in local store mode.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider, log *slog.Logger) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "dept:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, MapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		log.Info("debug inspector listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn("debug inspector stopped", "error", err)
		}
	}()
}

// MapRow decodes a store entry into a display row based on its key prefix.
func MapRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:      key,
		Type:     "RAW",
		EntityID: "--------",
		Label:    "-",
		Date:     "-",
		Detail:   fmt.Sprintf("%d bytes", len(val)),
	}

	switch {
	case strings.HasPrefix(key, "dept:"):
		row.Type = "DEPARTMENT"
		var record struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(val, &record); err == nil {
			row.EntityID = shorten(record.ID)
			row.Label = record.Name
			row.Detail = record.Description
		}
	case strings.HasPrefix(key, "evt:"):
		row.Type = "EVENT"
		var record struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			EventDate string `json:"event_date"`
			Time      string `json:"time"`
		}
		if err := json.Unmarshal(val, &record); err == nil {
			row.EntityID = shorten(record.ID)
			row.Label = record.Title
			row.Date = record.EventDate
			row.Detail = record.Time
		}
	case strings.HasPrefix(key, "idx:"):
		row.Type = "INDEX"
		row.EntityID = shorten(string(val))
		row.Detail = "-> " + string(val)
	}
	return row
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
