package search

import (
	"calsync-lab/domain"
	"context"
	"log/slog"
	"sync"

	"github.com/blugelabs/bluge"
)

// Index is a full-text index over event titles and descriptions,
// scoped per department with a keyword field. It is maintained on every
// event mutation and is advisory: the store stays the source of truth,
// search only resolves ids.
type Index struct {
	mu     sync.Mutex
	writer *bluge.Writer
	log    *slog.Logger
}

func Open(path string, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, err
	}
	return &Index{writer: writer, log: log}, nil
}

// InMemory builds a non-persistent index, used by tests.
func InMemory(log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &Index{writer: writer, log: log}, nil
}

func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.writer.Close()
}

// IndexEvent upserts the event's searchable fields.
func (i *Index) IndexEvent(e domain.Event) error {
	doc := bluge.NewDocument(e.ID).
		AddField(bluge.NewKeywordField("department_id", string(e.DepartmentID))).
		AddField(bluge.NewTextField("title", e.Title)).
		AddField(bluge.NewTextField("description", e.Description))

	i.mu.Lock()
	defer i.mu.Unlock()
	return i.writer.Update(doc.ID(), doc)
}

func (i *Index) DeleteEvent(id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.writer.Delete(bluge.Identifier(id))
}

// Search returns the ids of events in the department matching the query
// on title or description, best first.
func (i *Index) Search(ctx context.Context, departmentID domain.DepartmentID, query string, limit int) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("closing index reader", "error", err)
		}
	}()

	match := bluge.NewBooleanQuery().
		AddMust(bluge.NewBooleanQuery().
			AddShould(bluge.NewMatchQuery(query).SetField("title")).
			AddShould(bluge.NewMatchQuery(query).SetField("description"))).
		AddMust(bluge.NewTermQuery(string(departmentID)).SetField("department_id"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, match))
	if err != nil {
		return nil, err
	}

	var ids []string
	next, err := iterator.Next()
	for err == nil && next != nil {
		visitErr := next.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		next, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}
