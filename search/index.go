// Package search maintains a full-text index over the conversation
// timeline. The index is a pure lookup accelerator: deleting it loses
// nothing, the timeline stays the source of truth.
package search

import (
	"campus-chat/domain"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type Hit struct {
	ID      uuid.UUID
	Content string
	Sender  domain.Sender
	At      time.Time
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

// Put indexes one message, replacing any previous version of the same id.
func (i *Index) Put(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewTextField("content", message.Content).StoreValue()).
		AddField(bluge.NewKeywordField("sender", string(message.Sender)).StoreValue()).
		AddField(bluge.NewKeywordField("at", strconv.FormatInt(message.At.UnixNano(), 10)).StoreValue())
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("indexing message %s: %w", message.ID, err)
	}
	return nil
}

// Delete drops one message from the index.
func (i *Index) Delete(id uuid.UUID) error {
	if err := i.writer.Delete(bluge.Identifier(id.String())); err != nil {
		return fmt.Errorf("deleting message %s from index: %w", id, err)
	}
	return nil
}

// Search runs the parsed query and returns hits newest-first.
func (i *Index) Search(ctx context.Context, query *Query) ([]Hit, error) {
	if query.Terms == "" {
		return nil, nil
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Closing index reader failed", "error", err)
		}
	}()

	match := bluge.NewMatchQuery(query.Terms).SetField("content")
	request := bluge.NewTopNSearch(query.Limit, match)

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	var hits []Hit
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("iterating results: %w", err)
		}
		if next == nil {
			break
		}

		var hit Hit
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID, _ = uuid.Parse(string(value))
			case "content":
				hit.Content = string(value)
			case "sender":
				hit.Sender = domain.Sender(value)
			case "at":
				if nanos, err := strconv.ParseInt(string(value), 10, 64); err == nil {
					hit.At = time.Unix(0, nanos).UTC()
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("reading stored fields: %w", err)
		}

		if query.Sender != "" && string(hit.Sender) != query.Sender {
			continue
		}
		hits = append(hits, hit)
	}

	sort.Slice(hits, func(a, b int) bool { return hits[a].At.After(hits[b].At) })
	return hits, nil
}
