package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"order-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	indexName  = "idx:orders"
	keyPrefix  = "order:"
	maxResults = 1000
)

type RedisIndex struct {
	client *redis.Client
}

func NewRedisIndex(client *redis.Client) *RedisIndex {
	return &RedisIndex{client: client}
}

// document is the indexed shape of an order. createdAtUnix duplicates
// CreatedAt as seconds so the date range filter can run as a numeric query.
type document struct {
	domain.Order
	CreatedAtUnix int64 `json:"createdAtUnix"`
}

// EnsureIndex creates the search index if it does not exist yet. Safe to call
// on every startup.
func (s *RedisIndex) EnsureIndex(ctx context.Context) error {
	err := s.client.FTCreate(ctx, indexName,
		&redis.FTCreateOptions{
			OnJSON: true,
			Prefix: []interface{}{keyPrefix},
		},
		&redis.FieldSchema{FieldName: "$.id", As: "id", FieldType: redis.SearchFieldTypeText},
		&redis.FieldSchema{FieldName: "$.items[*].name", As: "item_name", FieldType: redis.SearchFieldTypeText},
		&redis.FieldSchema{FieldName: "$.status", As: "status", FieldType: redis.SearchFieldTypeTag},
		&redis.FieldSchema{FieldName: "$.createdAtUnix", As: "createdAtUnix", FieldType: redis.SearchFieldTypeNumeric, Sortable: true},
	).Err()
	if err != nil && !strings.Contains(err.Error(), "Index already exists") {
		return fmt.Errorf("create order index: %w", err)
	}
	return nil
}

func (s *RedisIndex) Upsert(ctx context.Context, order *domain.Order) error {
	doc := document{Order: *order, CreatedAtUnix: order.CreatedAt.Unix()}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}
	if err := s.client.JSONSet(ctx, keyPrefix+order.ID, "$", string(data)).Err(); err != nil {
		return fmt.Errorf("index order %s: %w", order.ID, err)
	}
	return nil
}

func (s *RedisIndex) Remove(ctx context.Context, id string) error {
	// DEL of a missing key is a no-op, which keeps Remove idempotent.
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("remove order %s from index: %w", id, err)
	}
	return nil
}

func (s *RedisIndex) Search(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	res, err := s.client.FTSearchWithArgs(ctx, indexName, buildQuery(filter),
		&redis.FTSearchOptions{
			SortBy:      []redis.FTSearchSortBy{{FieldName: "createdAtUnix", Desc: true}},
			LimitOffset: 0,
			Limit:       maxResults,
		},
	).Result()
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(res.Docs))
	for _, d := range res.Docs {
		raw, ok := d.Fields["$"]
		if !ok {
			continue
		}
		var doc document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode indexed order %s: %w", d.ID, err)
		}
		orders = append(orders, doc.Order)
	}
	return orders, nil
}

// buildQuery turns the filter into a RediSearch query. Only fields present in
// the filter contribute a term; terms are ANDed. An empty filter matches all.
func buildQuery(filter domain.OrderFilter) string {
	var parts []string
	if filter.Search != "" {
		parts = append(parts, filter.Search)
	}
	if filter.Status != "" {
		parts = append(parts, fmt.Sprintf("@status:{%s}", filter.Status))
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		start, end := "-inf", "+inf"
		if filter.StartDate != nil {
			start = strconv.FormatInt(filter.StartDate.Unix(), 10)
		}
		if filter.EndDate != nil {
			end = strconv.FormatInt(filter.EndDate.Unix(), 10)
		}
		parts = append(parts, fmt.Sprintf("@createdAtUnix:[%s %s]", start, end))
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}
