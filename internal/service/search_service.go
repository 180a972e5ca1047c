package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/pkg/es"
	"amassah-lodge-go/pkg/log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/samber/lo"
)

// SearchService 接口定义了客房搜索操作。
type SearchService interface {
	Search(ctx context.Context, query string) ([]model.Room, error)
	IndexRooms(ctx context.Context) error
}

type searchService struct {
	rooms     []model.Room
	esClient  *elasticsearch.Client
	indexName string
}

// NewSearchService 创建一个新的 SearchService 实例。esClient 为 nil 时只使用内存匹配。
func NewSearchService(rooms []model.Room, esClient *elasticsearch.Client, indexName string) SearchService {
	return &searchService{rooms: rooms, esClient: esClient, indexName: indexName}
}

// IndexRooms 把目录中的客房写入 Elasticsearch。
func (s *searchService) IndexRooms(ctx context.Context) error {
	if s.esClient == nil {
		return nil
	}
	for _, r := range s.rooms {
		doc := model.RoomDocument{RoomID: r.ID, Name: r.Name, Type: r.Type, Features: r.Features, Price: r.Price}
		if err := es.IndexRoom(ctx, s.indexName, doc); err != nil {
			return fmt.Errorf("failed to index room %d: %w", r.ID, err)
		}
	}
	log.Infof("[SearchService] 已索引 %d 间客房到 '%s'", len(s.rooms), s.indexName)
	return nil
}

// Search 在客房名称、房型和设施中查找 query。Elasticsearch 出错时回退到内存匹配。
func (s *searchService) Search(ctx context.Context, query string) ([]model.Room, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Room{}, nil
	}

	if s.esClient != nil {
		rooms, err := s.searchES(ctx, query)
		if err == nil {
			return rooms, nil
		}
		log.Warnf("[SearchService] Elasticsearch 搜索失败，回退到内存匹配: %v", err)
	}
	return s.searchMemory(query), nil
}

func (s *searchService) searchMemory(query string) []model.Room {
	q := strings.ToLower(query)
	return lo.Filter(s.rooms, func(r model.Room, _ int) bool {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Type), q) {
			return true
		}
		return lo.SomeBy(r.Features, func(f string) bool { return strings.Contains(strings.ToLower(f), q) })
	})
}

func (s *searchService) searchES(ctx context.Context, query string) ([]model.Room, error) {
	var buf bytes.Buffer
	esQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"type":   "phrase_prefix",
				"fields": []string{"name", "type", "features"},
			},
		},
		"size": len(s.rooms),
	}
	if err := json.NewEncoder(&buf).Encode(esQuery); err != nil {
		return nil, fmt.Errorf("failed to encode es query: %w", err)
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(s.indexName),
		s.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch returned an error: %s %s", res.Status(), string(bodyBytes))
	}

	var esResponse struct {
		Hits struct {
			Hits []struct {
				Source model.RoomDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResponse); err != nil {
		return nil, fmt.Errorf("failed to decode es response: %w", err)
	}

	byID := lo.KeyBy(s.rooms, func(r model.Room) int { return r.ID })
	results := make([]model.Room, 0, len(esResponse.Hits.Hits))
	for _, hit := range esResponse.Hits.Hits {
		if room, ok := byID[hit.Source.RoomID]; ok {
			results = append(results, room)
		}
	}
	return results, nil
}
