// Package opensearch implements the search datastore contract on top
// of an OpenSearch cluster. Events live in one index per timeline and
// carry their sketch scoped annotations in a shared label field.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	"github.com/rs/zerolog"
)

var _ service.SearchAPI = &Client{}

type Client struct {
	client *opensearchclient.Client
	log    zerolog.Logger
}

func New(addresses []string, username, password string, log zerolog.Logger) (*Client, error) {
	client, err := opensearchclient.NewClient(opensearchclient.Config{
		Addresses: addresses,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("creating opensearch client: %w", err)
	}

	return &Client{
		client: client,
		log:    log,
	}, nil
}

type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]struct {
		Buckets []json.RawMessage `json:"buckets"`
	} `json:"aggregations"`
}

type searchHit struct {
	Index  string         `json:"_index"`
	ID     string         `json:"_id"`
	Type   string         `json:"_type"`
	Source map[string]any `json:"_source"`
}

func (c *Client) Search(ctx context.Context, sketchID uuid.UUID, query string, filter service.QueryFilter, dsl json.RawMessage, indices []string) (*service.SearchResult, error) {
	if len(indices) == 0 {
		return &service.SearchResult{Events: []*service.SearchEvent{}}, nil
	}

	body, err := c.buildQuery(sketchID, query, filter, dsl)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding search body: %w", err)
	}

	res, err := c.client.Search(
		c.client.Search.WithContext(ctx),
		c.client.Search.WithIndex(indices...),
		c.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("executing search: %w", err)
	}
	defer res.Body.Close()

	decoded, err := decodeResponse(res)
	if err != nil {
		return nil, err
	}

	result := &service.SearchResult{
		Took:       decoded.Took,
		TotalCount: decoded.Hits.Total.Value,
		Events:     make([]*service.SearchEvent, 0, len(decoded.Hits.Hits)),
	}

	for _, hit := range decoded.Hits.Hits {
		result.Events = append(result.Events, eventFromHit(hit))
	}

	return result, nil
}

func (c *Client) BuildQuery(_ context.Context, sketchID uuid.UUID, query string, filter service.QueryFilter, dsl json.RawMessage) (json.RawMessage, error) {
	body, err := c.buildQuery(sketchID, query, filter, dsl)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	return raw, nil
}

func (c *Client) Count(ctx context.Context, indices []string) (int64, error) {
	if len(indices) == 0 {
		return 0, nil
	}

	res, err := c.client.Count(
		c.client.Count.WithContext(ctx),
		c.client.Count.WithIndex(indices...),
	)
	if err != nil {
		return 0, fmt.Errorf("executing count: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("count: %s", res.String())
	}

	var decoded struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decoding count response: %w", err)
	}

	return decoded.Count, nil
}

func (c *Client) GetEvent(ctx context.Context, indexName, eventID string) (map[string]any, error) {
	res, err := c.client.Get(
		indexName,
		eventID,
		c.client.Get.WithContext(ctx),
		c.client.Get.WithSourceExcludes(service.DatastoreLabelField),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("get document: %s", res.String())
	}

	var decoded struct {
		Source map[string]any `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	return decoded.Source, nil
}

// setLabelScript appends a label entry to the shared label field,
// initializing the field on first use. With remove set, an entry that
// is already present is taken out instead.
const setLabelScript = `
if (ctx._source.%[1]s == null) {
    ctx._source.%[1]s = new ArrayList()
}
boolean found = false;
for (entry in ctx._source.%[1]s) {
    if (entry.name == params.label.name && entry.sketch_id == params.label.sketch_id) {
        found = true;
        break;
    }
}
if (found && params.remove) {
    ctx._source.%[1]s.removeIf(entry -> entry.name == params.label.name && entry.sketch_id == params.label.sketch_id);
} else if (!found) {
    ctx._source.%[1]s.add(params.label);
}
`

func (c *Client) SetLabel(ctx context.Context, indexName, eventID, eventType string, sketchID, userID uuid.UUID, label string, toggle bool) error {
	update := map[string]any{
		"script": map[string]any{
			"source": fmt.Sprintf(setLabelScript, service.DatastoreLabelField),
			"lang":   "painless",
			"params": map[string]any{
				"label": map[string]any{
					"name":      label,
					"sketch_id": sketchID.String(),
					"user_id":   userID.String(),
				},
				"remove": toggle,
			},
		},
	}

	raw, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encoding label update: %w", err)
	}

	res, err := c.client.Update(
		indexName,
		eventID,
		bytes.NewReader(raw),
		c.client.Update.WithContext(ctx),
		c.client.Update.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("updating document label: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("label update: %s", res.String())
	}

	_, _ = io.Copy(io.Discard, res.Body)

	return nil
}

func (c *Client) Heatmap(ctx context.Context, p service.AggregationParams) ([]json.RawMessage, error) {
	aggs := map[string]any{
		"heatmap": map[string]any{
			"terms": map[string]any{
				"script": map[string]any{
					"source": "doc['datetime'].value.dayOfWeekEnum.value + ':' + doc['datetime'].value.hour",
					"lang":   "painless",
				},
				"size": 168,
			},
		},
	}

	return c.aggregate(ctx, p, "heatmap", aggs)
}

func (c *Client) Histogram(ctx context.Context, p service.AggregationParams) ([]json.RawMessage, error) {
	aggs := map[string]any{
		"histogram": map[string]any{
			"date_histogram": map[string]any{
				"field":             "datetime",
				"calendar_interval": "year",
				"min_doc_count":     0,
			},
		},
	}

	return c.aggregate(ctx, p, "histogram", aggs)
}

func (c *Client) aggregate(ctx context.Context, p service.AggregationParams, name string, aggs map[string]any) ([]json.RawMessage, error) {
	if len(p.Indices) == 0 {
		return []json.RawMessage{}, nil
	}

	body, err := c.buildQuery(p.SketchID, p.Query, p.Filter, p.DSL)
	if err != nil {
		return nil, err
	}

	body["size"] = 0
	delete(body, "from")
	delete(body, "sort")
	body["aggregations"] = aggs

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding aggregation body: %w", err)
	}

	res, err := c.client.Search(
		c.client.Search.WithContext(ctx),
		c.client.Search.WithIndex(p.Indices...),
		c.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("executing aggregation: %w", err)
	}
	defer res.Body.Close()

	decoded, err := decodeResponse(res)
	if err != nil {
		return nil, err
	}

	agg, ok := decoded.Aggregations[name]
	if !ok {
		return []json.RawMessage{}, nil
	}

	return agg.Buckets, nil
}

// buildQuery compiles a submitted query into the datastore request
// body. A raw DSL body wins over the query string, the filter then
// adds the label, id, time and paging clauses on top.
func (c *Client) buildQuery(sketchID uuid.UUID, query string, filter service.QueryFilter, dsl json.RawMessage) (map[string]any, error) {
	var queryClause map[string]any

	if len(dsl) > 0 {
		var body map[string]any
		if err := json.Unmarshal(dsl, &body); err != nil {
			return nil, fmt.Errorf("decoding query dsl: %w", err)
		}

		if inner, ok := body["query"].(map[string]any); ok {
			queryClause = inner
		} else {
			queryClause = body
		}
	} else if query != "" {
		queryClause = map[string]any{
			"query_string": map[string]any{
				"query": query,
			},
		}
	} else {
		queryClause = map[string]any{
			"match_all": map[string]any{},
		}
	}

	must := []any{queryClause}

	if filter.Star {
		must = append(must, labelClause(sketchID, service.StarLabel))
	}

	if len(filter.Events) > 0 {
		must = append(must, map[string]any{
			"ids": map[string]any{
				"values": filter.Events,
			},
		})
	}

	if filter.TimeStart != "" || filter.TimeEnd != "" {
		timeRange := map[string]any{}
		if filter.TimeStart != "" {
			timeRange["gte"] = filter.TimeStart
		}
		if filter.TimeEnd != "" {
			timeRange["lte"] = filter.TimeEnd
		}

		must = append(must, map[string]any{
			"range": map[string]any{
				"datetime": timeRange,
			},
		})
	}

	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
				"must_not": []any{
					labelClause(sketchID, service.HiddenLabel),
				},
			},
		},
		"from": filter.From,
		"size": filter.Size,
		"sort": []any{
			map[string]any{
				"datetime": map[string]any{
					"order": filter.Order,
				},
			},
		},
	}

	return body, nil
}

// labelClause matches documents holding the given label for the given
// sketch in the shared label field.
func labelClause(sketchID uuid.UUID, label string) map[string]any {
	return map[string]any{
		"nested": map[string]any{
			"path": service.DatastoreLabelField,
			"query": map[string]any{
				"bool": map[string]any{
					"must": []any{
						map[string]any{
							"term": map[string]any{
								service.DatastoreLabelField + ".name": label,
							},
						},
						map[string]any{
							"term": map[string]any{
								service.DatastoreLabelField + ".sketch_id": sketchID.String(),
							},
						},
					},
				},
			},
		},
	}
}

func eventFromHit(hit searchHit) *service.SearchEvent {
	event := &service.SearchEvent{
		Index:  hit.Index,
		ID:     hit.ID,
		Type:   hit.Type,
		Source: hit.Source,
	}

	raw, ok := hit.Source[service.DatastoreLabelField]
	if !ok {
		return event
	}

	delete(hit.Source, service.DatastoreLabelField)

	encoded, err := json.Marshal(raw)
	if err != nil {
		return event
	}

	var labels []service.DatastoreLabel
	if err := json.Unmarshal(encoded, &labels); err != nil {
		return event
	}

	event.Labels = labels

	return event
}

func decodeResponse(res *opensearchapi.Response) (*searchResponse, error) {
	if res.IsError() {
		reason, _ := io.ReadAll(res.Body)

		return nil, fmt.Errorf("search failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(reason)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	return &decoded, nil
}
