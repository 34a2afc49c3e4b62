// Package graphdb implements the graph datastore contract on top of
// Neo4j. Queries run read only, the result is reshaped into nodes and
// edges the frontend graph view can render directly.
package graphdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
)

var _ service.GraphAPI = &Client{}

type Client struct {
	driver neo4j.DriverWithContext
	log    zerolog.Logger
}

func New(ctx context.Context, uri, username, password string, log zerolog.Logger) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("verifying neo4j connectivity: %w", err)
	}

	return &Client{
		driver: driver,
		log:    log,
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

type graphNode struct {
	ID         string         `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

type graphEdge struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Properties map[string]any `json:"properties"`
}

func (c *Client) Search(ctx context.Context, query, outputFormat string) (*service.GraphResult, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode: neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	records, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("running graph query: %w", err)
	}

	nodes := map[string]graphNode{}
	edges := map[string]graphEdge{}
	rows := [][]any{}

	for records.Next(ctx) {
		record := records.Record()
		row := make([]any, 0, len(record.Values))

		for _, value := range record.Values {
			switch v := value.(type) {
			case neo4j.Node:
				nodes[v.ElementId] = graphNode{
					ID:         v.ElementId,
					Labels:     v.Labels,
					Properties: v.Props,
				}
				row = append(row, v.Props)
			case neo4j.Relationship:
				edges[v.ElementId] = graphEdge{
					ID:         v.ElementId,
					Type:       v.Type,
					Source:     v.StartElementId,
					Target:     v.EndElementId,
					Properties: v.Props,
				}
				row = append(row, v.Props)
			default:
				row = append(row, v)
			}
		}

		rows = append(rows, row)
	}

	if err := records.Err(); err != nil {
		return nil, fmt.Errorf("consuming graph result: %w", err)
	}

	summary, err := records.Consume(ctx)
	if err != nil {
		return nil, fmt.Errorf("consuming graph summary: %w", err)
	}

	return encodeResult(nodes, edges, rows, summary.ResultAvailableAfter().Milliseconds(), outputFormat)
}

func encodeResult(nodes map[string]graphNode, edges map[string]graphEdge, rows [][]any, availableAfterMs int64, outputFormat string) (*service.GraphResult, error) {
	nodeList := make([]graphNode, 0, len(nodes))
	for _, node := range nodes {
		nodeList = append(nodeList, node)
	}

	edgeList := make([]graphEdge, 0, len(edges))
	for _, edge := range edges {
		edgeList = append(edgeList, edge)
	}

	var graph any
	switch outputFormat {
	case "cytoscape":
		elements := make([]map[string]any, 0, len(nodeList)+len(edgeList))
		for _, node := range nodeList {
			elements = append(elements, map[string]any{
				"group": "nodes",
				"data":  node,
			})
		}
		for _, edge := range edgeList {
			elements = append(elements, map[string]any{
				"group": "edges",
				"data":  edge,
			})
		}
		graph = elements
	default:
		graph = map[string]any{
			"nodes": nodeList,
			"edges": edgeList,
		}
	}

	rawGraph, err := json.Marshal(graph)
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}

	rawRows, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encoding rows: %w", err)
	}

	rawStats, err := json.Marshal(map[string]any{
		"node_count":         len(nodeList),
		"edge_count":         len(edgeList),
		"row_count":          len(rows),
		"available_after_ms": availableAfterMs,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding stats: %w", err)
	}

	return &service.GraphResult{
		Graph: rawGraph,
		Rows:  rawRows,
		Stats: rawStats,
	}, nil
}
