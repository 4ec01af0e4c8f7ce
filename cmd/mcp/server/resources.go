package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"item://{id}",
			"Individual news item from the Nairobell feed",
			mcp.WithTemplateDescription(
				"Fetch a specific news item by its ID, including title, link, "+
					"category, country focus, source and publication time."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleItemResource,
	)
}

func (s *Server) handleItemResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "item://") {
		return nil, fmt.Errorf("invalid item URI format: %s", uri)
	}

	itemID := strings.TrimPrefix(uri, "item://")
	if itemID == "" {
		return nil, fmt.Errorf("missing id in URI: %s", uri)
	}

	item, err := s.client.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item %s: %w", itemID, err)
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
