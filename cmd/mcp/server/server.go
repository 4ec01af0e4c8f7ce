// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nairobell/feed/cmd/mcp/client"
)

// Server is the MCP server for the Nairobell feed.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"nairobell-feed",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("categories",
			mcp.Description("Comma-separated list of categories (e.g., 'politics,business,sports')"),
		),
		mcp.WithString("countries",
			mcp.Description("Comma-separated list of focus countries (e.g., 'kenya,nigeria')"),
		),
		mcp.WithString("sources",
			mcp.Description("Comma-separated list of sources to include"),
		),
		mcp.WithString("exclude_sources",
			mcp.Description("Comma-separated list of sources to exclude"),
		),
		mcp.WithString("since",
			mcp.Description("Only include items published after this time (RFC3339 format, e.g., '2024-01-01T00:00:00Z')"),
		),
	}
}

func (s *Server) registerTools() {
	listOpts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"List the latest African news items, newest first. " +
				"Filter by category, country focus, source, or publication time."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (default: 20, max: 100)"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (1-indexed, default: 1)"),
		),
	}, filterOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("list_items", listOpts...), s.handleListItems)

	s.mcpServer.AddTool(mcp.NewTool("get_item",
		mcp.WithDescription("Get full details of a specific news item by its ID."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the item to retrieve"),
		),
	), s.handleGetItem)

	s.mcpServer.AddTool(mcp.NewTool("search_items",
		mcp.WithDescription(
			"Search for news items semantically similar to the given text. "+
				"Useful for finding coverage of a story or topic."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to find similar items for (max 100KB)"),
			mcp.MaxLength(102400),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (default: 10, max: 100)"),
		),
	), s.handleSearchItems)

	feedOpts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"Get your personalised news feed, ranked by your reading history, " +
				"freshness, quality and recommendations. Requires authentication."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (default: 20, max: 100)"),
		),
		mcp.WithString("diversity",
			mcp.Description("How strongly to spread the feed across categories and sources: 'low', 'medium' or 'high'"),
		),
		mcp.WithBoolean("use_hint",
			mcp.Description("Whether to apply the recommendation hint (default: true)"),
		),
	}, filterOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("get_feed", feedOpts...), s.handleGetFeed)

	s.mcpServer.AddTool(mcp.NewTool("mark_read",
		mcp.WithDescription("Record that you read an item. Earns points towards your next level."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the item"),
		),
		mcp.WithBoolean("completed",
			mcp.Description("Whether the item was read to the end"),
		),
		mcp.WithNumber("time_spent_seconds",
			mcp.Description("Seconds spent reading the item"),
		),
	), s.handleMarkRead)

	s.mcpServer.AddTool(mcp.NewTool("get_level",
		mcp.WithDescription("Get your point total and level. Requires authentication."),
	), s.handleGetLevel)

	s.mcpServer.AddTool(mcp.NewTool("level_for",
		mcp.WithDescription("Show the level and progress that a given point total corresponds to."),
		mcp.WithNumber("points",
			mcp.Required(),
			mcp.Description("The point total"),
		),
	), s.handleLevelFor)

	s.mcpServer.AddTool(mcp.NewTool("list_notifications",
		mcp.WithDescription("List notifications scheduled for your top stories. Requires authentication."),
	), s.handleListNotifications)
}
