package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nairobell/feed/cmd/mcp/client"
)

func (s *Server) handleListItems(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters, err := parseItemFilters(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, err := s.client.ListItems(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list items: %v", err)), nil
	}

	return formatListResult(items, "item")
}

func parseItemFilters(args map[string]any) (client.ItemFilters, error) {
	filters := client.ItemFilters{
		Limit: 20,
	}

	if categories, ok := args["categories"].(string); ok && categories != "" {
		filters.Categories = splitAndTrim(categories)
	}
	if countries, ok := args["countries"].(string); ok && countries != "" {
		filters.Countries = splitAndTrim(countries)
	}
	if sources, ok := args["sources"].(string); ok && sources != "" {
		filters.OnlySources = splitAndTrim(sources)
	}
	if excludeSources, ok := args["exclude_sources"].(string); ok && excludeSources != "" {
		filters.ExceptSources = splitAndTrim(excludeSources)
	}

	if since, ok := args["since"].(string); ok && since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return filters, fmt.Errorf("invalid since date format: %w", err)
		}
		filters.Since = &t
	}

	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		filters.Limit = min(int(limit), 100)
	}
	if page, ok := args["page"].(float64); ok && page > 0 {
		filters.Page = int(page)
	}

	return filters, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Server) handleGetItem(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	itemID, ok := request.Params.Arguments["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	item, err := s.client.GetItem(ctx, itemID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get item: %v", err)), nil
	}

	return formatJSONResult(item)
}

func (s *Server) handleSearchItems(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	limit := 10
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = min(int(l), 100)
	}

	items, err := s.client.SearchItems(ctx, text, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search items: %v", err)), nil
	}

	return formatListResult(items, "item")
}

func (s *Server) handleGetFeed(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	filters, err := parseItemFilters(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := client.FeedOptions{ItemFilters: filters}
	if diversity, ok := args["diversity"].(string); ok && diversity != "" {
		switch d := strings.ToLower(diversity); d {
		case "low", "medium", "high":
			opts.Diversity = d
		default:
			return mcp.NewToolResultError("diversity must be 'low', 'medium', or 'high'"), nil
		}
	}
	if useHint, ok := args["use_hint"].(bool); ok {
		opts.NoHint = !useHint
	}

	feed, err := s.client.GetFeed(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get feed: %v", err)), nil
	}

	return formatListResult(feed.Data, "feed item")
}

func (s *Server) handleMarkRead(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	itemID, ok := args["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	opts := client.ReadOptions{Interacted: true}
	if completed, ok := args["completed"].(bool); ok {
		opts.Completed = completed
	}
	if spent, ok := args["time_spent_seconds"].(float64); ok && spent > 0 {
		opts.TimeSpentSeconds = spent
	}

	award, err := s.client.MarkRead(ctx, itemID, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to mark item as read: %v", err)), nil
	}

	msg := fmt.Sprintf("Marked item %s as read: +%d points (total %d, level %d)",
		itemID, award.Points+award.Bonus, award.TotalPoints, award.Level.Level)
	if award.LeveledUp {
		msg += fmt.Sprintf("\nLevel up! Bonus of %d points awarded.", award.Bonus)
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleGetLevel(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	level, err := s.client.GetUserLevel(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get level: %v", err)), nil
	}

	return formatJSONResult(level)
}

func (s *Server) handleLevelFor(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	points, ok := request.Params.Arguments["points"].(float64)
	if !ok {
		return mcp.NewToolResultError("points is required"), nil
	}

	level, err := s.client.LevelFor(ctx, int64(points))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to look up level: %v", err)), nil
	}

	return formatJSONResult(level)
}

func (s *Server) handleListNotifications(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	notifications, err := s.client.ListNotifications(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list notifications: %v", err)), nil
	}

	return formatListResult(notifications, "notification")
}

func formatListResult[T any](values []T, noun string) (*mcp.CallToolResult, error) {
	if len(values) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No %ss found.", noun)), nil
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format %ss: %v", noun, err)), nil
	}

	msg := fmt.Sprintf("Found %d %s(s):\n\n%s", len(values), noun, string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
