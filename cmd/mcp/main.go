// Package main provides the entry point for the Nairobell feed MCP server.
//
// The MCP server lets AI agents browse items, read the personalised feed and
// record reads on behalf of a reader.
//
// Configuration:
//
//	NAIROBELL_API_URL   - Base URL of the API (default: https://api.nairobell.com)
//	NAIROBELL_API_TOKEN - API token for authentication (required, format: nbl_xxx)
package main

import (
	"log"
	"os"

	"github.com/nairobell/feed/cmd/mcp/client"
	"github.com/nairobell/feed/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("NAIROBELL_API_URL")
	if apiURL == "" {
		apiURL = "https://api.nairobell.com"
	}

	apiToken := os.Getenv("NAIROBELL_API_TOKEN")
	if apiToken == "" {
		log.Fatal("NAIROBELL_API_TOKEN environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
