package mcptools

import (
	"context"

	"github.com/TheNeikos/diary/internal/executor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewDiaryMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewDiaryMCPServer(x *executor.Executor) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(x)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered diary tools. Tools
// read and write the content directory of x; its output settings are
// ignored.
func CreateMCPServer(x *executor.Executor) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "diary",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List diary entries limited by date and filtered by tag or category",
	}, ListEntriesHandler(x))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cat_entry",
		Description: "Read one diary entry by hash prefix, or the latest entry",
	}, CatEntryHandler(x))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_entry",
		Description: "Add a diary entry stamped with the current time",
	}, AddEntryHandler(x))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "label_entry",
		Description: "Add tags or categories to a diary entry",
	}, LabelEntryHandler(x))

	return server
}
