package mcptools

import (
	"context"
	"strings"

	"github.com/TheNeikos/diary/internal/executor"
	"github.com/TheNeikos/diary/internal/tree"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CatEntryHandler returns the handler function for the cat_entry MCP tool.
func CatEntryHandler(x *executor.Executor) func(ctx context.Context, req *mcp.CallToolRequest, input CatEntryInput) (*mcp.CallToolResult, CatEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CatEntryInput) (*mcp.CallToolResult, CatEntryOutput, error) {
		var (
			e   *tree.Entry
			err error
		)
		if strings.TrimSpace(input.Hash) == "" {
			e, err = tree.Latest(x.FS, x.ContentDir)
		} else {
			e, err = findEntry(x, input.Hash)
		}
		if err != nil {
			return nil, CatEntryOutput{}, err
		}
		return nil, CatEntryOutput{Entry: toResult(e, true)}, nil
	}
}

func findEntry(x *executor.Executor, hash string) (*tree.Entry, error) {
	t, err := x.Load(nil)
	if err != nil {
		return nil, err
	}
	return executor.FindEntry(t.Entries(), hash)
}
