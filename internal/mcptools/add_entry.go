package mcptools

import (
	"context"
	"path/filepath"

	"github.com/TheNeikos/diary/internal/executor"
	"github.com/TheNeikos/diary/internal/meta"
	"github.com/TheNeikos/diary/internal/tree"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// AddEntryHandler returns the handler function for the add_entry MCP tool.
func AddEntryHandler(x *executor.Executor) func(ctx context.Context, req *mcp.CallToolRequest, input AddEntryInput) (*mcp.CallToolResult, AddEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddEntryInput) (*mcp.CallToolResult, AddEntryOutput, error) {
		e, err := executor.WriteEntry(x.FS, x.ContentDir, x.Clock(), input.Content)
		if err != nil {
			return nil, AddEntryOutput{}, err
		}

		labels := meta.Labels{Tags: input.Tags, Categories: input.Categories}
		if e, err = applyLabels(x, e, labels); err != nil {
			return nil, AddEntryOutput{}, err
		}
		return nil, AddEntryOutput{Entry: toResult(e, false)}, nil
	}
}

// LabelEntryHandler returns the handler function for the label_entry MCP tool.
func LabelEntryHandler(x *executor.Executor) func(ctx context.Context, req *mcp.CallToolRequest, input LabelEntryInput) (*mcp.CallToolResult, LabelEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LabelEntryInput) (*mcp.CallToolResult, LabelEntryOutput, error) {
		e, err := findEntry(x, input.Hash)
		if err != nil {
			return nil, LabelEntryOutput{}, err
		}

		labels := meta.Labels{Tags: input.Tags, Categories: input.Categories}
		if e, err = applyLabels(x, e, labels); err != nil {
			return nil, LabelEntryOutput{}, err
		}
		return nil, LabelEntryOutput{Entry: toResult(e, false)}, nil
	}
}

// applyLabels records labels for e and returns the entry as read back
// from disk.
func applyLabels(x *executor.Executor, e *tree.Entry, labels meta.Labels) (*tree.Entry, error) {
	if len(labels.Tags) == 0 && len(labels.Categories) == 0 {
		return e, nil
	}
	dir, name := filepath.Dir(e.Path()), filepath.Base(e.Path())
	if err := meta.AddEntryLabels(x.FS, dir, name, labels); err != nil {
		return nil, err
	}
	if x.Logger != nil {
		x.Logger.Debug("entry labeled", zap.String("path", e.Path()),
			zap.Strings("tags", labels.Tags), zap.Strings("categories", labels.Categories))
	}
	return tree.NewBuilder(x.FS, x.Logger).EntryFromPath(e.Path())
}
