package mcptools

import (
	"context"

	"github.com/TheNeikos/diary/internal/command"
	"github.com/TheNeikos/diary/internal/executor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListEntriesHandler returns the handler function for the list_entries MCP tool.
func ListEntriesHandler(x *executor.Executor) func(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
		cmds, err := listCommands(input)
		if err != nil {
			return nil, ListEntriesOutput{}, err
		}

		t, err := x.Load(cmds)
		if err != nil {
			return nil, ListEntriesOutput{}, err
		}

		entries := t.Entries()
		if input.Limit > 0 && len(entries) > input.Limit {
			entries = entries[len(entries)-input.Limit:]
		}

		out := ListEntriesOutput{Entries: []EntryResult{}}
		for _, e := range entries {
			out.Entries = append(out.Entries, toResult(e, false))
		}
		return nil, out, nil
	}
}

// listCommands turns the tool input into the same limit and filter
// commands the command line builds, so both share validation.
func listCommands(input ListEntriesInput) ([]command.Command, error) {
	var cmds []command.Command
	add := func(kind command.Kind, args ...string) error {
		for _, arg := range args {
			c, err := command.New(kind, arg)
			if err != nil {
				return err
			}
			cmds = append(cmds, c)
		}
		return nil
	}

	if input.Between != "" {
		if err := add(command.Between, input.Between); err != nil {
			return nil, err
		}
	}
	if input.In != "" {
		if err := add(command.LimitIn, input.In); err != nil {
			return nil, err
		}
	}
	for _, group := range []struct {
		kind command.Kind
		args []string
	}{
		{command.Year, input.Years},
		{command.Month, input.Months},
		{command.Day, input.Days},
		{command.TagFilter, input.Tags},
		{command.CategoryFilter, input.Categories},
	} {
		if err := add(group.kind, group.args...); err != nil {
			return nil, err
		}
	}
	return cmds, nil
}
