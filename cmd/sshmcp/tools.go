package main

import (
	"fmt"
	"slices"
	"sort"

	"github.com/ruffel/sshmcp/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools and their parameters",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(titleStyle.Render("🧰 SSH MCP Server tools"))

			for _, tool := range mcpserver.New(nil).Tools() {
				fmt.Println(toolStyle.Render(tool.Tool.Name))
				fmt.Println(infoStyle.Render(tool.Tool.Description))

				props := tool.Tool.InputSchema.Properties

				names := make([]string, 0, len(props))
				for name := range props {
					names = append(names, name)
				}

				sort.Strings(names)

				for _, name := range names {
					line := "• " + name
					if prop, ok := props[name].(map[string]any); ok {
						line += fmt.Sprintf(" (%v)", prop["type"])
					}

					if slices.Contains(tool.Tool.InputSchema.Required, name) {
						line += " " + requiredStyle.Render("required")
					}

					fmt.Println(infoStyle.Render(line))
				}
			}

			return nil
		},
	}
}
