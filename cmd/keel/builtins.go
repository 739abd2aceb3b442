package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keel/internal/types"
)

var builtinsFormat string

func init() {
	builtinsCmd.Flags().StringVar(&builtinsFormat, "format", "pretty", "output format (pretty|json)")
}

type builtinPayload struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Tuple bool   `json:"tuple,omitempty"`
}

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List the classes every type database starts with",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := types.NewDatabase()
		out := cmd.OutOrStdout()

		switch strings.ToLower(builtinsFormat) {
		case "json":
			payload := make([]builtinPayload, 0, int(types.LastBuiltinClass))
			for id := types.ClassID(1); id <= types.LastBuiltinClass; id++ {
				payload = append(payload, builtinPayload{
					ID:    uint32(id),
					Name:  id.Name(db),
					Tuple: id.IsTuple(db),
				})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "pretty":
			for id := types.ClassID(1); id <= types.LastBuiltinClass; id++ {
				fmt.Fprintf(out, "%3d  %s\n", id, id.Name(db))
			}
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", builtinsFormat)
		}
	},
}
