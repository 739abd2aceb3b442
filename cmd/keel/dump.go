package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"keel/internal/diag"
	"keel/internal/diagfmt"
	"keel/internal/project"
	"keel/internal/source"
	"keel/internal/types"
)

var dumpFormat string

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "pretty", "output format (pretty|json)")
}

var dumpCmd = &cobra.Command{
	Use:   "dump [snapshot...]",
	Short: "Inspect type snapshots",
	Long: `Dump decodes one or more type snapshots and prints their module,
class, trait and method inventory. Without arguments the snapshot of the
enclosing keel project is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			m, err := project.Load(".")
			if err != nil {
				return err
			}
			paths = []string{m.SnapshotPath()}
		}

		snaps, bag := decodeSnapshots(paths)
		if bag.Len() > 0 {
			bag.Sort()
			diagfmt.Pretty(cmd.ErrOrStderr(), bag, source.NewFileSet(), diagfmt.PrettyOpts{
				Color: colorEnabled(cmd, os.Stderr),
			})
		}

		out := cmd.OutOrStdout()
		for i, snap := range snaps {
			if snap == nil {
				continue
			}
			if err := renderSnapshot(out, paths[i], snap); err != nil {
				return err
			}
		}
		if bag.HasErrors() {
			return fmt.Errorf("%d snapshot(s) could not be decoded", bag.Len())
		}
		return nil
	},
}

// decodeSnapshots reads all snapshot files concurrently. Failures become
// diagnostics instead of aborting the whole dump.
func decodeSnapshots(paths []string) ([]*types.Snapshot, *diag.Bag) {
	snaps := make([]*types.Snapshot, len(paths))
	bag := diag.NewBag(len(paths))

	var mu sync.Mutex
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path) // #nosec G304 -- path is provided by the caller
			if err != nil {
				mu.Lock()
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, err.Error()))
				mu.Unlock()
				return nil
			}
			defer f.Close()

			snap, err := types.DecodeSnapshot(f)
			if err != nil {
				mu.Lock()
				bag.Add(diag.NewError(diag.ProjSnapshotInvalid, source.Span{},
					fmt.Sprintf("%s: %v", path, err)))
				mu.Unlock()
				return nil
			}
			snaps[i] = snap
			return nil
		})
	}
	// The workers never return errors; they report through the bag.
	_ = g.Wait()
	return snaps, bag
}

func renderSnapshot(out io.Writer, path string, snap *types.Snapshot) error {
	if strings.ToLower(dumpFormat) == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	fmt.Fprintf(out, "# %s (schema %d)\n", path, snap.Schema)
	if snap.Main != "" {
		fmt.Fprintf(out, "main module: %s\n", snap.Main)
	}
	for _, mod := range snap.Modules {
		fmt.Fprintf(out, "\nmodule %s\n", mod.Name)
		for _, c := range mod.Classes {
			kind := "class"
			if c.Enum {
				kind = "enum class"
			}
			fmt.Fprintf(out, "  %s %s%s\n", kind, c.Name, formatParams(c.TypeParameters))
			for _, f := range c.Fields {
				fmt.Fprintf(out, "    %s: %s\n", f.Name, f.Type)
			}
			for _, v := range c.Variants {
				fmt.Fprintf(out, "    case %s(%s)\n", v.Name, strings.Join(v.Members, ", "))
			}
			for _, m := range c.Methods {
				fmt.Fprintf(out, "    %s\n", m.Signature)
			}
		}
		for _, tr := range mod.Traits {
			fmt.Fprintf(out, "  trait %s%s\n", tr.Name, formatParams(tr.TypeParameters))
			for _, m := range tr.Methods {
				fmt.Fprintf(out, "    %s\n", m.Signature)
			}
		}
		for _, m := range mod.Methods {
			fmt.Fprintf(out, "  %s\n", m.Signature)
		}
	}
	return nil
}

func formatParams(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + strings.Join(params, ", ") + "]"
}
