package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keel/internal/types"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <out>",
	Short: "Write a snapshot of the builtin type database",
	Long: `Snapshot encodes a fresh type database, containing only the builtin
classes, into the given file. Useful as a smoke test for the snapshot
tooling and as a baseline for comparisons.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := types.NewDatabase()
		core := db.NewModule("core")
		db.SetMainModule(core)
		for id := types.ClassID(1); id <= types.LastBuiltinClass; id++ {
			core.AddClass(db, id)
		}

		snap, err := types.TakeSnapshot(db)
		if err != nil {
			return err
		}

		out := args[0]
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		f, err := os.Create(out) // #nosec G304 -- path is provided by the caller
		if err != nil {
			return err
		}
		defer f.Close()

		if err := snap.Encode(f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d modules)\n", out, len(snap.Modules))
		return nil
	},
}
