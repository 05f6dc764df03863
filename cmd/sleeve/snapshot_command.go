package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-sleeve/engine"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
)

// settleFrames is how many frames the snapshot command runs so that decoded artwork and the backdrop derived from it
// are applied before capture.
const settleFrames = 3

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	var out string
	var width, height int

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the saved sleeve configuration to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			prov, err := ctx.newProvisioner(logger)
			if err != nil {
				return err
			}
			store, closeStore, err := ctx.openStore(prov, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			if width <= 0 {
				width = cfg.Snapshot.Width
			}
			if height <= 0 {
				height = cfg.Snapshot.Height
			}

			options := append(engineOptions(cfg.Config, logger),
				engine.WithExecutor(mailbox.ExecutorFunc(func(job func()) { job() })),
				engine.WithSnapshotSize(width, height),
			)
			e := engine.NewEngine(store, prov, options...)
			defer e.Release()

			if err := e.Start(); err != nil {
				return err
			}
			for range settleFrames {
				e.Frame(0)
			}

			path, err := e.Snapshot(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote snapshot to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file (.png or .webp); defaults to a timestamped file in snapshot.dir")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (defaults to snapshot.width)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (defaults to snapshot.height)")
	return cmd
}
