package cli

import (
	"fmt"

	"github.com/arthur-debert/gestures/pkg/codec"
	"github.com/arthur-debert/gestures/pkg/config"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/library"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/store"
	"github.com/arthur-debert/gestures/pkg/types"
	"github.com/spf13/cobra"
)

func newInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: MsgInfoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := rt.openLibrary()
			if err != nil {
				return err
			}

			total := 0
			for _, name := range lib.Entries() {
				total += len(lib.Gestures(name))
			}

			s := newStyler(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s %s\n", s.render(labelStyle, "Library:  "), lib.Location())
			_, _ = fmt.Fprintf(out, "%s %s\n", s.render(labelStyle, "Codec:    "), rt.cfg.Library.Codec)
			_, _ = fmt.Fprintf(out, "%s %t\n", s.render(labelStyle, "Read-only:"), lib.IsReadOnly())
			_, _ = fmt.Fprintf(out, "%s %d\n", s.render(labelStyle, "Entries:  "), len(lib.Entries()))
			_, _ = fmt.Fprintf(out, "%s %d\n", s.render(labelStyle, "Gestures: "), total)
			return nil
		},
	}
}

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := rt.openLibrary()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			entries := lib.Entries()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, MsgNoEntries)
				return nil
			}

			s := newStyler(out)
			_, _ = fmt.Fprintln(out, s.render(headerStyle, "Entries"))
			for _, name := range entries {
				gestures := lib.Gestures(name)
				ids := make([]int64, len(gestures))
				for i, g := range gestures {
					ids[i] = g.ID
				}
				_, _ = fmt.Fprintf(out, "  %s %s\n",
					s.render(entryStyle, name),
					s.render(countStyle, fmt.Sprintf("(%d) ids=%v", len(gestures), ids)))
			}
			return nil
		},
	}
}

func newAddCmd(rt *runtime) *cobra.Command {
	var (
		strokes []string
		id      int64
	)

	cmd := &cobra.Command{
		Use:     "add NAME",
		Short:   MsgAddShort,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGesture(id, strokes)
			if err != nil {
				return err
			}

			lib, err := rt.openLibrary()
			if err != nil {
				return err
			}
			added, err := lib.AddGesture(args[0], g)
			if err != nil {
				return err
			}
			if err := lib.TrySave(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgAddedFormat, added.ID, args[0])
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&strokes, "stroke", "s", nil, `Stroke points as "x,y x,y ..." (repeatable)`)
	cmd.Flags().Int64Var(&id, "id", 0, "Gesture id (0 assigns the next free id)")
	return cmd
}

func newRemoveCmd(rt *runtime) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: MsgRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := rt.openLibrary()
			if err != nil {
				return err
			}

			name := args[0]
			byID := cmd.Flags().Changed("id")
			var removed bool
			if byID {
				removed = lib.RemoveGesture(name, id)
			} else {
				removed = lib.RemoveEntry(name)
			}
			if !removed {
				details := map[string]interface{}{"entry": name}
				if byID {
					details["id"] = id
				}
				return errors.Newf(errors.ErrNotFound, "nothing to remove for %q", name).
					WithDetails(details)
			}

			if err := lib.TrySave(); err != nil {
				return err
			}

			if byID {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgRemovedGesture, id, name)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgRemovedEntry, name)
			}
			return nil
		},
	}
	cmd.ValidArgsFunction = rt.entryCompletion
	cmd.Flags().Int64Var(&id, "id", 0, "Remove only the gesture with this id")
	return cmd
}

func newExportCmd(rt *runtime) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := rt.openLibrary()
			if err != nil {
				return err
			}

			c, err := codec.Get(format)
			if err != nil {
				return err
			}

			if out == "" {
				dst := store.New(store.WithCodec(c))
				if _, _, err := copyGestures(src.Store(), dst); err != nil {
					return err
				}
				return dst.Save(cmd.OutOrStdout())
			}

			opts, err := rt.libraryOptions(format)
			if err != nil {
				return err
			}
			target, err := rt.paths.NormalizePath(out)
			if err != nil {
				return err
			}
			dst := library.FromFile(target, opts...)
			if _, _, err := copyGestures(src.Store(), dst.Store()); err != nil {
				return err
			}
			if err := dst.TrySave(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgExportedFormat, len(dst.Entries()), dst.Location())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(rt *runtime) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: MsgImportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.import")

			lib, err := rt.openLibrary()
			if err != nil {
				return err
			}

			opts, err := rt.libraryOptions(format)
			if err != nil {
				return err
			}
			srcPath, err := rt.paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			src := library.FromFile(srcPath, opts...)
			if err := src.TryLoad(); err != nil {
				return err
			}

			added, skipped, err := copyGestures(src.Store(), lib.Store())
			if err != nil {
				return err
			}
			logger.Info().Int("added", added).Int("skipped", skipped).Str("source", srcPath).Msg("Imported gestures")

			if err := lib.TrySave(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgImportedFormat, added, skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Format of FILE (default: the configured codec)")
	return cmd
}

// copyGestures adds every gesture of src to dst. Gestures whose id already
// exists under the same entry in dst are skipped.
func copyGestures(src, dst types.GestureStore) (added, skipped int, err error) {
	for _, name := range src.Entries() {
		for _, g := range src.Gestures(name) {
			if _, err := dst.AddGesture(name, g); err != nil {
				if errors.IsErrorCode(err, errors.ErrEntryInvalid) {
					skipped++
					continue
				}
				return added, skipped, err
			}
			added++
		}
	}
	return added, skipped, nil
}

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Render(rt.paths, rt.overrides(cmd))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: MsgConfigDefShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.Defaults())
			return err
		},
	})

	return cmd
}
