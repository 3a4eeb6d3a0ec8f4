package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tonica/internal/bootstrap"
	catalogdto "tonica/internal/modules/catalog/dto"
	"tonica/internal/platform/config"
	apperrors "tonica/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "tonica",
		Short:         "Piano practice companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newContentCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newAuthorCmd(&dataDir))
	root.AddCommand(newPackCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tonica"
	}
	return filepath.Join(home, ".tonica")
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// loadAppWithCatalog wires the app and loads the catalog, tolerating a
// missing content file: commands then operate on an empty catalog.
func loadAppWithCatalog(dataDir string) (*bootstrap.App, error) {
	app, err := loadApp(dataDir)
	if err != nil {
		return nil, err
	}
	if err := app.CatalogCLI.Load(context.Background()); err != nil && !errors.Is(err, apperrors.ErrContentUnavailable) {
		return nil, err
	}
	return app, nil
}

// readInput reads a content payload from a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run tonica terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			// A missing or broken content file must not block the UI: the
			// catalog simply starts empty and can be reloaded later.
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newContentCmd(dataDir *string) *cobra.Command {
	content := &cobra.Command{Use: "content", Short: "Content catalog operations"}

	content.AddCommand(&cobra.Command{
		Use:   "load",
		Short: "Load and validate the configured content file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.Load(context.Background()); err != nil {
				return err
			}
			snapshot, err := app.CatalogCLI.Snapshot(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "loaded: %d tracks, %d lessons, %d missions, %d articles\n",
				len(snapshot.Tracks), len(snapshot.Lessons), len(snapshot.Missions), len(snapshot.Library))
			return nil
		},
	})

	content.AddCommand(&cobra.Command{
		Use:   "validate <file|->",
		Short: "Validate a content batch without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.ValidateText(context.Background(), text)
			if err != nil {
				return err
			}
			printFindings(cmd, out.Errors, out.Warnings)
			if !out.OK {
				return fmt.Errorf("validation failed with %d error(s)", len(out.Errors))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	})

	content.AddCommand(&cobra.Command{
		Use:   "import <file|->",
		Short: "Validate and merge a content batch into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.ImportText(context.Background(), text)
			if err != nil {
				return err
			}
			printFindings(cmd, out.Errors, out.Warnings)
			if !out.OK {
				return fmt.Errorf("import rejected with %d error(s)", len(out.Errors))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported: %d inserted, %d ignored\n", out.Inserted, out.Ignored)
			for _, ref := range out.MissingRefs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "warning: track %s references missing lesson %s\n", ref.TrackID, ref.LessonID)
			}
			return nil
		},
	})

	var listType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			snapshot, err := app.CatalogCLI.Snapshot(context.Background())
			if err != nil {
				return err
			}
			groups := []struct {
				kind  string
				items []catalogdto.ItemOutput
			}{
				{"track", snapshot.Tracks},
				{"lesson", snapshot.Lessons},
				{"mission", snapshot.Missions},
				{"library", snapshot.Library},
			}
			for _, group := range groups {
				if listType != "" && listType != group.kind {
					continue
				}
				for _, item := range group.items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", item.ID, group.kind, item.Title)
				}
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&listType, "type", "", "filter by type: track|lesson|mission|library")
	content.AddCommand(listCmd)

	content.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			item, err := app.CatalogCLI.GetItem(context.Background(), args[0])
			if err != nil {
				return err
			}
			printItem(cmd, item)
			return nil
		},
	})

	content.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from the in-memory catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	})

	return content
}

func printFindings(cmd *cobra.Command, errors, warnings []string) {
	for _, e := range errors {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", e)
	}
	for _, w := range warnings {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
	}
}

func printItem(cmd *cobra.Command, item catalogdto.ItemOutput) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "id:      %s\ntype:    %s\ntitle:   %s\n", item.ID, item.Type, item.Title)
	if item.Subtitle != "" {
		_, _ = fmt.Fprintf(out, "subtitle: %s\n", item.Subtitle)
	}
	if item.Category != "" {
		_, _ = fmt.Fprintf(out, "category: %s\n", item.Category)
	}
	if item.Level != "" {
		_, _ = fmt.Fprintf(out, "level:   %s\n", item.Level)
	}
	switch item.Type {
	case "track":
		if item.Order != nil {
			_, _ = fmt.Fprintf(out, "order:   %g\n", *item.Order)
		}
		_, _ = fmt.Fprintf(out, "lessons: %s\n", strings.Join(item.LessonIDs, ", "))
	case "lesson":
		_, _ = fmt.Fprintf(out, "xp:      %d\n", item.XP)
		if item.EstimatedMinutes > 0 {
			_, _ = fmt.Fprintf(out, "minutes: %d\n", item.EstimatedMinutes)
		}
		for i, entry := range item.Checklist {
			_, _ = fmt.Fprintf(out, "check %d: %s\n", i+1, entry)
		}
	case "mission":
		_, _ = fmt.Fprintf(out, "xp:      %d\nrepeat:  %s\n", item.XP, item.Repeat)
	case "library":
		if item.ReadingMinutes > 0 {
			_, _ = fmt.Fprintf(out, "minutes: %d\n", item.ReadingMinutes)
		}
		if item.Body != "" {
			_, _ = fmt.Fprintf(out, "\n%s\n", item.Body)
		}
	}
}

func newProgressCmd(dataDir *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Learner progress operations"}

	// Every progress command needs the catalog loaded: completion joins
	// learner state with item metadata. Missing content degrades to an
	// empty catalog instead of blocking.
	withApp := func(run func(cmd *cobra.Command, app *bootstrap.App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			return run(cmd, app, args)
		}
	}

	progress.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show the derived home summary",
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			out, err := app.ProgressCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s (objetivo: %s)\n", out.ProfileName, out.Goal)
			_, _ = fmt.Fprintf(w, "level %d  %d xp (range %d-%d, %.0f%%)\n", out.Level, out.XP, out.LevelMin, out.LevelMax, out.LevelPercent)
			_, _ = fmt.Fprintf(w, "lessons %d/%d (%.0f%%)\n", out.Lessons.Done, out.Lessons.Total, out.Lessons.Percent)
			if out.NextLesson != nil {
				_, _ = fmt.Fprintf(w, "next lesson: %s (%s)\n", out.NextLesson.Title, out.NextLesson.ID)
			}
			if out.MissionOfDay != nil {
				done := "open"
				if out.MissionOfDay.DoneToday {
					done = "done"
				}
				_, _ = fmt.Fprintf(w, "mission of the day: %s +%dxp [%s]\n", out.MissionOfDay.Title, out.MissionOfDay.XP, done)
			}
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "complete-lesson <id>",
		Short: "Mark a lesson done and award its xp",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			out, err := app.ProgressCLI.CompleteLesson(context.Background(), args[0])
			if err != nil {
				return err
			}
			if out.AlreadyDone {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already done (total %d xp)\n", out.ID, out.TotalXP)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s done: +%d xp (total %d)\n", out.ID, out.XPAwarded, out.TotalXP)
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "complete-mission <id>",
		Short: "Mark a mission done for today and award its xp",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			out, err := app.ProgressCLI.CompleteMission(context.Background(), args[0])
			if err != nil {
				return err
			}
			if out.AlreadyDone {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already done (total %d xp)\n", out.ID, out.TotalXP)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s done: +%d xp (total %d)\n", out.ID, out.XPAwarded, out.TotalXP)
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "lessons",
		Short: "List lessons in study order with done flags",
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			lessons, err := app.ProgressCLI.Lessons(context.Background())
			if err != nil {
				return err
			}
			for _, l := range lessons {
				mark := " "
				if l.Done {
					mark = "x"
				}
				track := l.TrackTitle
				if track == "" {
					track = "-"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%s\t+%dxp\t%s\n", mark, l.ID, l.Title, l.XP, track)
			}
			return nil
		}),
	})

	var checkIndex int
	var checkValue bool
	checklistCmd := &cobra.Command{
		Use:   "checklist <lesson-id>",
		Short: "Show or toggle a lesson checklist",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			if cmd.Flags().Changed("set") {
				if err := app.ProgressCLI.SetChecklistItem(context.Background(), args[0], checkIndex-1, checkValue); err != nil {
					return err
				}
			}
			item, err := app.CatalogCLI.GetItem(context.Background(), args[0])
			if err != nil {
				return err
			}
			checked, err := app.ProgressCLI.GetChecklist(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(item.Checklist) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no checklist")
				return nil
			}
			for i, label := range item.Checklist {
				mark := " "
				if checked[i] {
					mark = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d. %s\n", mark, i+1, label)
			}
			return nil
		}),
	}
	checklistCmd.Flags().IntVar(&checkIndex, "set", 0, "1-based checklist index to toggle")
	checklistCmd.Flags().BoolVar(&checkValue, "checked", true, "value to set for --set")
	progress.AddCommand(checklistCmd)

	progress.AddCommand(&cobra.Command{
		Use:   "tracks",
		Short: "Show per-track completion",
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			stats, err := app.ProgressCLI.TrackStats(context.Background())
			if err != nil {
				return err
			}
			for _, s := range stats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/%d (%.0f%%)\n", s.TrackID, s.Title, s.Done, s.Total, s.Percent)
			}
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "missions",
		Short: "List missions with today's done flags",
		RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			missions, err := app.ProgressCLI.Missions(context.Background())
			if err != nil {
				return err
			}
			for _, m := range missions {
				mark := " "
				if m.Done {
					mark = "x"
				}
				repeat := m.Repeat
				if repeat == "" {
					repeat = "daily"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%s\t+%dxp\t%s\n", mark, m.ID, m.Title, m.XP, repeat)
			}
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "profile",
		Short: "Show the learner profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ProgressCLI.Profile(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "name:  %s\ngoal:  %s\nlevel: %d\nxp:    %d\n", out.Name, out.Goal, out.Level, out.XP)
			if out.LastOpen != "" {
				_, _ = fmt.Fprintf(w, "seen:  %s\n", out.LastOpen)
			}
			return nil
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "set-name <name>",
		Short: "Set the profile name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.SetProfileName(context.Background(), strings.Join(args, " ")); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "name updated")
			return nil
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "set-goal <Popular|Erudito|Misto>",
		Short: "Set the study goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.SetGoal(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "goal updated")
			return nil
		},
	})

	var confirm bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all learner progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("--confirm is required: this wipes xp, done flags and checklists")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.ResetAll(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the wipe")
	progress.AddCommand(resetCmd)

	return progress
}

func newAuthorCmd(dataDir *string) *cobra.Command {
	author := &cobra.Command{Use: "author", Short: "Authoring buffer operations"}

	author.AddCommand(&cobra.Command{
		Use:   "add <file|->",
		Short: "Validate a single item and stage it in the buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := app.AuthorCLI.Add(context.Background(), text)
			if err != nil {
				return err
			}
			if !out.OK {
				for _, reason := range out.Reasons {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", reason)
				}
				return fmt.Errorf("item rejected")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "staged %s (%s) %s\n", out.ID, out.Type, out.Title)
			return nil
		},
	})

	author.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List staged items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			items, err := app.AuthorCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "buffer is empty")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", item.ID, item.Type, item.Title)
			}
			return nil
		},
	})

	author.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Print the staged batch as importable JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			text, err := app.AuthorCLI.ExportText(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(text))
			return nil
		},
	})

	author.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the authoring buffer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.AuthorCLI.Clear(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "buffer cleared")
			return nil
		},
	})

	var idType, idCategory string
	suggestCmd := &cobra.Command{
		Use:   "suggest-id --type <type>",
		Short: "Suggest an id following the catalog scheme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(idType) == "" {
				return fmt.Errorf("--type is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			suggested, err := app.AuthorCLI.SuggestID(context.Background(), idType, idCategory)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), suggested)
			return nil
		},
	}
	suggestCmd.Flags().StringVar(&idType, "type", "", "item type: track|lesson|mission|library")
	suggestCmd.Flags().StringVar(&idCategory, "category", "", "category: Popular|Erudito (optional)")
	author.AddCommand(suggestCmd)

	return author
}

func newPackCmd(dataDir *string) *cobra.Command {
	pack := &cobra.Command{Use: "pack", Short: "Content pack operations"}

	pack.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pack manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			packs, err := app.PackCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(packs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no packs configured")
				return nil
			}
			sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
			for _, p := range packs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s\n", p.Name, p.Version, p.Enabled, p.Binary)
			}
			return nil
		},
	})

	pack.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate pack checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			results, err := app.PackCLI.Check(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no packs configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	pack.AddCommand(&cobra.Command{
		Use:   "metadata <name>",
		Short: "Show a pack's advertised metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			meta, err := app.PackCLI.Metadata(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s items=%d\n", meta.Name, meta.Version, meta.ItemCount)
			return nil
		},
	})

	pack.AddCommand(&cobra.Command{
		Use:   "pull <name>",
		Short: "Fetch a pack's items and import them into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppWithCatalog(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.PackCLI.Pull(context.Background(), args[0])
			if err != nil {
				return err
			}
			printFindings(cmd, out.Import.Errors, out.Import.Warnings)
			if !out.Import.OK {
				return fmt.Errorf("pack payload rejected with %d error(s)", len(out.Import.Errors))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pulled %s: %d inserted, %d ignored\n", out.Pack, out.Import.Inserted, out.Import.Ignored)
			return nil
		},
	})

	return pack
}
