package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/axname/internal/accessibility"
	"github.com/conneroisu/axname/internal/watcher"
)

var (
	watchFlags *OutputFlags
	watchAudit bool
)

var watchCmd = &cobra.Command{
	Use:     "watch [PATH...]",
	Aliases: []string{"w"},
	Short:   "Re-inspect HTML files whenever they change",
	Long: `Watch directories for changes to HTML files and print the accessibility
information of every changed file. Rapid saves are debounced into one run.
Without arguments the configured watch paths are used.

Examples:
  axname watch                       # Watch the configured paths
  axname watch site/ --audit         # Audit instead of inspect
  axname watch site/ --debounce 1s   # Wait longer before re-running`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = AddOutputFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", 0, "Quiet period before changed files are processed (default from config, 300ms)")
	watchCmd.Flags().StringSlice("ext", nil, "File extensions to watch (default .html,.htm)")
	watchCmd.Flags().BoolVar(&watchAudit, "audit", false, "Run the audit instead of inspect on changed files")

	configBindings["watch"]["debounce"] = "watch.debounce"
	configBindings["watch"]["ext"] = "watch.extensions"
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	paths := args
	if len(paths) == 0 {
		paths = appConfig.Watch.Paths
	}

	fw, err := watcher.NewFileWatcher(appConfig.Watch.Debounce, appLogger)
	if err != nil {
		return err
	}
	defer fw.Stop()

	fw.AddFilter(watcher.ExtensionFilter(appConfig.Watch.Extensions...))
	fw.AddFilter(watcher.NoEditorTempFilter)
	fw.IgnoreDirs(appConfig.Watch.Ignore...)

	for _, path := range paths {
		if err := fw.AddRecursive(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	fw.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		return processChanges(ctx, cmd, events)
	})

	if err := fw.Start(ctx); err != nil {
		return err
	}

	appLogger.Info(ctx, "Watching for changes",
		"paths", paths,
		"extensions", appConfig.Watch.Extensions,
		"debounce", appConfig.Watch.Debounce)

	<-ctx.Done()
	appLogger.Info(context.Background(), "Stopping watcher")
	return nil
}

// processChanges re-runs inspect or audit on the changed files that still
// exist.
func processChanges(ctx context.Context, cmd *cobra.Command, events []watcher.ChangeEvent) error {
	var files []string
	for _, event := range events {
		if event.Type == watcher.EventTypeDeleted || event.Type == watcher.EventTypeRenamed {
			appLogger.Debug(ctx, "File removed", "path", event.Path)
			continue
		}
		files = append(files, event.Path)
	}
	if len(files) == 0 {
		return nil
	}

	inspector := newInspector()
	return forEachDocument(ctx, cmd, files, func(doc document) error {
		if watchAudit {
			report, err := inspector.Audit(ctx, doc.Content, auditConfigurationFromConfig())
			if err != nil {
				return err
			}
			report.Target = doc.Name
			if watchFlags.Quiet {
				return nil
			}
			return outputReports(cmd.OutOrStdout(), []*accessibility.AccessibilityReport{report})
		}

		snapshot, err := inspector.Inspect(ctx, doc.Content, inspectOptionsFromConfig())
		if err != nil {
			return err
		}
		snapshot.Target = doc.Name
		snapshot.Entries = withRole(snapshot.Entries)
		if watchFlags.Quiet {
			return nil
		}
		w := cmd.OutOrStdout()
		if handled, err := writeStructured(w, appConfig.Inspect.Format, snapshot); handled {
			return err
		}
		fmt.Fprintf(w, "==> %s <==\n", snapshot.Target)
		return writeEntriesTable(w, snapshot.Entries, false)
	})
}
