package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joaovmb/trilha/internal/app"
	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
	"github.com/joaovmb/trilha/internal/store"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Abrir o app de estudo (mesmo que rodar sem subcomando)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the catalog and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file unavailable:", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	cat, err := buildCatalog(logger)
	if err != nil {
		return err
	}

	learner := st.LearnerRepo()
	return app.Run(app.Options{
		Catalog:  cat,
		Reporter: progress.NewReporter(learner, logger),
		Learner:  learner,
		Sessions: st.SessionRepo(),
		Logger:   logger,
	})
}

// newLogger writes structured logs to the file named by TRILHA_LOG.
// Stdout belongs to the TUI, so without the variable logging is off.
func newLogger() (*zap.Logger, error) {
	path := os.Getenv("TRILHA_LOG")
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// buildCatalog starts from the embedded seed trails and merges any JSON
// content found under TRILHA_CONTENT_DIR.
func buildCatalog(logger *zap.Logger) (*catalog.Catalog, error) {
	cat := catalog.Seed()

	dir := os.Getenv("TRILHA_CONTENT_DIR")
	if dir == "" {
		return cat, nil
	}
	extra, err := catalog.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load content dir %s: %w", dir, err)
	}
	merged, err := cat.Merge(extra)
	if err != nil {
		return nil, fmt.Errorf("merge content dir %s: %w", dir, err)
	}
	logger.Info("loaded external content",
		zap.String("dir", dir),
		zap.Int("items", len(extra)))
	return merged, nil
}
