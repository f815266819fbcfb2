package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minhtran/lingo/internal/app"
	"github.com/minhtran/lingo/internal/config"
	"github.com/minhtran/lingo/internal/logging"
	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/speech"
	"github.com/minhtran/lingo/internal/storage"
)

// runApp loads config, opens storage, builds dependencies, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Dir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	log := logging.New(cfg.Log.File, cfg.Log.Level, filepath.Dir(dbPath))
	defer log.Sync()

	st, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	var speaker speech.Speaker = speech.Noop{}
	if cfg.Speech.Enabled {
		speaker = speech.NewCommand(cfg.Speech.Command, log)
	}

	opts := app.Options{
		Progress:   progress.NewStore(st.KV(), log),
		Results:    st.GameResults(),
		Log:        log,
		Speaker:    speaker,
		SpeechLang: cfg.Speech.Lang,
	}

	return app.Run(opts)
}
