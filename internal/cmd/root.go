package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/leesgraad/internal/config"
	"github.com/pthm/leesgraad/internal/lexicon"
	"github.com/pthm/leesgraad/internal/score"
	"github.com/pthm/leesgraad/internal/ui"
)

var (
	// Global flags
	verbose bool
	format  string
)

var RootCmd = &cobra.Command{
	Use:   "leesgraad",
	Short: "Leesbaarheidsanalyse voor Nederlandse teksten",
	Long: `leesgraad analyseert Nederlandse teksten op leesbaarheid: het
technisch leesniveau (AVI) en het begrijpend leesniveau (1F/2F/3F).

Naast analyse kan het teksten met een taalmodel herschrijven naar een
doelniveau en begrijpend-lezen toetsen genereren en nakijken.`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
}

// GetUI creates the UI for the current invocation.
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format)
}

// newScorer builds a scorer with the configured frequency lexicon.
func newScorer(cfg config.Config) *score.Scorer {
	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		lex = lexicon.LoadFile(cfg.LexiconPath)
	}
	return score.New(lex)
}
