package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/leesgraad/internal/config"
	"github.com/pthm/leesgraad/internal/converter"
	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/llm"
	"github.com/pthm/leesgraad/internal/ui"
)

var (
	convertTarget  string
	convertMinutes int
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Herschrijf een tekst naar een doelniveau",
	Long: `Herschrijf een tekst met een taalmodel naar een AVI-niveau of
referentieniveau. Het resultaat wordt gevalideerd met de scorer.

Vereist ANTHROPIC_API_KEY of een lokale Claude Code CLI.

Examples:
  leesgraad convert --target AVI-E4 verhaal.txt
  leesgraad convert --target AVI-M5 --minutes 2 verhaal.txt
  leesgraad convert --target 2F artikel.md --format json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runConvert,
	SilenceUsage: true,
}

func init() {
	convertCmd.Flags().StringVar(&convertTarget, "target", "", "Target band (required, e.g. AVI-E4 or 2F)")
	convertCmd.Flags().IntVar(&convertMinutes, "minutes", 1, "Reading time in minutes for the word budget (1, 2, 3)")
	_ = convertCmd.MarkFlagRequired("target")
	RootCmd.AddCommand(convertCmd)
}

// convertOutput is the JSON document for a conversion run.
type convertOutput struct {
	FinalText  string   `json:"tekst"`
	Success    bool     `json:"geslaagd"`
	Direction  string   `json:"richting"`
	Target     string   `json:"doelniveau"`
	ProcessLog []string `json:"proces"`
	Problems   []string `json:"problemen,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertMinutes < 1 || convertMinutes > 3 {
		return fmt.Errorf("invalid minutes %d (1, 2, 3)", convertMinutes)
	}

	text, _, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := llm.New(cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}

	u := GetUI()
	conv := converter.New(newScorer(cfg), client)

	progress := u.StartProgress()
	conv.OnStage(func(stage string) {
		switch stage {
		case converter.StageAnalyze:
			progress.SetStage(ui.StageAnalyze)
		case converter.StageGenerate:
			progress.SetStage(ui.StageGenerate)
		case converter.StageValidate:
			progress.SetStage(ui.StageValidate)
		}
	})

	out := convertOutput{Target: convertTarget}
	ctx := cmd.Context()

	switch {
	case level.AVIIndex(convertTarget) >= 0:
		res, err := conv.ConvertAVI(ctx, text, convertTarget, convertMinutes)
		progress.Done(err)
		if err != nil {
			return err
		}
		out.FinalText = res.FinalText
		out.Success = res.Success
		out.Direction = res.Direction
		out.ProcessLog = res.ProcessLog
		out.Problems = res.Problems

	case level.REFIndex(convertTarget) >= 0:
		res, err := conv.ConvertREF(ctx, text, convertTarget)
		progress.Done(err)
		if err != nil {
			return err
		}
		out.FinalText = res.FinalText
		out.Success = res.Success
		out.Direction = res.Direction
		out.ProcessLog = res.ProcessLog
		out.Problems = res.Problems

	default:
		progress.Done(nil)
		return fmt.Errorf("unknown target band %q", convertTarget)
	}

	if u.IsJSON() {
		enc := json.NewEncoder(u.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	s := u.Styles
	if verbose {
		for _, entry := range out.ProcessLog {
			fmt.Fprintln(u.ErrWriter, s.Subheader.Render(entry))
		}
	}
	for _, p := range out.Problems {
		u.Warnf("%s", p)
	}
	if out.Success {
		fmt.Fprintln(u.ErrWriter, s.Success.Render(s.IconSuccess+" Conversie geslaagd"))
	}
	fmt.Fprintln(u.Writer, out.FinalText)
	return nil
}
