package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pthm/leesgraad/internal/config"
	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/llm"
	"github.com/pthm/leesgraad/internal/quiz"
)

var (
	quizLevel string
	quizFile  string
	gradeFile string
)

var quizCmd = &cobra.Command{
	Use:   "quiz [file]",
	Short: "Genereer of beoordeel een begrijpend-lezen toets",
	Long: `Genereer een toets bij een tekst: zes meerkeuzevragen plus vier
open vragen passend bij het referentieniveau. Zonder --level wordt het
niveau van de tekst zelf bepaald.

Met --grade worden ingevulde antwoorden nagekeken tegen een eerder
gegenereerde toets (--quiz). Het antwoordbestand is JSON:
  {"mc": {"0": "A", "1": "C"}, "open": {"0": "..."}}

Examples:
  leesgraad quiz verhaal.txt > toets.json
  leesgraad quiz --level 2F verhaal.txt
  leesgraad quiz --quiz toets.json --grade antwoorden.json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runQuiz,
	SilenceUsage: true,
}

func init() {
	quizCmd.Flags().StringVar(&quizLevel, "level", "", "Comprehension band (1F, 2F, 3F; default: detected)")
	quizCmd.Flags().StringVar(&quizFile, "quiz", "", "Previously generated quiz JSON (for grading)")
	quizCmd.Flags().StringVar(&gradeFile, "grade", "", "Answers JSON to grade")
	RootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := llm.New(cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	gen := quiz.New(client)

	if gradeFile != "" {
		return runQuizGrade(cmd, gen)
	}
	return runQuizGenerate(cmd, args, cfg, gen)
}

func runQuizGenerate(cmd *cobra.Command, args []string, cfg config.Config, gen *quiz.Generator) error {
	text, _, err := readInput(args)
	if err != nil {
		return err
	}

	band := quizLevel
	if band == "" {
		res, ok := newScorer(cfg).REF(text)
		if !ok {
			return fmt.Errorf("tekst te kort om het niveau te bepalen; geef --level op")
		}
		band = res.Band
	} else if level.REFIndex(band) < 0 {
		return fmt.Errorf("unknown level %q (1F, 2F, 3F)", band)
	}

	q, err := gen.Generate(cmd.Context(), text, band)
	if err != nil {
		return err
	}

	u := GetUI()
	if u.IsJSON() || !u.IsInteractive() {
		enc := json.NewEncoder(u.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}

	s := u.Styles
	fmt.Fprintln(u.Writer, s.Header.Render(fmt.Sprintf("Toets (%s)", q.Band)))
	fmt.Fprintln(u.Writer)
	fmt.Fprintln(u.Writer, s.Subheader.Render("Meerkeuzevragen"))
	for i, mc := range q.MCQuestions {
		fmt.Fprintf(u.Writer, "%d. %s\n", i+1, mc.Question)
		keys := make([]string, 0, len(mc.Options))
		for k := range mc.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(u.Writer, "   %s. %s\n", k, mc.Options[k])
		}
	}
	fmt.Fprintln(u.Writer)
	fmt.Fprintln(u.Writer, s.Subheader.Render("Open vragen"))
	for i, oq := range q.OpenQuestions {
		fmt.Fprintf(u.Writer, "%d. %s\n", i+1, oq)
	}
	return nil
}

// answersFile is the on-disk answer format; indexes are zero-based.
type answersFile struct {
	MC   map[string]string `json:"mc"`
	Open map[string]string `json:"open"`
}

func runQuizGrade(cmd *cobra.Command, gen *quiz.Generator) error {
	if quizFile == "" {
		return fmt.Errorf("--grade requires --quiz")
	}

	var q quiz.Quiz
	if err := readJSONFile(quizFile, &q); err != nil {
		return err
	}
	var answers answersFile
	if err := readJSONFile(gradeFile, &answers); err != nil {
		return err
	}

	mcAnswers, err := indexAnswers(answers.MC)
	if err != nil {
		return err
	}
	openAnswers, err := indexAnswers(answers.Open)
	if err != nil {
		return err
	}

	report := gen.Grade(cmd.Context(), &q, mcAnswers, openAnswers)

	u := GetUI()
	if u.IsJSON() {
		enc := json.NewEncoder(u.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	s := u.Styles
	fmt.Fprintln(u.Writer, s.Header.Render(fmt.Sprintf("Resultaat (%s)", report.Band)))
	fmt.Fprintf(u.Writer, "%s %d van %d (%d%%)\n\n",
		s.Label.Render("Score:"), report.MC.Score, report.MC.MaxScore, report.MC.Percentage)

	for _, a := range report.MC.Answers {
		icon := s.Success.Render(s.IconSuccess)
		if !a.IsCorrect {
			icon = s.Error.Render(s.IconError)
		}
		fmt.Fprintf(u.Writer, "%s %d. %s\n", icon, a.Number, a.Question)
		if !a.IsCorrect {
			fmt.Fprintf(u.Writer, "   Gekozen: %s, juist: %s. %s\n", a.Chosen, a.Correct, a.Explanation)
		}
	}

	if len(report.OpenFeedback) > 0 {
		fmt.Fprintln(u.Writer)
		fmt.Fprintln(u.Writer, s.Subheader.Render("Open vragen"))
		for _, f := range report.OpenFeedback {
			fmt.Fprintf(u.Writer, "%d. %s\n", f.Number, f.Question)
			fmt.Fprintf(u.Writer, "   %s\n", f.Feedback)
		}
	}
	return nil
}

func readJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

func indexAnswers(m map[string]string) (map[int]string, error) {
	out := make(map[int]string, len(m))
	for k, v := range m {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("invalid answer index %q", k)
		}
		out[i] = v
	}
	return out, nil
}
