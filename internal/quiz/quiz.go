// Package quiz generates and grades comprehension tests for texts at a
// given referentieniveau: six LLM-generated multiple-choice questions
// plus four fixed open questions with Socratic feedback.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pthm/leesgraad/internal/llm"
)

const (
	maxMCQuestions     = 6
	mcCompletionTokens = 3000
	feedbackTokens     = 300
	feedbackTextLimit  = 1000
)

// openQuestions holds the fixed open-question set per comprehension band.
// Unknown bands fall back to the 2F set.
var openQuestions = map[string][]string{
	"1F": {
		"Waar gaat deze tekst over? Vertel in je eigen woorden.",
		"Welk stukje uit de tekst vond je het leukst of het interessantst? Waarom?",
		"Wat heb je geleerd van deze tekst?",
		"Ken jij iemand of iets dat lijkt op wat in de tekst staat?",
	},
	"2F": {
		"Vat de tekst samen in 2-3 zinnen.",
		"Waarom heeft de schrijver deze tekst geschreven, denk je?",
		"Welk punt van de schrijver vind jij het belangrijkst? Leg uit waarom.",
		"Kun je een voorbeeld uit je eigen leven bedenken dat past bij deze tekst?",
	},
	"3F": {
		"Wat is de hoofdgedachte van deze tekst?",
		"Wat wil de schrijver bereiken met deze tekst?",
		"Ben je het eens met de redenering van de schrijver? Waarom wel of niet?",
		"Hoe zou je de informatie uit deze tekst kunnen gebruiken?",
	},
}

var mcInstructions = map[string]string{
	"1F": "Gebruik eenvoudige taal. Focus op: woordbetekenis, tekstverwijzing (wat betekent 'ze/hij/dit'), letterlijk begrip, volgorde.",
	"2F": "Gemiddelde complexiteit. Focus op: woordbetekenis, expliciet verband, impliciet verband, signaalwoorden, hoofdgedachte.",
	"3F": "Complexere vragen. Focus op: impliciet verband, signaalwoorden, tekststructuur, redenering volgen, samenvatten.",
}

var feedbackTone = map[string]string{
	"1F": "Gebruik eenvoudige, enthousiaste taal voor een kind van 10-11.",
	"2F": "Gebruik toegankelijke, stimulerende taal voor 12-14 jarigen.",
	"3F": "Gebruik volwassen taal, daag uit tot dieper nadenken.",
}

// Fallback feedback strings when the LLM is unavailable or errors.
const (
	feedbackEmpty    = "Je hebt deze vraag nog niet beantwoord. Probeer het - er is geen goed of fout!"
	feedbackFallback = "Bedankt voor je antwoord! Wat vond je zelf het belangrijkste van de tekst?"
)

// MCQuestion is one multiple-choice question.
type MCQuestion struct {
	Question    string            `json:"vraag"`
	Options     map[string]string `json:"opties"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"uitleg"`
}

// Quiz is a generated test for one text.
type Quiz struct {
	Text          string       `json:"tekst"`
	Band          string       `json:"niveau"`
	MCQuestions   []MCQuestion `json:"mc_vragen"`
	OpenQuestions []string     `json:"open_vragen"`
}

// Generator produces quizzes and feedback via an LLM.
type Generator struct {
	client llm.Client
}

// New creates a generator.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate builds a quiz for the text at the given comprehension band:
// up to six multiple-choice questions from the LLM plus the band's fixed
// open questions.
func (g *Generator) Generate(ctx context.Context, text, band string) (*Quiz, error) {
	mc, err := g.generateMC(ctx, text, band)
	if err != nil {
		return nil, err
	}

	open, ok := openQuestions[band]
	if !ok {
		open = openQuestions["2F"]
	}

	return &Quiz{
		Text:          text,
		Band:          band,
		MCQuestions:   mc,
		OpenQuestions: open,
	}, nil
}

func (g *Generator) generateMC(ctx context.Context, text, band string) ([]MCQuestion, error) {
	instruction, ok := mcInstructions[band]
	if !ok {
		instruction = mcInstructions["2F"]
	}

	system := fmt.Sprintf(`Je maakt 6 meerkeuzevragen voor een %s begrijpend lezen toets.

%s

REGELS:
- 4 opties per vraag (A, B, C, D)
- Precies één correct antwoord
- Afleiders zijn plausibel maar fout
- Varieer positie van correcte antwoord
- Antwoord kan uit de tekst gehaald/afgeleid worden

Antwoord ALLEEN met JSON array:
[{"vraag": "...", "opties": {"A": "...", "B": "...", "C": "...", "D": "..."}, "correct": "B", "uitleg": "..."}]`, band, instruction)

	out, err := g.client.Complete(ctx, system, "Tekst:\n\n"+text, mcCompletionTokens)
	if err != nil {
		return nil, fmt.Errorf("vragen genereren mislukt: %w", err)
	}

	var questions []MCQuestion
	if err := json.Unmarshal([]byte(llm.ExtractJSON(out)), &questions); err != nil {
		return nil, fmt.Errorf("ongeldig antwoord van model: %w", err)
	}
	if len(questions) > maxMCQuestions {
		questions = questions[:maxMCQuestions]
	}
	return questions, nil
}

// MCAnswer is one graded multiple-choice answer.
type MCAnswer struct {
	Number      int               `json:"vraagnummer"`
	Question    string            `json:"vraag"`
	Chosen      string            `json:"gekozen"`
	Correct     string            `json:"correct_antwoord"`
	IsCorrect   bool              `json:"is_correct"`
	Explanation string            `json:"uitleg"`
	Options     map[string]string `json:"opties"`
}

// MCResult is the graded multiple-choice section.
type MCResult struct {
	Score      int        `json:"score"`
	MaxScore   int        `json:"max_score"`
	Percentage int        `json:"percentage"`
	Answers    []MCAnswer `json:"resultaten"`
}

// GradeMC grades the multiple-choice questions against the given answers,
// keyed by zero-based question index. Comparison is case-insensitive; a
// missing answer counts as wrong.
func GradeMC(questions []MCQuestion, answers map[int]string) *MCResult {
	res := &MCResult{MaxScore: len(questions)}

	for i, q := range questions {
		chosen := answers[i]
		correct := strings.EqualFold(strings.TrimSpace(chosen), q.Correct) && q.Correct != ""
		if correct {
			res.Score++
		}
		res.Answers = append(res.Answers, MCAnswer{
			Number:      i + 1,
			Question:    q.Question,
			Chosen:      chosen,
			Correct:     q.Correct,
			IsCorrect:   correct,
			Explanation: q.Explanation,
			Options:     q.Options,
		})
	}

	if len(questions) > 0 {
		res.Percentage = int(float64(res.Score)/float64(len(questions))*100 + 0.5)
	}
	return res
}

// OpenFeedback is the feedback for one open question.
type OpenFeedback struct {
	Number   int    `json:"vraagnummer"`
	Question string `json:"vraag"`
	Answer   string `json:"antwoord"`
	Feedback string `json:"feedback"`
}

// Feedback generates Socratic feedback for one open answer: acknowledge,
// appreciate, deepen. An empty answer gets a fixed encouragement; LLM
// failures degrade to a neutral fallback instead of an error.
func (g *Generator) Feedback(ctx context.Context, text, question, answer, band string) string {
	if strings.TrimSpace(answer) == "" {
		return feedbackEmpty
	}

	tone, ok := feedbackTone[band]
	if !ok {
		tone = feedbackTone["2F"]
	}

	system := fmt.Sprintf(`Geef feedback als warme leraar. Structuur:
1. ERKEN wat de leerling zegt
2. WAARDEER de gedachte positief
3. VERDIEP met 1-2 vervolgvragen

NOOIT zeggen dat iets fout/onvolledig is. %s
Maximaal 4 zinnen.`, tone)

	excerpt := text
	if runes := []rune(excerpt); len(runes) > feedbackTextLimit {
		excerpt = string(runes[:feedbackTextLimit])
	}
	prompt := fmt.Sprintf("VRAAG: %s\nANTWOORD: %s\n\nTEKST: %s", question, answer, excerpt)

	out, err := g.client.Complete(ctx, system, prompt, feedbackTokens)
	if err != nil {
		return feedbackFallback
	}
	return strings.TrimSpace(out)
}

// Report is a complete graded quiz.
type Report struct {
	Band         string         `json:"niveau"`
	MC           *MCResult      `json:"mc_resultaat"`
	OpenFeedback []OpenFeedback `json:"open_feedback"`
}

// Grade grades a full quiz: multiple-choice answers keyed by zero-based
// index, open answers likewise.
func (g *Generator) Grade(ctx context.Context, q *Quiz, mcAnswers, openAnswers map[int]string) *Report {
	report := &Report{
		Band: q.Band,
		MC:   GradeMC(q.MCQuestions, mcAnswers),
	}

	for i, question := range q.OpenQuestions {
		answer := openAnswers[i]
		report.OpenFeedback = append(report.OpenFeedback, OpenFeedback{
			Number:   i + 1,
			Question: question,
			Answer:   answer,
			Feedback: g.Feedback(ctx, q.Text, question, answer, q.Band),
		})
	}

	return report
}
