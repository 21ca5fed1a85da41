package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// FinancialSummary is the structured input for insight generation: headline
// totals plus the top spending categories, with the user's display symbol.
type FinancialSummary struct {
	TotalIncome    float64         `json:"total_income"`
	TotalExpenses  float64         `json:"total_expenses"`
	TopCategories  []CategoryTotal `json:"top_categories"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// Insights is the model's structured output: a short list of tips and a
// one-to-two sentence overall assessment.
type Insights struct {
	Insights          []string `json:"insights"`
	OverallAssessment string   `json:"overall_assessment"`
}

// modelCaller is the slice of the genai client the generator needs.
// *genai.Models satisfies it; tests substitute a stub.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator produces financial insights from a summary using Gemini.
type Generator struct {
	model  string
	caller modelCaller
}

// NewGenerator creates a Generator backed by a real genai client.
// Credentials come from the environment (GEMINI_API_KEY or ADC).
func NewGenerator(ctx context.Context, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{model: model, caller: client.Models}, nil
}

// Generate asks the model for insights on the given summary. The model is
// instructed to return strict JSON; the response is fence-cleaned before
// unmarshalling. An empty or malformed response is an error — callers surface
// it as a transient failure with a manual retry, no backoff.
func (g *Generator) Generate(ctx context.Context, summary FinancialSummary) (*Insights, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildInsightPrompt(summary)},
			},
		},
	}

	resp, err := g.caller.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	clean := cleanModelJSON(rawText)

	var out Insights
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("unmarshal insights JSON: %w\nraw response: %s", err, rawText)
	}
	if len(out.Insights) == 0 || out.OverallAssessment == "" {
		return nil, fmt.Errorf("incomplete insights in model response")
	}
	return &out, nil
}

func buildInsightPrompt(s FinancialSummary) string {
	var b strings.Builder
	b.WriteString("You are a friendly financial assistant. Based on the following summary, " +
		"provide a brief overall assessment (1-2 sentences) and 2-4 concise, actionable " +
		"financial insights or tips. Focus on general advice. Use the provided currency symbol: " +
		s.CurrencySymbol + ".\n\n")

	b.WriteString("Transaction Summary:\n")
	fmt.Fprintf(&b, "- Total Income: %s%.2f\n", s.CurrencySymbol, s.TotalIncome)
	fmt.Fprintf(&b, "- Total Expenses: %s%.2f\n", s.CurrencySymbol, s.TotalExpenses)
	b.WriteString("- Top Spending Categories:\n")
	for _, c := range s.TopCategories {
		fmt.Fprintf(&b, "  - %s: %s%.2f\n", c.Name, s.CurrencySymbol, c.Amount)
	}

	b.WriteString("\nOutput STRICT JSON only (no comments, no extra text) with this shape:\n" +
		`{"insights": ["tip 1", "tip 2"], "overall_assessment": "one or two sentences"}` + "\n" +
		"Do NOT wrap the response in code fences.\n" +
		"Do NOT use ```json or any Markdown.\n" +
		"Output must begin with \"{\" and end with \"}\".\n")

	return b.String()
}

// cleanModelJSON strips Markdown fences and surrounding junk if the model
// ignored the strict-JSON instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Extra safety: keep only from the first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
