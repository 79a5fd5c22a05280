package service

import (
	"fmt"
	"strings"

	"github.com/akshajravi/Intervue/internal/domain"
	"github.com/akshajravi/Intervue/internal/llm"
)

// The problem-context turn quotes at most this many examples; the system
// prompt references only the first.
const maxPromptExamples = 2

// buildPrompt assembles the full prompt sequence: the system
// instruction, the prior conversation with roles mapped, the new user
// turn, and optional problem-context and code turns.
func buildPrompt(session *domain.Session, userMessage string, questionContext *domain.QuestionContext, codeContext string) []llm.ChatMessage {
	prompt := []llm.ChatMessage{
		{Role: llm.RoleSystem, Content: buildSystemPrompt(session.Context, questionContext)},
	}

	for _, msg := range session.Messages {
		role := llm.RoleAssistant
		if msg.Type == domain.MessageTypeUser {
			role = llm.RoleUser
		}
		prompt = append(prompt, llm.ChatMessage{Role: role, Content: msg.Content})
	}

	prompt = append(prompt, llm.ChatMessage{Role: llm.RoleUser, Content: userMessage})

	if questionContext != nil {
		if details := buildProblemContext(questionContext); details != "" {
			prompt = append(prompt, llm.ChatMessage{Role: llm.RoleUser, Content: details})
		}
	}

	if codeContext != "" {
		prompt = append(prompt, llm.ChatMessage{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Current code I'm working on:\n```%s\n%s\n```", session.Context.ProgrammingLanguage, codeContext),
		})
	}

	return prompt
}

// buildSystemPrompt synthesizes the interviewer instruction from the
// session context, enriched with problem details when a question context
// accompanies the request. Only the first example is quoted here; the
// rest travel in the separate problem-context turn.
func buildSystemPrompt(ctx domain.Context, questionContext *domain.QuestionContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an experienced technical interviewer conducting a mock interview.

Current context:
- Question %d of %d
- Programming language: %s
- Interview type: %s`,
		ctx.QuestionNumber, ctx.TotalQuestions, ctx.ProgrammingLanguage, ctx.InterviewType)

	if questionContext != nil {
		fmt.Fprintf(&b, "\n\nCurrent Problem: %s (%s)", questionContext.Title, questionContext.Difficulty)

		if questionContext.Category != "" {
			fmt.Fprintf(&b, "\n- Category: %s", questionContext.Category)
		}

		if len(questionContext.Examples) > 0 {
			fmt.Fprintf(&b, "\n- Examples available: %d test cases", len(questionContext.Examples))
			first := questionContext.Examples[0]
			fmt.Fprintf(&b, "\n- Sample: Input %s → Output %s", first.Input, first.Output)
		}

		if len(questionContext.Constraints) > 0 {
			fmt.Fprintf(&b, "\n- Key constraints: %d requirements to consider", len(questionContext.Constraints))
		}

		if len(questionContext.Hints) > 0 {
			fmt.Fprintf(&b, "\n- Available hints: %d strategic hints (use sparingly when stuck)", len(questionContext.Hints))
		}
	}

	b.WriteString(`

Your role:
1. Ask clarifying questions about the problem
2. Guide the candidate through their thought process
3. Reference specific examples and constraints when relevant
4. Provide hints if they're stuck (but don't give away the solution)
5. Comment on their approach and suggest improvements
6. Ask about time/space complexity
7. Be encouraging but honest about their performance

Communication style:
- Be conversational and supportive
- Ask one question at a time
- Keep responses concise (2-3 sentences typically)
- Reference specific examples when helpful ("Looking at the example where...")
- Mention constraints when relevant ("Remember the constraint that...")
- Use problem category to guide suggestions (e.g., "This is an Arrays problem - consider...")
- If they're coding, focus on their approach and logic
- If it's a behavioral question, use the STAR method for evaluation

Remember: You're helping them practice, so be constructive and educational. Use the problem's examples, constraints, and hints strategically to provide targeted guidance.`)

	return b.String()
}

// buildProblemContext renders the synthetic problem-context turn: the
// first two examples with explanations, every constraint and every hint.
// Returns "" when the question context carries none of those.
func buildProblemContext(questionContext *domain.QuestionContext) string {
	var details []string

	if len(questionContext.Examples) > 0 {
		details = append(details, "Problem examples:")
		for i, example := range questionContext.Examples {
			if i >= maxPromptExamples {
				break
			}
			details = append(details, fmt.Sprintf("Example %d: Input %s → Output %s", i+1, example.Input, example.Output))
			if example.Explanation != "" {
				details = append(details, fmt.Sprintf("Explanation: %s", example.Explanation))
			}
		}
	}

	if len(questionContext.Constraints) > 0 {
		details = append(details, "Constraints:")
		for _, constraint := range questionContext.Constraints {
			details = append(details, fmt.Sprintf("- %s", constraint))
		}
	}

	if len(questionContext.Hints) > 0 {
		details = append(details, "Available hints (use strategically):")
		for i, hint := range questionContext.Hints {
			details = append(details, fmt.Sprintf("Hint %d: %s", i+1, hint))
		}
	}

	if len(details) == 0 {
		return ""
	}

	return "Problem context:\n" + strings.Join(details, "\n")
}
