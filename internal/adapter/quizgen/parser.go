package quizgen

import (
	"regexp"
	"strings"

	"mathdrill/internal/domain"
)

var (
	questionMarker = regexp.MustCompile(`(?:题目|Question)[:：]`)
	answerMarker   = regexp.MustCompile(`(?:答案|Answer)[:：]`)
)

// ParseQA splits raw model output into a question and an answer. It never fails:
// without a question marker the whole text becomes the question, and a missing
// answer is replaced by domain.NoAnswerPlaceholder.
func ParseQA(raw string) domain.GeneratedQA {
	qa := domain.GeneratedQA{Question: raw, Answer: domain.NoAnswerPlaceholder}

	if loc := questionMarker.FindStringIndex(raw); loc != nil {
		rest := raw[loc[1]:]
		if end := answerMarker.FindStringIndex(rest); end != nil {
			rest = rest[:end[0]]
		}
		if q := strings.TrimSpace(rest); q != "" {
			qa.Question = q
		}
	}

	if loc := answerMarker.FindStringIndex(raw); loc != nil {
		if a := strings.TrimSpace(raw[loc[1]:]); a != "" {
			qa.Answer = a
		}
	}

	return qa
}
