package template

import (
	"fmt"
	"strings"

	"github.com/greenfield-grocer/notifier/internal/model"
)

const pollQuestion = "Which seasonal produce would you like this week?"

// SeasonalPoll composes the interactive poll question and one option per
// seasonal product. Capping the product list to the provider's option limit
// is the caller's responsibility.
func SeasonalPoll(products []model.Product) (question string, options []string) {
	options = make([]string, 0, len(products))
	for _, p := range products {
		options = append(options, fmt.Sprintf("%s — %s", p.Name, money(p.Price)))
	}

	return pollQuestion, options
}

// SeasonalPollContent renders the persisted ledger content for a poll send:
// the question followed by the option list. The queue processor replays this
// as a plain text message, since an interactive poll cannot be reconstructed
// from persisted text.
func SeasonalPollContent(question string, options []string) string {
	var b strings.Builder

	b.WriteString(question)
	for _, opt := range options {
		b.WriteString("\n- ")
		b.WriteString(opt)
	}

	return b.String()
}
