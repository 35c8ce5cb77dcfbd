package qa

import (
	"fmt"
	"sort"
	"strings"

	"member-qa/store"

	"go.uber.org/zap"
)

// Retriever selects the messages that form the context for a question:
// the matched user's full bucket when the question names someone, keyword
// overlap over the whole corpus otherwise.
type Retriever struct {
	store   *store.Store
	matcher *Matcher
	topK    int
	logger  *zap.Logger
}

func NewRetriever(st *store.Store, matcher *Matcher, topK int, logger *zap.Logger) *Retriever {
	return &Retriever{
		store:   st,
		matcher: matcher,
		topK:    topK,
		logger:  logger,
	}
}

// Retrieve returns the context text and the source messages it was built
// from. The context is one line per message in source order, empty when
// nothing matched.
func (r *Retriever) Retrieve(question string) (string, []store.Message) {
	var sources []store.Message

	if user, ok := r.matcher.Match(question); ok {
		sources = r.store.MessagesFor(user)
		r.logger.Info("Retrieved messages for matched user",
			zap.String("user", user),
			zap.Int("count", len(sources)))
	} else {
		r.logger.Info("No specific user identified, using keyword-based retrieval")
		sources = r.keywordRetrieval(question)
	}

	return FormatContext(sources), sources
}

type scoredMessage struct {
	overlap int
	msg     store.Message
}

// keywordRetrieval ranks the corpus by word overlap with the question and
// returns the topK best. The sort is stable so equal-overlap messages keep
// corpus order.
func (r *Retriever) keywordRetrieval(question string) []store.Message {
	questionWords := tokenSet(question)

	var scored []scoredMessage
	for _, msg := range r.store.Messages() {
		overlap := 0
		for word := range tokenSet(msg.Message) {
			if _, ok := questionWords[word]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			scored = append(scored, scoredMessage{overlap: overlap, msg: msg})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].overlap > scored[j].overlap
	})

	if len(scored) > r.topK {
		scored = scored[:r.topK]
	}

	results := make([]store.Message, len(scored))
	for i, s := range scored {
		results[i] = s.msg
	}
	return results
}

// tokenSet lowercases text and splits it on whitespace into a word set.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = struct{}{}
	}
	return set
}

// FormatContext renders messages as newline-joined "[YYYY-MM-DD] user: text"
// lines with no trailing newline. Empty input yields an empty string.
func FormatContext(messages []store.Message) string {
	if len(messages) == 0 {
		return ""
	}
	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = fmt.Sprintf("[%s] %s: %s", msg.Date(), msg.UserName, msg.Message)
	}
	return strings.Join(lines, "\n")
}
