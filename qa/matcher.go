package qa

import (
	"strings"

	"member-qa/store"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"
)

// Matcher resolves the user a question is about. It tries substring
// containment first and falls back to fuzzy matching against first names.
type Matcher struct {
	store     *store.Store
	threshold int
	logger    *zap.Logger
}

func NewMatcher(st *store.Store, threshold int, logger *zap.Logger) *Matcher {
	return &Matcher{
		store:     st,
		threshold: threshold,
		logger:    logger,
	}
}

// Match returns the known user name the query refers to, if any. Users are
// scanned in first-seen order so repeated queries resolve identically.
//
// Pass 1: case-insensitive substring containment in either direction wins
// immediately. Pass 2: each user's first name is scored against every query
// token with a 0-100 Levenshtein ratio; the best score wins if it reaches the
// threshold. Ties keep the earlier user (strict > when updating the best).
func (m *Matcher) Match(query string) (string, bool) {
	queryLower := strings.ToLower(query)

	for _, user := range m.store.Users() {
		userLower := strings.ToLower(user)
		if strings.Contains(queryLower, userLower) || strings.Contains(userLower, queryLower) {
			return user, true
		}
	}

	queryTokens := strings.Fields(queryLower)
	bestUser := ""
	bestScore := 0

	for _, user := range m.store.Users() {
		fields := strings.Fields(user)
		if len(fields) == 0 {
			continue
		}
		firstName := strings.ToLower(fields[0])

		for _, token := range queryTokens {
			if score := fuzzy.Ratio(firstName, token); score > bestScore {
				bestScore = score
				bestUser = user
			}
		}
	}

	if bestScore >= m.threshold {
		m.logger.Info("Fuzzy matched query to user",
			zap.String("user", bestUser),
			zap.Int("score", bestScore))
		return bestUser, true
	}

	return "", false
}
