package qa

// Stats is a point-in-time snapshot of the loaded corpus and the configured
// answer generator. Computed on demand, never cached.
type Stats struct {
	TotalMessages   int            `json:"total_messages"`
	TotalUsers      int            `json:"total_users"`
	Users           []string       `json:"users"`
	MessagesPerUser map[string]int `json:"messages_per_user"`
	LLMProvider     string         `json:"llm_provider"`
	LLMModel        *string        `json:"llm_model"`
}

// Stats builds a fresh snapshot from the store. The model is null in
// fallback mode, where no LLM is configured.
func (e *Engine) Stats() Stats {
	perUser := make(map[string]int, e.store.UserCount())
	for _, user := range e.store.Users() {
		perUser[user] = len(e.store.MessagesFor(user))
	}

	stats := Stats{
		TotalMessages:   e.store.MessageCount(),
		TotalUsers:      e.store.UserCount(),
		Users:           e.store.Users(),
		MessagesPerUser: perUser,
		LLMProvider:     e.generator.Provider(),
	}
	if model := e.generator.Model(); model != "" {
		stats.LLMModel = &model
	}
	return stats
}
