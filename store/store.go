package store

// Message is a single member message as delivered by the remote source.
// Immutable once fetched.
type Message struct {
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Date returns the YYYY-MM-DD prefix of the message timestamp.
// Timestamps shorter than 10 characters are returned as-is.
func (m Message) Date() string {
	if len(m.Timestamp) > 10 {
		return m.Timestamp[:10]
	}
	return m.Timestamp
}

// Store is the in-memory message corpus: every fetched message in fetch
// order, plus a per-user index over the same values. Built once at startup
// and read-only afterwards, so concurrent readers need no locking.
type Store struct {
	messages []Message
	byUser   map[string][]Message
	users    []string // user names in first-seen order
}

// New builds a Store from messages in fetch order. Buckets are created
// explicitly when a user is first seen; within a bucket the messages keep
// their fetch order.
func New(messages []Message) *Store {
	s := &Store{
		messages: make([]Message, 0, len(messages)),
		byUser:   make(map[string][]Message),
	}
	for _, msg := range messages {
		s.messages = append(s.messages, msg)
		if _, seen := s.byUser[msg.UserName]; !seen {
			s.users = append(s.users, msg.UserName)
		}
		s.byUser[msg.UserName] = append(s.byUser[msg.UserName], msg)
	}
	return s
}

// Messages returns all messages in fetch order.
func (s *Store) Messages() []Message {
	return s.messages
}

// Users returns the distinct user names in first-seen order. Iterating this
// slice gives matchers a deterministic order, unlike ranging over the index.
func (s *Store) Users() []string {
	return s.users
}

// MessagesFor returns the messages of a single user in fetch order, or nil
// for an unknown user.
func (s *Store) MessagesFor(user string) []Message {
	return s.byUser[user]
}

// MessageCount returns the total number of messages loaded.
func (s *Store) MessageCount() int {
	return len(s.messages)
}

// UserCount returns the number of distinct users.
func (s *Store) UserCount() int {
	return len(s.users)
}
