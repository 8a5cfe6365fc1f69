package auth

import "sync"

// User is the signed-in identity.
type User struct {
	ID       string
	Email    string
	Username string
}

// EventKind distinguishes session changes.
type EventKind int

const (
	SignedIn EventKind = iota
	SignedOut
)

func (k EventKind) String() string {
	if k == SignedIn {
		return "signed_in"
	}
	return "signed_out"
}

// Event is delivered to session subscribers.
type Event struct {
	Kind EventKind
	User *User // the user signing in or out
}

type subscriber struct {
	id int
	fn func(Event)
}

// Session holds the current identity and notifies subscribers when it
// changes. The zero value is a signed-out session.
type Session struct {
	mu     sync.Mutex
	user   *User
	nextID int
	subs   []subscriber
}

// NewSession returns a signed-out session.
func NewSession() *Session {
	return &Session{}
}

// CurrentUser returns the signed-in user, or nil.
func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Subscribe registers fn for session events. Listeners run synchronously
// in subscription order. The returned func removes the listener.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Session) signIn(u User) {
	s.mu.Lock()
	s.user = &u
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()
	notify(subs, Event{Kind: SignedIn, User: &u})
}

func (s *Session) signOut() {
	s.mu.Lock()
	prev := s.user
	s.user = nil
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()
	if prev == nil {
		return
	}
	notify(subs, Event{Kind: SignedOut, User: prev})
}

func notify(subs []subscriber, ev Event) {
	for _, sub := range subs {
		sub.fn(ev)
	}
}
