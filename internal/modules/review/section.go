package review

import (
	"context"
	"log"
	"sync"

	"staybook/internal/domain"
)

// MsgLoadFailed is the only failure text a viewer sees.
const MsgLoadFailed = "Failed to load reviews."

type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Section holds the review list of one property through a single fetch.
// The property id never changes; a different property needs a new Section.
type Section struct {
	propertyID string
	lister     ReviewLister

	mu      sync.Mutex
	state   State
	reviews []domain.Review
	errMsg  string
	token   uint64
	closed  bool
}

func NewSection(propertyID string, lister ReviewLister) *Section {
	return &Section{
		propertyID: propertyID,
		lister:     lister,
		state:      StateLoading,
	}
}

// Load fetches the reviews and moves the section to loaded or failed.
// A result that arrives after Close, or after a newer Load started, is dropped.
func (s *Section) Load(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.token++
	token := s.token
	s.state = StateLoading
	s.reviews = nil
	s.errMsg = ""
	s.mu.Unlock()

	reviews, err := s.lister.ListReviews(ctx, s.propertyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || token != s.token {
		return
	}

	if err != nil {
		log.Printf("review_fetch_error property_id=%s error=%q", s.propertyID, err.Error())
		s.state = StateFailed
		s.errMsg = MsgLoadFailed
		return
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}
	s.state = StateLoaded
	s.reviews = reviews
}

// Close invalidates any outstanding request.
func (s *Section) Close() {
	s.mu.Lock()
	s.closed = true
	s.token++
	s.mu.Unlock()
}

func (s *Section) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Item is a review prepared for display.
type Item struct {
	ID      string
	User    string
	Rating  float64
	Comment string
	Date    string
}

// View is what the review_section template renders. Exactly one of
// Loading, Error or the list (possibly Empty) applies.
type View struct {
	PropertyID string
	Loading    bool
	Error      string
	Empty      bool
	Reviews    []Item
}

// View snapshots the section, formatting dates with layout.
func (s *Section) View(layout string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{PropertyID: s.propertyID}
	switch s.state {
	case StateLoading:
		v.Loading = true
	case StateFailed:
		v.Error = s.errMsg
	case StateLoaded:
		v.Empty = len(s.reviews) == 0
		v.Reviews = make([]Item, 0, len(s.reviews))
		for _, r := range s.reviews {
			v.Reviews = append(v.Reviews, Item{
				ID:      string(r.ID),
				User:    r.User,
				Rating:  r.Rating,
				Comment: r.Comment,
				Date:    FormatDate(r.Date, layout),
			})
		}
	}
	return v
}
