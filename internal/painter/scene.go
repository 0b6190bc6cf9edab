package painter

import (
	"math/rand"
	"time"
)

// Scene is a set of floating books. It is not safe for concurrent use, see Animator.
type Scene struct {
	cfg   Config
	books []Book
}

// NewScene creates a scene with cfg.BookCount books placed from the given seed
func NewScene(cfg Config, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))
	books := make([]Book, 0, cfg.BookCount)
	for i := 0; i < cfg.BookCount; i++ {
		books = append(books, newBook(rng, cfg, Subjects[rng.Intn(len(Subjects))]))
	}
	return &Scene{cfg: cfg, books: books}
}

// Config returns the scene settings
func (s *Scene) Config() Config {
	return s.cfg
}

// Tick advances every book by one frame
func (s *Scene) Tick(now time.Time) {
	ms := float64(now.UnixNano()) / float64(time.Millisecond)
	for i := range s.books {
		s.books[i].Update(s.cfg, ms)
	}
}

// Books returns a copy of the current book states
func (s *Scene) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Frame projects all books in creation order
func (s *Scene) Frame() Frame {
	f := Frame{
		Width:  int(s.cfg.Width),
		Height: int(s.cfg.Height),
		Books:  make([]BookFrame, 0, len(s.books)),
	}
	for _, b := range s.books {
		f.Books = append(f.Books, Project(b, s.cfg))
	}
	return f
}
