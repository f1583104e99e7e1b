// Package state holds the last fetched blog and post lists of the process.
// Lists are only ever swapped as a whole, after a full fetch.
package state

import (
	"sync"
	"time"

	"github.com/Arjunram-pal/portfolio/internal/siteapi"
)

// Snapshot is a copy of the store at one point in time, safe to read freely.
type Snapshot struct {
	Blogs          []siteapi.Blog
	Posts          []siteapi.RoutinePost
	BlogsFetchedAt time.Time
	PostsFetchedAt time.Time
}

// BlogByID looks a blog up in the snapshot.
func (s Snapshot) BlogByID(id int) (siteapi.Blog, bool) {
	for _, b := range s.Blogs {
		if b.ID == id {
			return b, true
		}
	}
	return siteapi.Blog{}, false
}

type Store struct {
	mutex sync.RWMutex
	snap  Snapshot
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		snap: Snapshot{
			Blogs: []siteapi.Blog{},
			Posts: []siteapi.RoutinePost{},
		},
		now: time.Now,
	}
}

// ReplaceBlogs swaps the whole blog list. The store keeps its own copy.
func (s *Store) ReplaceBlogs(blogs []siteapi.Blog) {
	copied := make([]siteapi.Blog, len(blogs))
	copy(copied, blogs)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snap.Blogs = copied
	s.snap.BlogsFetchedAt = s.now()
}

// ReplacePosts swaps the whole post list, replies included.
func (s *Store) ReplacePosts(posts []siteapi.RoutinePost) {
	copied := copyPosts(posts)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snap.Posts = copied
	s.snap.PostsFetchedAt = s.now()
}

func (s *Store) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	blogs := make([]siteapi.Blog, len(s.snap.Blogs))
	copy(blogs, s.snap.Blogs)
	return Snapshot{
		Blogs:          blogs,
		Posts:          copyPosts(s.snap.Posts),
		BlogsFetchedAt: s.snap.BlogsFetchedAt,
		PostsFetchedAt: s.snap.PostsFetchedAt,
	}
}

func copyPosts(posts []siteapi.RoutinePost) []siteapi.RoutinePost {
	copied := make([]siteapi.RoutinePost, len(posts))
	for i, p := range posts {
		copied[i] = p
		if p.Replies != nil {
			copied[i].Replies = make([]siteapi.Reply, len(p.Replies))
			copy(copied[i].Replies, p.Replies)
		}
	}
	return copied
}
