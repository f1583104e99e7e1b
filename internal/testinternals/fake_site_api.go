package testinternals

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/Arjunram-pal/portfolio/internal/siteapi"

	"github.com/gorilla/mux"
)

// FakeSiteAPI is an in-memory stand-in for the site CRUD api. It keeps blogs and
// routine posts, records every request and can be told to fail a route.
type FakeSiteAPI struct {
	Server *httptest.Server

	mu         sync.Mutex
	blogs      []siteapi.Blog
	posts      []siteapi.RoutinePost
	nextID     int
	failRoutes map[string]int
	requests   []RecordedRequest
	contact    siteapi.ContactResult
}

type RecordedRequest struct {
	Route   string
	Method  string
	Path    string
	Cookies []*http.Cookie
}

func NewFakeSiteAPI() *FakeSiteAPI {
	f := &FakeSiteAPI{
		nextID:     100,
		failRoutes: map[string]int{},
		contact: siteapi.ContactResult{
			Status:  siteapi.ContactStatusSuccess,
			Message: "sent",
		},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/contact", f.handleContact).Methods("POST").Name("contact")
	r.HandleFunc("/api/blogs", f.handleListBlogs).Methods("GET").Name("list-blogs")
	r.HandleFunc("/api/blogs", f.handleCreateBlog).Methods("POST").Name("create-blog")
	r.HandleFunc("/api/blogs/{id}", f.handleUpdateBlog).Methods("PUT").Name("update-blog")
	r.HandleFunc("/api/blogs/{id}", f.handleDeleteBlog).Methods("DELETE").Name("delete-blog")
	r.HandleFunc("/api/routine/posts", f.handleListPosts).Methods("GET").Name("list-posts")
	r.HandleFunc("/api/routine/post", f.handleCreatePost).Methods("POST").Name("create-post")
	r.HandleFunc("/api/routine/reply/{id}", f.handleReply).Methods("POST").Name("reply")
	r.Use(f.record)

	f.Server = httptest.NewServer(r)
	return f
}

func (f *FakeSiteAPI) URL() string {
	return f.Server.URL
}

func (f *FakeSiteAPI) Close() {
	f.Server.Close()
}

func (f *FakeSiteAPI) SeedBlogs(blogs ...siteapi.Blog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blogs = append(f.blogs, blogs...)
}

func (f *FakeSiteAPI) SeedPosts(posts ...siteapi.RoutinePost) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, posts...)
}

// Reset drops all data, recorded requests and route failures.
func (f *FakeSiteAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blogs = nil
	f.posts = nil
	f.requests = nil
	f.failRoutes = map[string]int{}
}

// FailRoute makes the named route answer with code until cleared with code 0.
func (f *FakeSiteAPI) FailRoute(route string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if code == 0 {
		delete(f.failRoutes, route)
		return
	}
	f.failRoutes[route] = code
}

func (f *FakeSiteAPI) SetContactResult(result siteapi.ContactResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contact = result
}

func (f *FakeSiteAPI) Blogs() []siteapi.Blog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]siteapi.Blog(nil), f.blogs...)
}

func (f *FakeSiteAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// RouteCalls counts the recorded requests of one route.
func (f *FakeSiteAPI) RouteCalls(route string) int {
	count := 0
	for _, req := range f.Requests() {
		if req.Route == route {
			count++
		}
	}
	return count
}

func (f *FakeSiteAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil {
			route = current.GetName()
		}

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Route:   route,
			Method:  r.Method,
			Path:    r.URL.Path,
			Cookies: r.Cookies(),
		})
		code, fail := f.failRoutes[route]
		f.mu.Unlock()

		if fail {
			http.Error(w, "failing on purpose", code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeSiteAPI) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg siteapi.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, siteapi.ContactResult{Status: "error", Message: "bad body"})
		return
	}

	f.mu.Lock()
	result := f.contact
	f.mu.Unlock()

	code := http.StatusOK
	if !result.Succeeded() {
		code = http.StatusBadRequest
	}
	writeJSON(w, code, result)
}

func (f *FakeSiteAPI) handleListBlogs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, f.Blogs())
}

func (f *FakeSiteAPI) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var input siteapi.BlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.nextID++
	blog := siteapi.Blog{
		ID:        f.nextID,
		Title:     input.Title,
		Category:  input.Category,
		Content:   input.Content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	// newest first, like the real api
	f.blogs = append([]siteapi.Blog{blog}, f.blogs...)
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, blog)
}

func (f *FakeSiteAPI) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	var input siteapi.BlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			f.blogs[i].Title = input.Title
			f.blogs[i].Category = input.Category
			f.blogs[i].Content = input.Content
			writeJSON(w, http.StatusOK, f.blogs[i])
			return
		}
	}
	http.Error(w, fmt.Sprintf("blog %d not found", id), http.StatusNotFound)
}

func (f *FakeSiteAPI) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			f.blogs = append(f.blogs[:i:i], f.blogs[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, fmt.Sprintf("blog %d not found", id), http.StatusNotFound)
}

func (f *FakeSiteAPI) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	posts := append([]siteapi.RoutinePost(nil), f.posts...)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, posts)
}

func (f *FakeSiteAPI) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.nextID++
	post := siteapi.RoutinePost{
		ID:        f.nextID,
		Message:   body.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	f.posts = append([]siteapi.RoutinePost{post}, f.posts...)
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, post)
}

func (f *FakeSiteAPI) handleReply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.nextID++
			reply := siteapi.Reply{
				ID:        f.nextID,
				Message:   body.Message,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}
			f.posts[i].Replies = append(f.posts[i].Replies, reply)
			writeJSON(w, http.StatusCreated, reply)
			return
		}
	}
	http.Error(w, fmt.Sprintf("post %d not found", id), http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
