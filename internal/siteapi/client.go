package siteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Arjunram-pal/portfolio/internal/telemetry/metrics"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	pathContact      = "/api/contact"
	pathBlogs        = "/api/blogs"
	pathRoutinePosts = "/api/routine/posts"
	pathRoutinePost  = "/api/routine/post"
	pathRoutineReply = "/api/routine/reply"
)

// Client talks to the site CRUD api. It owns no records, every call goes to the network.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}, nil
}

// SendContact posts the contact message. The result is decoded whatever the
// response status, the site api reports failures through ContactResult.Status.
func (c *Client) SendContact(ctx context.Context, msg ContactMessage) (result ContactResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.sendContact")
	defer func() { tracing.EndSpan(span, err) }()

	resp, err := c.send(ctx, http.MethodPost, pathContact, pathContact, msg)
	if err != nil {
		return ContactResult{}, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return ContactResult{}, fmt.Errorf("read contact response: %w", err)
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		c.observe(pathContact, "bad_body")
		return ContactResult{}, fmt.Errorf("unmarshal contact response [status %d]: %w", resp.StatusCode, err)
	}
	c.observe(pathContact, "ok")

	span.SetAttributes(attribute.String("contact.status", result.Status))
	return result, nil
}

func (c *Client) ListBlogs(ctx context.Context) (blogs []Blog, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.listBlogs")
	defer func() { tracing.EndSpan(span, err) }()

	blogs = []Blog{}
	if err := c.do(ctx, http.MethodGet, pathBlogs, pathBlogs, nil, &blogs); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("blogs.count", len(blogs)))
	return blogs, nil
}

func (c *Client) CreateBlog(ctx context.Context, input BlogInput) (created *Blog, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.createBlog")
	defer func() { tracing.EndSpan(span, err) }()

	created = &Blog{}
	if err := c.do(ctx, http.MethodPost, pathBlogs, pathBlogs, input, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id int, input BlogInput) (updated *Blog, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.updateBlog")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("blog.id", id))

	updated = &Blog{}
	path := fmt.Sprintf("%s/%d", pathBlogs, id)
	if err := c.do(ctx, http.MethodPut, path, pathBlogs+"/{id}", input, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id int) (err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.deleteBlog")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("blog.id", id))

	path := fmt.Sprintf("%s/%d", pathBlogs, id)
	return c.do(ctx, http.MethodDelete, path, pathBlogs+"/{id}", nil, nil)
}

func (c *Client) ListPosts(ctx context.Context) (posts []RoutinePost, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.listPosts")
	defer func() { tracing.EndSpan(span, err) }()

	posts = []RoutinePost{}
	if err := c.do(ctx, http.MethodGet, pathRoutinePosts, pathRoutinePosts, nil, &posts); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("posts.count", len(posts)))
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, message string) (created *RoutinePost, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.createPost")
	defer func() { tracing.EndSpan(span, err) }()

	created = &RoutinePost{}
	if err := c.do(ctx, http.MethodPost, pathRoutinePost, pathRoutinePost, messageBody{Message: message}, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) Reply(ctx context.Context, postID int, message string) (reply *Reply, err error) {
	ctx, span := tracing.StartSpan(ctx, "siteApi.reply")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("post.id", postID))

	reply = &Reply{}
	path := fmt.Sprintf("%s/%d", pathRoutineReply, postID)
	if err := c.do(ctx, http.MethodPost, path, pathRoutineReply+"/{id}", messageBody{Message: message}, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// do sends the request and, on a 2xx status, decodes the body into out (if not nil).
func (c *Client) do(ctx context.Context, method, path, endpoint string, body, out any) error {
	resp, err := c.send(ctx, method, path, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain, so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		c.observe(endpoint, "bad_status")
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.observe(endpoint, "ok")
		return nil
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		c.observe(endpoint, "bad_body")
		return fmt.Errorf("unmarshal response %s %s: %w", method, path, err)
	}
	c.observe(endpoint, "ok")
	return nil
}

func (c *Client) send(ctx context.Context, method, path, endpoint string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("new request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for _, cookie := range cookiesFrom(ctx) {
		req.AddCookie(cookie)
	}

	log.Tracef("site api -> %s %s", method, path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metricsManager != nil {
		c.metricsManager.HistogramSiteAPIDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observe(endpoint, "transport_error")
		return nil, fmt.Errorf("http client do %s %s: %w", method, path, err)
	}
	return resp, nil
}

func (c *Client) observe(endpoint, outcome string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterSiteAPICalls.WithLabelValues(endpoint, outcome).Inc()
}
