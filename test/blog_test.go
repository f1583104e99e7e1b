//go:build integration_test

package test

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Arjunram-pal/portfolio/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestBlog_VisitorList() {
	ctx := context.Background()

	code, body := s.do(ctx, http.MethodGet, "/blog/list", nil, "", nil)
	require.Equal(s.T(), http.StatusOK, code)

	assert.Less(s.T(), strings.Index(body, "Second"), strings.Index(body, "First"))
	assert.Contains(s.T(), body, "go &lt;generics&gt;")
	assert.NotContains(s.T(), body, "blog-admin-actions")
}

func (s *IntegrationTestSuite) TestBlog_AdminLifecycle() {
	ctx := context.Background()
	token := s.loginAdmin(ctx)

	code, body := s.do(ctx, http.MethodGet, "/blog/list", nil, token, nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), 2, strings.Count(body, `class="blog-admin-actions"`))

	form := url.Values{"title": {"Third"}, "category": {"news"}, "content": {"fresh"}}
	code, body = s.do(ctx, http.MethodPost, "/blog/save", form, token, nil)
	require.Equal(s.T(), http.StatusOK, code)
	var saved events.Outcome
	s.decode(body, &saved)
	assert.True(s.T(), saved.ResetForm)
	assert.True(s.T(), saved.Reloaded)

	code, body = s.do(ctx, http.MethodGet, "/blog/list", nil, token, nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Contains(s.T(), body, "Third")

	created := s.siteAPI.Blogs()[0]
	code, _ = s.do(ctx, http.MethodDelete, "/blog/"+itoa(created.ID), nil, token, map[string]string{"X-Confirmed": "true"})
	require.Equal(s.T(), http.StatusOK, code)
	assert.Len(s.T(), s.siteAPI.Blogs(), 2)

	// the admin cookie went along with the mutation
	var forwarded bool
	for _, req := range s.siteAPI.Requests() {
		if req.Route != "delete-blog" {
			continue
		}
		for _, c := range req.Cookies {
			forwarded = forwarded || (c.Name == adminCookieName && c.Value == token)
		}
	}
	assert.True(s.T(), forwarded)
}

func (s *IntegrationTestSuite) TestBlog_VisitorCannotMutate() {
	ctx := context.Background()

	form := url.Values{"title": {"Nope"}, "category": {"x"}, "content": {"y"}}
	code, _ := s.do(ctx, http.MethodPost, "/blog/save", form, "", nil)
	assert.Equal(s.T(), http.StatusForbidden, code)

	code, _ = s.do(ctx, http.MethodDelete, "/blog/1", nil, "not-a-session", map[string]string{"X-Confirmed": "true"})
	assert.Equal(s.T(), http.StatusForbidden, code)
	assert.Len(s.T(), s.siteAPI.Blogs(), 2)
}

func (s *IntegrationTestSuite) TestBlog_StaleListOnFailure() {
	ctx := context.Background()

	code, _ := s.do(ctx, http.MethodGet, "/blog/list", nil, "", nil)
	require.Equal(s.T(), http.StatusOK, code)

	s.siteAPI.FailRoute("list-blogs", http.StatusBadGateway)
	code, body := s.do(ctx, http.MethodGet, "/blog/list", nil, "", nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Contains(s.T(), body, "First")
}
