//go:build integration_test

package test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Arjunram-pal/portfolio/internal/routine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func (s *IntegrationTestSuite) TestRoutine_ListAndReply() {
	ctx := context.Background()
	token := s.loginAdmin(ctx)

	code, body := s.do(ctx, http.MethodGet, "/routine/list", nil, "", nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Contains(s.T(), body, "gym at 7")
	assert.Contains(s.T(), body, "done")

	code, _ = s.do(ctx, http.MethodPost, "/routine/reply/7", url.Values{"message": {"nice"}}, "", nil)
	assert.Equal(s.T(), http.StatusForbidden, code)

	code, body = s.do(ctx, http.MethodPost, "/routine/reply/7/toggle", nil, token, nil)
	require.Equal(s.T(), http.StatusOK, code)
	var toggle routine.ReplyToggleResponse
	s.decode(body, &toggle)
	assert.True(s.T(), toggle.Open)
	assert.Equal(s.T(), "7", toggle.OpenForms)

	code, _ = s.do(ctx, http.MethodPost, "/routine/reply/7", url.Values{"message": {"nice"}}, token, nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), 1, s.siteAPI.RouteCalls("reply"))

	code, body = s.do(ctx, http.MethodGet, "/routine/list?open=7", nil, token, nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Contains(s.T(), body, "nice")
}
