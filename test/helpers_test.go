//go:build integration_test

package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Arjunram-pal/portfolio/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// loginAdmin stores a fresh admin session in redis, the way the site api does
// after a successful login, and returns its token.
func (s *IntegrationTestSuite) loginAdmin(ctx context.Context) string {
	token := gofakeit.UUID()
	err := s.redisClient.Set(
		ctx,
		auth.SessionKeyPrefix+token,
		strconv.FormatInt(time.Now().Unix(), 10),
		time.Hour,
	).Err()
	require.NoError(s.T(), err)
	return token
}

func (s *IntegrationTestSuite) do(
	ctx context.Context,
	method, path string,
	form url.Values,
	adminToken string,
	headers map[string]string,
) (int, string) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if adminToken != "" {
		req.AddCookie(&http.Cookie{Name: adminCookieName, Value: adminToken})
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, string(respBytes)
}

func (s *IntegrationTestSuite) decode(body string, v any) {
	require.NoError(s.T(), json.Unmarshal([]byte(body), v))
}
