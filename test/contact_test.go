//go:build integration_test

package test

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Arjunram-pal/portfolio/internal/contact"
	"github.com/Arjunram-pal/portfolio/internal/events"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestContact_ValidateSendAndRateLimit() {
	ctx := context.Background()
	headers := map[string]string{"Origin": allowedOrigin, "X-Forwarded-For": gofakeit.IPv4Address()}

	form := url.Values{
		"fullname": {gofakeit.Name()},
		"email":    {gofakeit.Email()},
		"message":  {gofakeit.Sentence(8)},
	}

	code, body := s.do(ctx, http.MethodPost, "/contact/validate", form, "", headers)
	require.Equal(s.T(), http.StatusOK, code)
	var validity contact.ValidityResponse
	s.decode(body, &validity)
	assert.True(s.T(), validity.SubmitEnabled)

	code, body = s.do(ctx, http.MethodPost, "/contact", form, "", headers)
	require.Equal(s.T(), http.StatusOK, code)
	var out events.Outcome
	s.decode(body, &out)
	assert.Equal(s.T(), events.AlertContactSent, out.Alert)
	assert.True(s.T(), out.ResetForm)

	// 3 per minute
	s.do(ctx, http.MethodPost, "/contact", form, "", headers)
	s.do(ctx, http.MethodPost, "/contact", form, "", headers)
	code, _ = s.do(ctx, http.MethodPost, "/contact", form, "", headers)
	assert.Equal(s.T(), http.StatusTooEarly, code)
}

func (s *IntegrationTestSuite) TestContact_ForeignOrigin() {
	ctx := context.Background()
	calls := s.siteAPI.RouteCalls("contact")

	form := url.Values{"fullname": {"Jane"}, "email": {"jane@example.com"}, "message": {"hi"}}
	code, _ := s.do(ctx, http.MethodPost, "/contact", form, "", map[string]string{"Origin": "https://evil.example.com"})

	assert.Equal(s.T(), http.StatusForbidden, code)
	assert.Equal(s.T(), calls, s.siteAPI.RouteCalls("contact"))
}
