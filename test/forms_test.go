//go:build integration_test

package test

import (
	"context"
	"net/http"
	"net/url"
	"regexp"

	"github.com/Arjunram-pal/portfolio/internal/account"
	"github.com/Arjunram-pal/portfolio/internal/authform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formIDPattern = regexp.MustCompile(`data-form-id="([^"]+)"`)

func (s *IntegrationTestSuite) TestForms_LoginSubmitGate() {
	ctx := context.Background()

	code, body := s.do(ctx, http.MethodGet, "/forms/login", nil, "", nil)
	require.Equal(s.T(), http.StatusOK, code)
	match := formIDPattern.FindStringSubmatch(body)
	require.Len(s.T(), match, 2)
	formID := match[1]

	short := url.Values{account.FormIDField: {formID}, authform.FieldUsername: {"jo"}, authform.FieldPassword: {"x"}}
	code, body = s.do(ctx, http.MethodPost, "/forms/login/submit", short, "", nil)
	require.Equal(s.T(), http.StatusUnprocessableEntity, code)
	var state account.FormState
	s.decode(body, &state)
	assert.Equal(s.T(), authform.MsgUsernameTooShort, state.Result.Errors[authform.FieldUsername])

	valid := url.Values{account.FormIDField: {formID}, authform.FieldUsername: {"arjun"}, authform.FieldPassword: {"secret"}}
	code, body = s.do(ctx, http.MethodPost, "/forms/login/validate", valid, "", nil)
	require.Equal(s.T(), http.StatusOK, code)
	s.decode(body, &state)
	assert.True(s.T(), state.SubmitEnabled)

	code, body = s.do(ctx, http.MethodPost, "/forms/login/submit", valid, "", nil)
	require.Equal(s.T(), http.StatusOK, code)
	s.decode(body, &state)
	assert.True(s.T(), state.Busy)

	code, _ = s.do(ctx, http.MethodPost, "/forms/login/submit", valid, "", nil)
	assert.Equal(s.T(), http.StatusConflict, code)
}

func (s *IntegrationTestSuite) TestForms_PasswordToggle() {
	ctx := context.Background()

	code, body := s.do(ctx, http.MethodGet, "/forms/password-toggle?type=password", nil, "", nil)
	require.Equal(s.T(), http.StatusOK, code)
	var toggle authform.PasswordToggle
	s.decode(body, &toggle)
	assert.Equal(s.T(), authform.InputTypeText, toggle.InputType)
}
