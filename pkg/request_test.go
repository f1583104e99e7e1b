package pkg

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestData_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/blog/save",
		strings.NewReader(`{"blogId": 12, "title": "Go", "draft": false, "category": null}`))
	req.Header.Set("Content-Type", "application/json")

	data, err := RequestData(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"blogId":   "12",
		"title":    "Go",
		"draft":    "false",
		"category": "",
	}, data)
}

func TestRequestData_JSONNested(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/blog/save", strings.NewReader(`{"title": {"a": 1}}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	_, err := RequestData(req)
	assert.Error(t, err)
}

func TestRequestData_Form(t *testing.T) {
	form := url.Values{}
	form.Add("message", "morning run")
	form.Add("postId", "3")
	req := httptest.NewRequest(http.MethodPost, "/routine/reply/3", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	data, err := RequestData(req)
	require.NoError(t, err)
	assert.Equal(t, "morning run", data["message"])
	assert.Equal(t, "3", data["postId"])
}
