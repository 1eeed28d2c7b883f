package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(baseUrl string) *Auth {
	return &Auth{
		config:     &Config{ClientID: "cid", ClientSecret: "secret"},
		httpClient: setupHttpClient(baseUrl),
	}
}

func TestTokenRequestsAndCaches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "client_id=cid&client_secret=secret&grant_type=client_credentials", string(body))
		w.Write([]byte(`{"access_token":"tok123","expires_in":3600,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	a := newTestAuth(srv.URL)

	token, err := a.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	token, err = a.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTokenRefreshesNearExpiry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"access_token":"tok123","expires_in":3600,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	a := newTestAuth(srv.URL)
	_, err := a.Token()
	require.NoError(t, err)

	a.expiresAt = time.Now().Add(30 * time.Second)
	_, err = a.Token()
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTokenErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":403,"message":"invalid client secret"}`))
	}))
	defer srv.Close()

	a := newTestAuth(srv.URL)
	_, err := a.Token()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid client secret")
}

func TestValidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validate", r.URL.Path)
		if !strings.HasPrefix(r.Header.Get("Authorization"), "OAuth ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"client_id":"cid","login":"ninja","user_id":"1","expires_in":5000}`))
	}))
	defer srv.Close()

	a := newTestAuth(srv.URL)
	resp, err := a.Validate("tok123")
	require.NoError(t, err)
	assert.Equal(t, "ninja", resp.Login)
	assert.Equal(t, 5000, resp.ExpiresIn)
}

func TestValidateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":401,"message":"invalid access token"}`))
	}))
	defer srv.Close()

	a := newTestAuth(srv.URL)
	_, err := a.Validate("expired")
	require.Error(t, err)
}

func TestTokenFormEncodesSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "s3&cret=%", r.PostFormValue("client_secret"))
		assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))
		w.Write([]byte(`{"access_token":"tok123","expires_in":3600,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	a := &Auth{
		config:     &Config{ClientID: "cid", ClientSecret: "s3&cret=%"},
		httpClient: setupHttpClient(srv.URL),
	}
	token, err := a.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}
