// Package auth obtains and caches Twitch app access tokens via the OAuth2
// client credentials flow. The resource client takes a plain bearer token, so
// using this package is optional.
package auth

import (
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const baseUrl = "https://id.twitch.tv/oauth2"

type Config struct {
	ClientID     string
	ClientSecret string
}

type Auth struct {
	config     *Config
	httpClient fastshot.ClientHttpMethods

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewAuth(config *Config) *Auth {
	return &Auth{
		config:     config,
		httpClient: setupHttpClient(baseUrl),
	}
}

// Token returns a valid app access token, requesting a new one when the
// cached token is within a minute of expiry.
func (a *Auth) Token() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Now().Before(a.expiresAt.Add(-time.Minute)) {
		return a.accessToken, nil
	}
	return a.refreshToken()
}

func (a *Auth) refreshToken() (string, error) {
	form := url.Values{
		"client_id":     {a.config.ClientID},
		"client_secret": {a.config.ClientSecret},
		"grant_type":    {"client_credentials"},
	}

	fastResp, err := a.httpClient.
		POST("/token").
		Header().Add("Content-Type", "application/x-www-form-urlencoded").
		Body().AsString(form.Encode()).
		Send()
	if err != nil {
		return "", err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return "", errors.New(body)
	}
	var data TokenResponse
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return "", err
	}

	a.accessToken = data.AccessToken
	a.expiresAt = time.Now().Add(time.Duration(data.ExpiresIn) * time.Second)
	slog.Debug("[Auth] Access token refreshed", "expires_in", data.ExpiresIn)
	return a.accessToken, nil
}

// Validate checks a token against the validate endpoint. The endpoint answers
// 401 for expired or revoked tokens.
func (a *Auth) Validate(token string) (*ValidateResponse, error) {
	fastResp, err := a.httpClient.
		GET("/validate").
		Header().Add("Authorization", "OAuth "+token).
		Send()
	if err != nil {
		return nil, err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return nil, errors.New(body)
	}
	var data ValidateResponse
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func setupHttpClient(url string) fastshot.ClientHttpMethods {
	return fastshot.NewClient(url).
		Header().AddAccept(mime.JSON).
		Build()
}
