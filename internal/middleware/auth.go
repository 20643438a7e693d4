package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
)

// expiryMargin keeps us from serving a cached token that is about to
// expire upstream mid-request.
const expiryMargin = 30 * time.Second

type tokenEntry struct {
	scope     model.Scope
	expiresAt time.Time
}

// tokenInfo is the relevant subset of Google's tokeninfo response. The
// endpoint returns numbers as strings.
type tokenInfo struct {
	Email     string `json:"email"`
	ExpiresIn string `json:"expires_in"`
}

// Auth validates the caller's Google OAuth access token from the "token"
// header against the tokeninfo endpoint and attaches a request scope.
// Validated tokens are cached until shortly before upstream expiry.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetHeader("token")
		if accessToken == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.validateToken(c.Request.Context(), accessToken)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if tz := c.GetHeader("X-Timezone"); tz != "" {
			sc.Timezone = tz
		}

		SetScope(c, sc)
		c.Next()
	}
}

func (m Middleware) validateToken(ctx context.Context, accessToken string) (model.Scope, error) {
	if entry, ok := m.tokens.Get(accessToken); ok {
		if time.Now().Before(entry.expiresAt.Add(-expiryMargin)) {
			return entry.scope, nil
		}
		m.tokens.Remove(accessToken)
	}

	info, err := m.fetchTokenInfo(ctx, accessToken)
	if err != nil {
		return model.Scope{}, err
	}

	sc := model.Scope{
		AccessToken: accessToken,
		UserEmail:   info.Email,
		Timezone:    m.cfg.Timezone,
	}

	expiresIn, err := strconv.Atoi(info.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		return model.Scope{}, fmt.Errorf("token has no usable expiry")
	}
	m.tokens.Add(accessToken, tokenEntry{
		scope:     sc,
		expiresAt: time.Now().Add(time.Duration(expiresIn) * time.Second),
	})

	return sc, nil
}

func (m Middleware) fetchTokenInfo(ctx context.Context, accessToken string) (tokenInfo, error) {
	endpoint := m.cfg.TokenInfoURL + "?access_token=" + url.QueryEscape(accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return tokenInfo{}, err
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return tokenInfo{}, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tokenInfo{}, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return tokenInfo{}, fmt.Errorf("tokeninfo decode failed: %w", err)
	}
	return info, nil
}
