package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/elsur/driving-school-api/internal/repository"
	"github.com/elsur/driving-school-api/pkg/config"
	appErrors "github.com/elsur/driving-school-api/pkg/errors"
	"github.com/elsur/driving-school-api/pkg/response"
)

// AuthHandler drives the one-time Google consent flow. Tokens are never
// persisted here: the operator copies the refresh token into the
// environment and restarts.
type AuthHandler struct {
	oauth  *oauth2.Config
	logger *zap.Logger
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(cfg config.GoogleConfig, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{oauth: repository.OAuthConfig(cfg), logger: logger}
}

// Connect godoc
// @Summary Redirect to the Google consent screen
// @Tags Auth
// @Success 302
// @Router /auth/google [get]
func (h *AuthHandler) Connect(c *gin.Context) {
	// Offline access plus forced consent, otherwise Google omits the
	// refresh token on re-authorization.
	url := h.oauth.AuthCodeURL("", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	c.Redirect(http.StatusFound, url)
}

// Callback godoc
// @Summary Exchange the authorization code and display the refresh token
// @Tags Auth
// @Produce html
// @Param code query string true "Authorization code"
// @Success 200
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing authorization code"))
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("oauth code exchange failed", zap.Error(err))
		response.Error(c, appErrors.Wrap(err, "OAUTH_EXCHANGE_FAILED", http.StatusInternalServerError, "Failed to exchange authorization code"))
		return
	}

	if token.RefreshToken == "" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(noRefreshTokenPage))
		return
	}

	page := fmt.Sprintf(refreshTokenPage, html.EscapeString(token.RefreshToken))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

const noRefreshTokenPage = `<html><body style="font-family:monospace;padding:2rem">
<h2>No refresh token received</h2>
<p>Google only returns a refresh token on the <strong>first</strong> authorization.
To force a new one:</p>
<ol>
  <li>Open your Google account permissions page and revoke this app's access</li>
  <li>Visit <a href="/api/auth/google">/api/auth/google</a> again</li>
</ol>
</body></html>`

const refreshTokenPage = `<html><body style="font-family:monospace;padding:2rem">
<h2>Authorization successful</h2>
<p>Copy the refresh token below into your <code>.env</code> as
<code>GOOGLE_OAUTH_REFRESH_TOKEN</code>, then restart the server.</p>
<pre style="border:1px solid #333;padding:1rem;white-space:pre-wrap">%s</pre>
</body></html>`
