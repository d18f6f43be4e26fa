package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndelacroix/meetings-api/internal/database"
	"github.com/ndelacroix/meetings-api/internal/models"
	"github.com/ndelacroix/meetings-api/pkg/auth"
)

type AuthHandler struct {
	db     *database.Database
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
}

func NewAuthHandler(db *database.Database, tokens *auth.TokenManager, hasher *auth.PasswordHasher) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, hasher: hasher}
}

// Login verifies the credentials and returns a signed bearer token as a
// plain string. Every failure collapses to a bare 403 so the response
// leaks nothing about which check failed.
func (h *AuthHandler) Login(c *gin.Context) {
	name, _ := lookupParam(c, "name")
	pwd, _ := lookupParam(c, "pwd")
	if strings.TrimSpace(name) == "" || strings.TrimSpace(pwd) == "" {
		c.Status(http.StatusForbidden)
		return
	}
	user, err := h.authenticate(name, pwd)
	if err != nil {
		c.Status(http.StatusForbidden)
		return
	}
	token, err := h.tokens.Issue(user.Name)
	if err != nil {
		c.Status(http.StatusForbidden)
		return
	}
	c.String(http.StatusOK, token)
}

func (h *AuthHandler) authenticate(name, pwd string) (*models.User, error) {
	user, err := h.db.UserByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil || !h.hasher.Verify(pwd, user.Password) {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}
