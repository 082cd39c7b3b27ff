package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

// loginRequest has no required-field tags on purpose: the original service
// treated missing fields as ordinary bad credentials, not as a malformed
// request. Only unparseable JSON yields a 400.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	session, err := s.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}

	s.logger.Info(c.Request.Context(), "login", "email", session.User.Email)
	c.JSON(http.StatusOK, session)
}

const emailContextKey = "auth_email"

// requireToken verifies a bearer token with the configured codec and stores
// the decoded email on the request context.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		email, _, err := s.codec.Decode(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		c.Set(emailContextKey, email)
		c.Next()
	}
}

func (s *Server) handleMe(c *gin.Context) {
	email := c.GetString(emailContextKey)

	user, err := s.accounts.Lookup(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
