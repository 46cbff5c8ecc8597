package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cropai/internal/domain/entities"
	"cropai/internal/ports/input"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Language string `json:"language"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

func viewUser(u *entities.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, Name: u.Name, Language: u.Language}
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Language != "" && !s.locales.HasLocale(req.Language) {
		req.Language = s.locales.Fallback()
	}

	user, err := s.accounts.Register(c.Request.Context(), input.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
		Language: req.Language,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	s.sessions.SetUser(sessionRecord(c).ID, user.ID)
	if user.Language != "" {
		if ls := localeSession(c); ls != nil {
			ls.SetLanguage(c.Request.Context(), user.Language)
		}
	}
	respondCreated(c, viewUser(user))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	s.sessions.SetUser(sessionRecord(c).ID, user.ID)
	if ls := localeSession(c); ls != nil && user.Language != "" {
		ls.SetLanguage(c.Request.Context(), user.Language)
	}
	respondOK(c, gin.H{
		"user":    viewUser(user),
		"message": translate(c, "messages.welcome", map[string]any{"name": displayName(user)}),
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.sessions.ClearUser(sessionRecord(c).ID)
	respondOK(c, gin.H{"message": translate(c, "messages.logged_out", nil)})
}

func displayName(u *entities.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
