package handlers

import (
	"net/http"

	"github.com/mateusfonseca/dorsetMusicCollection/internal/db"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/middleware"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/models"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Wrong username or password"})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Wrong username or password"})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/polls")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/polls")
}

// currentUserOrLogin returns the logged-in user, redirecting anonymous
// requests to the login page. Used by handlers that cannot sit behind
// AuthRequired because their route is dispatched from a shared wildcard.
func currentUserOrLogin(c *gin.Context) *models.User {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
	return user
}
