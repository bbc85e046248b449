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

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

func (h *AccountHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "accounts/signup.html", gin.H{"Title": "Sign up"})
}

func (h *AccountHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if username == "" || password == "" {
		Render(c, http.StatusBadRequest, "accounts/signup.html", gin.H{
			"Error": "Username and password are required",
		})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	// Uniqueness is left to the store's constraint on username.
	if err := db.DB.Create(&user).Error; err != nil {
		Render(c, http.StatusConflict, "accounts/signup.html", gin.H{
			"Error": "That username is already taken",
		})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// owner returns the account targeted by the path once it is confirmed to be
// the logged-in user's own. The path parameter is compared as a typed id
// against the session identity; any mismatch is a Forbidden, whoever asks.
func (h *AccountHandler) owner(c *gin.Context) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	targetID := utils.StringToInt(c.Param("id"))
	if targetID <= 0 || uint(targetID) != user.ID {
		RenderError(c, http.StatusForbidden, "You may only manage your own account")
		return nil, false
	}
	return user, true
}

func (h *AccountHandler) Detail(c *gin.Context) {
	user, ok := h.owner(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, "accounts/detail.html", gin.H{
		"Title": user.Username,
		"User":  user,
	})
}

func (h *AccountHandler) ShowDelete(c *gin.Context) {
	user, ok := h.owner(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, "accounts/delete.html", gin.H{
		"Title": "Delete account",
		"User":  user,
	})
}

// Delete removes the account after re-checking the password. A wrong
// password re-renders the confirmation page with a failure flag.
func (h *AccountHandler) Delete(c *gin.Context) {
	user, ok := h.owner(c)
	if !ok {
		return
	}

	if !utils.CheckPasswordHash(c.PostForm("password"), user.Password) {
		Render(c, http.StatusOK, "accounts/delete.html", gin.H{
			"Title": "Delete account",
			"User":  user,
			"Fail":  true,
		})
		return
	}

	if err := db.DB.Delete(user).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	Render(c, http.StatusOK, "accounts/delete_confirmation.html", gin.H{
		"Title": "Account deleted",
	})
}

func (h *AccountHandler) ShowUpdateEmail(c *gin.Context) {
	user, ok := h.owner(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, "accounts/change_email.html", gin.H{
		"Title": "Change email",
		"User":  user,
	})
}

func (h *AccountHandler) UpdateEmail(c *gin.Context) {
	user, ok := h.owner(c)
	if !ok {
		return
	}

	email := c.PostForm("email")
	if err := db.DB.Model(user).Update("email", email).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to update email")
		return
	}
	user.Email = email

	Render(c, http.StatusOK, "accounts/detail.html", gin.H{
		"Title": user.Username,
		"User":  user,
	})
}
