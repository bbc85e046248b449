package router

import (
	"net/http"

	"github.com/mateusfonseca/dorsetMusicCollection/internal/handlers"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP surface. gin's tree cannot hold a static
// segment ("create", "signup") next to a wildcard (":id") at the same level,
// so those routes share the wildcard slot and dispatch on the parameter
// value; the trailing-slash variants of every path are handled by gin's
// default redirect.
func RegisterRoutes(r *gin.Engine, pollHandler *handlers.PollHandler, accountHandler *handlers.AccountHandler, authHandler *handlers.AuthHandler) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/polls")
	})

	// Session auth
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Polls
	polls := r.Group("/polls")
	{
		polls.GET("", pollHandler.Index)
		polls.GET("/:id", pollHandler.Show)    // detail, or the create form when :id == "create"
		polls.POST("/:id", pollHandler.Submit) // create submission
		polls.GET("/:id/results", pollHandler.Results)
		polls.POST("/:id/vote", middleware.AuthRequired(), pollHandler.Vote)
	}

	// Accounts
	accounts := r.Group("/accounts")
	{
		accounts.GET("/:id", func(c *gin.Context) {
			if c.Param("id") == "signup" {
				accountHandler.ShowSignup(c)
				return
			}
			handlers.RenderError(c, http.StatusNotFound, "Page not found")
		})
		accounts.POST("/:id", func(c *gin.Context) {
			if c.Param("id") == "signup" {
				accountHandler.Signup(c)
				return
			}
			handlers.RenderError(c, http.StatusNotFound, "Page not found")
		})

		owned := accounts.Group("/:id", middleware.AuthRequired())
		{
			owned.GET("/detail", accountHandler.Detail)
			owned.GET("/delete", accountHandler.ShowDelete)
			owned.POST("/delete", accountHandler.Delete)
			owned.GET("/detail/email", accountHandler.ShowUpdateEmail)
			owned.POST("/detail/email", accountHandler.UpdateEmail)
		}
	}
}
