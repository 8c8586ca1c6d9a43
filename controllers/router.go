package controllers

import (
	"slugpress/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full HTTP surface onto the engine. The engine must
// already carry the auth.CurrentUser middleware so handlers can read the
// session identity.
func RegisterRoutes(r *gin.Engine, userCtl *UserController, articleCtl *ArticleController, adminCtl *AdminController) {
	r.GET("/", Index)
	r.GET("/about", About)
	r.GET("/services", Services)
	r.GET("/contact", Contact)

	r.GET("/article/:slug", articleCtl.View)

	userRoutes := r.Group("/user")
	{
		userRoutes.GET("/register", userCtl.ShowRegister)
		userRoutes.POST("/register", userCtl.Register)
		userRoutes.GET("/login", userCtl.ShowLogin)
		userRoutes.POST("/login", userCtl.Login)
		userRoutes.GET("/logout", userCtl.Logout)

		protected := userRoutes.Group("")
		protected.Use(auth.RequireUser())
		{
			protected.GET("/dashboard", userCtl.Dashboard)
			protected.GET("/deploy", articleCtl.ShowDeploy)
			protected.POST("/deploy", articleCtl.Deploy)
			protected.GET("/edit/:id", articleCtl.ShowEdit)
			protected.POST("/edit/:id", articleCtl.Edit)
			protected.POST("/delete/:id", articleCtl.Delete)
		}
	}

	adminRoutes := r.Group("/admin")
	{
		adminRoutes.GET("/login", adminCtl.ShowLogin)
		adminRoutes.POST("/login", adminCtl.Login)
		adminRoutes.GET("", auth.RequireAdmin(), adminCtl.Dashboard)
	}

	r.NoRoute(renderNotFound)
}
