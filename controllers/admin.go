package controllers

import (
	"errors"
	"net/http"

	"slugpress/auth"
	"slugpress/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController serves the admin login and the system-wide article listing.
type AdminController struct {
	userService    services.UserService
	articleService services.ArticleService
	logger         *zap.Logger
}

// NewAdminController creates a new AdminController instance
func NewAdminController(userService services.UserService, articleService services.ArticleService, logger *zap.Logger) *AdminController {
	return &AdminController{userService: userService, articleService: articleService, logger: logger}
}

// ShowLogin handles GET /admin/login
func (ctl *AdminController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", gin.H{"Form": &LoginForm{}, "Errors": map[string]string{}})
}

// Login handles POST /admin/login. It authenticates like the user login; the
// dashboard itself is what the admin role gates.
func (ctl *AdminController) Login(c *gin.Context) {
	form := &LoginForm{}
	if err := c.ShouldBind(form); err != nil {
		render(c, http.StatusBadRequest, "admin_login.html", gin.H{"Form": form, "Errors": map[string]string{"form": "Invalid form submission"}})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "admin_login.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	user, err := ctl.userService.Verify(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			render(c, http.StatusOK, "admin_login.html", gin.H{
				"Form":   form,
				"Errors": map[string]string{},
				"Flash":  &Flash{Category: "danger", Message: "Invalid credentials"},
			})
			return
		}
		ctl.logger.Error("admin login failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := auth.IssueSession(c, user); err != nil {
		ctl.logger.Error("issuing session failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// Dashboard handles GET /admin: every article in the system, all users.
func (ctl *AdminController) Dashboard(c *gin.Context) {
	articles, err := ctl.articleService.ListAll(c.Request.Context())
	if err != nil {
		ctl.logger.Error("listing all articles failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, http.StatusOK, "admin_dashboard.html", gin.H{"Articles": articles})
}
