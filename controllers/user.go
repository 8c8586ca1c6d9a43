package controllers

import (
	"errors"
	"net/http"

	"slugpress/auth"
	"slugpress/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserController serves registration, login/logout and the dashboard.
type UserController struct {
	userService    services.UserService
	articleService services.ArticleService
	logger         *zap.Logger
}

// NewUserController creates a new UserController instance
func NewUserController(userService services.UserService, articleService services.ArticleService, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, articleService: articleService, logger: logger}
}

// ShowRegister handles GET /user/register
func (ctl *UserController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Form": &RegisterForm{}, "Errors": map[string]string{}})
}

// Register handles POST /user/register
func (ctl *UserController) Register(c *gin.Context) {
	form := &RegisterForm{}
	if err := c.ShouldBind(form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"Form": form, "Errors": map[string]string{"form": "Invalid form submission"}})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "register.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	_, err := ctl.userService.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			render(c, http.StatusOK, "register.html", gin.H{
				"Form":   form,
				"Errors": map[string]string{"username": "Username already taken"},
			})
			return
		}
		ctl.logger.Error("registration failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, "/user/login")
}

// ShowLogin handles GET /user/login
func (ctl *UserController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Form": &LoginForm{}, "Errors": map[string]string{}})
}

// Login handles POST /user/login
func (ctl *UserController) Login(c *gin.Context) {
	form := &LoginForm{}
	if err := c.ShouldBind(form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Form": form, "Errors": map[string]string{"form": "Invalid form submission"}})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "login.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	user, err := ctl.userService.Verify(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// One generic message for unknown user and wrong password alike.
			render(c, http.StatusOK, "login.html", gin.H{
				"Form":   form,
				"Errors": map[string]string{},
				"Flash":  &Flash{Category: "danger", Message: "Invalid credentials"},
			})
			return
		}
		ctl.logger.Error("login failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := auth.IssueSession(c, user); err != nil {
		ctl.logger.Error("issuing session failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/user/dashboard")
}

// Logout handles GET /user/logout
func (ctl *UserController) Logout(c *gin.Context) {
	auth.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// Dashboard handles GET /user/dashboard, listing the caller's own articles.
func (ctl *UserController) Dashboard(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/user/login")
		return
	}

	articles, err := ctl.articleService.ListByUser(c.Request.Context(), id.UserID)
	if err != nil {
		ctl.logger.Error("listing dashboard articles failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{"Articles": articles})
}
