package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"slugpress/auth"
	"slugpress/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleController serves deploy/edit/delete for owners and the public slug
// view.
type ArticleController struct {
	articleService services.ArticleService
	logger         *zap.Logger
}

// NewArticleController creates a new ArticleController instance
func NewArticleController(articleService services.ArticleService, logger *zap.Logger) *ArticleController {
	return &ArticleController{articleService: articleService, logger: logger}
}

// ShowDeploy handles GET /user/deploy
func (ctl *ArticleController) ShowDeploy(c *gin.Context) {
	render(c, http.StatusOK, "deploy.html", gin.H{"Form": &DeployForm{}, "Errors": map[string]string{}})
}

// Deploy handles POST /user/deploy
func (ctl *ArticleController) Deploy(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/user/login")
		return
	}

	form := &DeployForm{}
	if err := c.ShouldBind(form); err != nil {
		render(c, http.StatusBadRequest, "deploy.html", gin.H{"Form": form, "Errors": map[string]string{"form": "Invalid form submission"}})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		// Validation failure re-renders the form; nothing was inserted.
		render(c, http.StatusOK, "deploy.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	article, err := ctl.articleService.Deploy(c.Request.Context(), id.UserID, form.Title, form.Name, form.Company, form.Content)
	if err != nil {
		ctl.logger.Error("deploy failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	setFlash(c, Flash{
		Category: "success",
		Message:  "Article deployed successfully! View it",
		Link:     "/article/" + article.Slug,
	})
	c.Redirect(http.StatusFound, "/user/dashboard")
}

// ShowEdit handles GET /user/edit/:id
func (ctl *ArticleController) ShowEdit(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/user/login")
		return
	}
	articleID, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	article, err := ctl.articleService.GetByID(c.Request.Context(), articleID)
	if err != nil {
		ctl.handleLookupError(c, err)
		return
	}
	if article.UserID != id.UserID {
		// Deliberately indistinguishable from success: no 403 leaks whether
		// the article belongs to someone else.
		c.Redirect(http.StatusFound, "/user/dashboard")
		return
	}

	form := &EditForm{Title: article.Title, Content: article.Content}
	render(c, http.StatusOK, "edit.html", gin.H{"Form": form, "Errors": map[string]string{}, "ArticleID": article.ID})
}

// Edit handles POST /user/edit/:id
func (ctl *ArticleController) Edit(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/user/login")
		return
	}
	articleID, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	form := &EditForm{}
	if err := c.ShouldBind(form); err != nil {
		render(c, http.StatusBadRequest, "edit.html", gin.H{"Form": form, "Errors": map[string]string{"form": "Invalid form submission"}, "ArticleID": articleID})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "edit.html", gin.H{"Form": form, "Errors": errs, "ArticleID": articleID})
		return
	}

	_, err := ctl.articleService.Edit(c.Request.Context(), id.UserID, articleID, form.Title, form.Content)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.Redirect(http.StatusFound, "/user/dashboard")
			return
		}
		ctl.handleLookupError(c, err)
		return
	}

	setFlash(c, Flash{Category: "success", Message: "Article updated successfully!"})
	c.Redirect(http.StatusFound, "/user/dashboard")
}

// Delete handles POST /user/delete/:id. A non-owner gets the same redirect as
// a successful delete, with the row left untouched.
func (ctl *ArticleController) Delete(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/user/login")
		return
	}
	articleID, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	err := ctl.articleService.Delete(c.Request.Context(), id.UserID, articleID)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.Redirect(http.StatusFound, "/user/dashboard")
			return
		}
		ctl.handleLookupError(c, err)
		return
	}

	setFlash(c, Flash{Category: "success", Message: "Article deleted successfully!"})
	c.Redirect(http.StatusFound, "/user/dashboard")
}

// View handles GET /article/:slug, the public article page. The page logo
// shows the article's company.
func (ctl *ArticleController) View(c *gin.Context) {
	article, err := ctl.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		ctl.handleLookupError(c, err)
		return
	}
	render(c, http.StatusOK, "article.html", gin.H{"Article": article, "LogoText": article.Company})
}

func (ctl *ArticleController) handleLookupError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		renderNotFound(c)
		return
	}
	ctl.logger.Error("article lookup failed", zap.Error(err))
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func parseID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(raw), true
}
