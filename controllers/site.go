package controllers

import (
	"net/http"

	"slugpress/auth"

	"github.com/gin-gonic/gin"
)

const logoText = "My Logo"

// render merges the keys every template expects (logo, identity, flash) into
// the page data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["LogoText"]; !ok {
		data["LogoText"] = logoText
	}
	if id, ok := auth.IdentityFrom(c); ok {
		data["User"] = id
	}
	if flash := popFlash(c); flash != nil {
		if _, ok := data["Flash"]; !ok {
			data["Flash"] = flash
		}
	}
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", nil)
}

// Static landing pages.

func Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

func About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

func Services(c *gin.Context) {
	render(c, http.StatusOK, "services.html", nil)
}

func Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}
