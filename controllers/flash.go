package controllers

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "slugpress_flash"

// Flash is a one-shot message shown on the next rendered page. Link, when
// set, is rendered as an anchor after the message (used by deploy to link the
// fresh article).
type Flash struct {
	Category string `json:"category"` // "success" or "danger"
	Message  string `json:"message"`
	Link     string `json:"link,omitempty"`
}

// setFlash stores a flash message in a cookie consumed by the next render.
func setFlash(c *gin.Context, flash Flash) {
	payload, err := json.Marshal(flash)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(payload), 60, "/", "", false, true)
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	payload, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}
