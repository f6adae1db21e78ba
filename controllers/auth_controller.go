package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontend-go/middleware"
	"frontend-go/models"
	"frontend-go/services"
)

// ShowLogin renders the login form, skipping straight to the books view
// for an already authenticated visitor
func ShowLogin(c *gin.Context) {
	if _, state := middleware.CurrentSession(c); state == models.StateAuthenticated {
		c.Redirect(http.StatusSeeOther, "/data")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Username": ""})
}

// Login handles the login form submission
func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Error":    "Username dan password wajib diisi",
			"Username": username,
		})
		return
	}

	result := services.Login(c.Request.Context(), username, password)
	if !result.Success {
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Error":    result.Message,
			"Username": username,
		})
		return
	}

	if err := middleware.SaveSession(c, result.Session); err != nil {
		render(c, http.StatusInternalServerError, "login.html", gin.H{
			"Error":    "Gagal menyimpan sesi",
			"Username": username,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/data")
}

// ShowRegister renders the registration form
func ShowRegister(c *gin.Context) {
	if _, state := middleware.CurrentSession(c); state == models.StateAuthenticated {
		c.Redirect(http.StatusSeeOther, "/data")
		return
	}
	render(c, http.StatusOK, "register.html", gin.H{
		"Form":        models.UserForm{},
		"FieldErrors": map[string]string{},
	})
}

// Register handles the registration form (multipart, avatar optional)
func Register(c *gin.Context) {
	form := models.UserForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}

	if errors := form.Validate(true); len(errors) > 0 {
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"FieldErrors": errors,
			"Form":        form,
		})
		return
	}

	var avatar *services.FileUpload
	if file, err := c.FormFile("avatar"); err == nil {
		avatar = &services.FileUpload{Field: "avatar", File: file}
	}

	result := services.Register(c.Request.Context(), form, avatar)
	if !result.Success {
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"Error":       result.Message,
			"Form":        form,
			"FieldErrors": map[string]string{},
		})
		return
	}

	if err := middleware.SaveSession(c, result.Session); err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{
			"Error":       "Gagal menyimpan sesi",
			"Form":        form,
			"FieldErrors": map[string]string{},
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/data")
}

// Logout clears the session and returns to the login view
func Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
