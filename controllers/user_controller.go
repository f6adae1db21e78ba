package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontend-go/config"
	"frontend-go/middleware"
	"frontend-go/models"
	"frontend-go/services"
)

func redirectToUsers(c *gin.Context) {
	target := "/users"
	if q := c.PostForm("query"); q != "" {
		target += "?" + q
	}
	c.Redirect(http.StatusSeeOther, target)
}

func renderUsers(c *gin.Context, status int, filters models.ListFilters, resp models.UserListResponse, extra gin.H) {
	data := gin.H{
		"Path":       "/users",
		"Noun":       "pengguna",
		"Filters":    filters,
		"Users":      resp.Data,
		"Stats":      resp.Stats,
		"Pagination": resp.Pagination,
		"Query":      filters.Params().Encode(),
	}
	// keys the template dereferences unconditionally
	data["Form"] = models.UserForm{}
	data["FieldErrors"] = map[string]string{}
	data["FormError"] = ""
	data["OpenModal"] = ""
	for k, v := range extra {
		data[k] = v
	}
	render(c, status, "users.html", data)
}

// UsersList renders the account administration view
func UsersList(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	filters := models.NewUserFilters()
	filters.FromQuery(c.Request.URL.Query())

	resp, err := services.GetAllUsers(c.Request.Context(), session.Token, filters)
	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		config.Log.WithError(err).Error("Gagal memuat daftar pengguna")
		renderUsers(c, http.StatusOK, filters, models.UserListResponse{}, gin.H{
			"Flash": "Gagal memuat data pengguna: " + err.Error(),
		})
		return
	}

	renderUsers(c, http.StatusOK, filters, resp, nil)
}

func userFormFrom(c *gin.Context) models.UserForm {
	return models.UserForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
		Role:     c.PostForm("role"),
	}
}

func avatarUpload(c *gin.Context) *services.FileUpload {
	if file, err := c.FormFile("avatar"); err == nil {
		return &services.FileUpload{Field: "avatar", File: file}
	}
	return nil
}

func rerenderUserModal(c *gin.Context, modal string, form models.UserForm, fieldErrors map[string]string, generalError string) {
	session := middleware.SessionFromContext(c)

	filters := models.NewUserFilters()
	filters.FromQuery(c.Request.URL.Query())

	resp, err := services.GetAllUsers(c.Request.Context(), session.Token, filters)
	if err != nil && middleware.LogoutOn401(c, err) {
		return
	}

	renderUsers(c, http.StatusBadRequest, filters, resp, gin.H{
		"OpenModal":   modal,
		"Form":        form,
		"FieldErrors": fieldErrors,
		"FormError":   generalError,
	})
}

// CreateUser adds an account from the users view (goes through the
// register endpoint, like the source did)
func CreateUser(c *gin.Context) {
	form := userFormFrom(c)

	if fieldErrors := form.Validate(true); len(fieldErrors) > 0 {
		rerenderUserModal(c, "add", form, fieldErrors, "")
		return
	}

	session := middleware.SessionFromContext(c)
	if err := services.CreateUser(c.Request.Context(), session.Token, form, avatarUpload(c)); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		if isConflict(err.Error()) {
			rerenderUserModal(c, "add", form, nil, "Username atau email sudah digunakan")
		} else {
			rerenderUserModal(c, "add", form, nil, "Error membuat pengguna: "+err.Error())
		}
		return
	}

	setFlash(c, "Pengguna berhasil ditambahkan")
	redirectToUsers(c)
}

// UpdateUser edits an account
func UpdateUser(c *gin.Context) {
	form := userFormFrom(c)

	if fieldErrors := form.Validate(false); len(fieldErrors) > 0 {
		rerenderUserModal(c, "edit-"+c.Param("id"), form, fieldErrors, "")
		return
	}

	session := middleware.SessionFromContext(c)
	if err := services.UpdateUser(c.Request.Context(), session.Token, c.Param("id"), form, avatarUpload(c)); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		rerenderUserModal(c, "edit-"+c.Param("id"), form, nil, "Error memperbarui pengguna: "+err.Error())
		return
	}

	setFlash(c, "Pengguna berhasil diperbarui")
	redirectToUsers(c)
}

// DeleteUser removes an account
func DeleteUser(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := services.DeleteUser(c.Request.Context(), session.Token, c.Param("id")); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		setFlash(c, "Error menghapus pengguna: "+err.Error())
		redirectToUsers(c)
		return
	}

	setFlash(c, "Pengguna berhasil dihapus")
	redirectToUsers(c)
}

// Profile renders the logged-in account
func Profile(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	profile, err := services.GetProfile(c.Request.Context(), session.Token)
	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		config.Log.WithError(err).Error("Gagal memuat profil")
		render(c, http.StatusOK, "profile.html", gin.H{
			"Flash": "Gagal memuat profil: " + err.Error(),
		})
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"Profile":     profile,
		"FieldErrors": map[string]string{},
	})
}

// UpdateProfile edits the logged-in account (multipart, avatar optional)
func UpdateProfile(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	form := userFormFrom(c)

	if fieldErrors := form.Validate(false); len(fieldErrors) > 0 {
		render(c, http.StatusBadRequest, "profile.html", gin.H{
			"Profile":     models.User{ID: session.ID, Username: form.Username, Email: form.Email, Role: session.Role},
			"FieldErrors": fieldErrors,
		})
		return
	}

	if err := services.UpdateUser(c.Request.Context(), session.Token, session.ID, form, avatarUpload(c)); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		render(c, http.StatusBadRequest, "profile.html", gin.H{
			"Profile":     models.User{ID: session.ID, Username: form.Username, Email: form.Email, Role: session.Role},
			"FormError":   err.Error(),
			"FieldErrors": map[string]string{},
		})
		return
	}

	// keep the displayed identity in sync with what was saved
	session.Username = form.Username
	session.Email = form.Email
	if err := middleware.SaveSession(c, session); err != nil {
		config.Log.WithError(err).Warn("Gagal memperbarui sesi setelah edit profil")
	}

	setFlash(c, "Profil berhasil diperbarui")
	c.Redirect(http.StatusSeeOther, "/profile")
}
