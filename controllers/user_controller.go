package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"framekart-io/api/helper"
	"framekart-io/api/middleware"
	"framekart-io/api/models"
	"framekart-io/api/services"
)

// UpdateMe applies a partial profile update to the authenticated user.
func UpdateMe(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authRequestTimeout)
		defer cancel()

		var body models.UpdateUserBody
		if err := c.BindJSON(&body); err != nil {
			log.Printf("Error binding request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}

		sess, err := auth.Restore(ctx, c.GetString(middleware.SessionIDKey))
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to load session")
			return
		}

		user, err := auth.UpdateUser(ctx, sess, body)
		if errors.Is(err, services.ErrNotAuthenticated) {
			helper.HandleError(c, http.StatusUnauthorized, err, "not authenticated")
			return
		}
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to update profile")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "profile updated successfully", user)
	}
}

// UploadAvatar pushes an avatar image to the media host and stores the
// hosted URL on the authenticated user. The image comes either from a
// multipart "avatar" field or, with ?remote_addr=, from a remote URL.
func UploadAvatar(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authRequestTimeout)
		defer cancel()

		sess, err := auth.Restore(ctx, c.GetString(middleware.SessionIDKey))
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to load session")
			return
		}
		if sess.User() == nil {
			helper.HandleError(c, http.StatusUnauthorized, services.ErrNotAuthenticated, "not authenticated")
			return
		}
		previous := sess.User().Avatar

		var uploadRes uploader.UploadResult
		if remoteAddr := c.Query("remote_addr"); remoteAddr != "" {
			uploadRes, err = services.RemoteUpload(models.Url{Url: remoteAddr})
			if err != nil {
				helper.HandleError(c, http.StatusInternalServerError, err, "unable to import remote avatar")
				return
			}
		} else {
			formFile, _, err := c.Request.FormFile("avatar")
			if err != nil {
				helper.HandleError(c, http.StatusBadRequest, err, "avatar file is required")
				return
			}
			defer formFile.Close()

			uploadRes, err = services.FileUpload(models.File{File: formFile})
			if err != nil {
				helper.HandleError(c, http.StatusInternalServerError, err, "unable to upload avatar")
				return
			}
		}

		user, err := auth.UpdateUser(ctx, sess, models.UpdateUserBody{Avatar: &uploadRes.SecureURL})
		if err != nil {
			// orphaned upload, remove it
			if _, destroyErr := services.DestroyMedia(uploadRes.PublicID); destroyErr != nil {
				log.Println(destroyErr)
			}
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to update profile")
			return
		}

		if publicID := services.PublicIDFromURL(previous); publicID != "" {
			if _, err := services.DestroyMedia(publicID); err != nil {
				log.Printf("failed to remove replaced avatar: %v", err)
			}
		}

		helper.HandleSuccess(c, http.StatusOK, "avatar updated successfully", user)
	}
}
