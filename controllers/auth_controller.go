package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"framekart-io/api/configs"
	"framekart-io/api/helper"
	"framekart-io/api/middleware"
	"framekart-io/api/models"
	"framekart-io/api/services"
)

const authRequestTimeout = 20 * time.Second

// Login runs a login attempt through the auth state machine and, on
// success, answers with the user and a signed session token.
func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authRequestTimeout)
		defer cancel()

		var body models.LoginBody
		if err := c.BindJSON(&body); err != nil {
			log.Printf("Error binding request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}
		if err := validate.Struct(&body); err != nil {
			log.Printf("Error validating request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}

		sess := services.NewSession()
		user, err := auth.Login(ctx, sess, body.Email, body.Password)
		switch {
		case errors.Is(err, services.ErrAuthInProgress):
			helper.HandleError(c, http.StatusConflict, err, "a login attempt is already in progress")
			return
		case errors.Is(err, services.ErrInvalidCredentials):
			helper.HandleError(c, http.StatusUnauthorized, err, "invalid email or password")
			return
		case err != nil:
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to login right now")
			return
		}

		respondWithSession(c, sess, user)
	}
}

// Signup registers a new account. Password strength and email format are
// enforced here at the request boundary, not inside the state machine.
func Signup(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authRequestTimeout)
		defer cancel()

		var body models.SignupBody
		if err := c.BindJSON(&body); err != nil {
			log.Printf("Error binding request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}
		if err := validate.Struct(&body); err != nil {
			log.Printf("Error validating request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}
		if err := configs.ValidateEmailAddress(body.Email); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid email address")
			return
		}
		if err := configs.ValidatePassword(body.Password); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}

		sess := services.NewSession()
		user, err := auth.Signup(ctx, sess, body.Email, body.Password, body.Name)
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			helper.HandleError(c, http.StatusConflict, err, "an account with this email already exists")
			return
		case errors.Is(err, services.ErrAuthInProgress):
			helper.HandleError(c, http.StatusConflict, err, "a signup attempt is already in progress")
			return
		case err != nil:
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to sign up right now")
			return
		}

		respondWithSession(c, sess, user)
	}
}

// Logout drops the session to anonymous, clears its persisted record and
// blacklists the presented token.
func Logout(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authRequestTimeout)
		defer cancel()

		sessionID := c.GetString(middleware.SessionIDKey)
		sess, err := auth.Restore(ctx, sessionID)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to logout right now")
			return
		}

		if err := auth.Logout(ctx, sess); err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to logout right now")
			return
		}

		if configs.REDIS != nil {
			if err := helper.InvalidateToken(configs.REDIS, configs.ExtractToken(c), configs.SessionTTL()); err != nil {
				log.Printf("blacklisting session token: %s", err)
			}
		}

		helper.HandleSuccess(c, http.StatusOK, "logged out successfully", nil)
	}
}

// Me restores the session from the store and reports its auth state. A
// missing or unreadable record comes back anonymous, not as an error.
func Me(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authRequestTimeout)
		defer cancel()

		sess, err := auth.Restore(ctx, c.GetString(middleware.SessionIDKey))
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "unable to load session")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "session retrieved successfully", sess.State())
	}
}

func respondWithSession(c *gin.Context, sess *services.Session, user models.User) {
	token, expiresAt, err := configs.GenerateSessionToken(sess.ID, user)
	if err != nil {
		helper.HandleError(c, http.StatusInternalServerError, err, "unable to issue session token")
		return
	}

	helper.HandleSuccess(c, http.StatusOK, "authenticated successfully", gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}
