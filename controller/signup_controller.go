package controller

import (
	"net/http"
	"strings"

	"frontend/model"
	"frontend/service"
	"frontend/session"
	"frontend/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SignupController struct {
	userSvc service.UserService
}

func NewSignupController(userSvc service.UserService) *SignupController {
	return &SignupController{userSvc: userSvc}
}

func (ctrl *SignupController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", ctrl.showForm)
	router.POST("/signup", ctrl.signup)
}

type signupPage struct {
	Email string
	Error string
}

// showForm renders the signup screen, or skips past it when a session already
// exists. Re-entry is idempotent: an authenticated visit never re-renders the
// form.
func (ctrl *SignupController) showForm(c *gin.Context) {
	if _, ok := session.Get(c); ok {
		c.Redirect(http.StatusFound, "/stocks")
		return
	}

	c.HTML(http.StatusOK, "signup.html", signupPage{})
}

// signup validates the address, registers the user and stores the returned
// identifier. A validation failure blocks the network call entirely; any
// failure leaves the form editable with the input retained.
func (ctrl *SignupController) signup(c *gin.Context) {
	var form model.SignupForm
	_ = c.ShouldBind(&form)
	email := strings.TrimSpace(form.Email)

	if !validator.ValidateEmail(email) {
		c.HTML(http.StatusOK, "signup.html", signupPage{Email: email, Error: msgEmailInvalid})
		return
	}

	id, err := ctrl.userSvc.Register(c.Request.Context(), email)
	if err != nil {
		log.Error().Err(err).Msg("registration failed")
		c.HTML(http.StatusOK, "signup.html", signupPage{Email: email, Error: msgRegisterFailed})
		return
	}

	session.Set(c, id)
	c.Redirect(http.StatusSeeOther, "/stocks")
}
