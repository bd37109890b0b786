package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fun2learn/fun2learn-web/internal/backend"
	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/forms"
	"github.com/fun2learn/fun2learn-web/internal/session"
)

// AuthHandler serves the login and signup screens and owns the session
// cookie lifecycle.
type AuthHandler struct {
	auth     backend.AuthAPI
	sessions session.Store
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAuthHandler builds an auth handler instance.
func NewAuthHandler(auth backend.AuthAPI, sessions session.Store, validate *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		validate: validate,
		logger:   logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches the routes to the provided router.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Get("/", h.root)
	router.Get("/home", h.home)
	router.Get("/login", h.loginPage)
	router.Post("/login", h.login)
	router.Get("/signup", h.signupPage)
	router.Post("/signup", h.signup)
	router.Post("/logout", h.logout)
}

func (h *AuthHandler) root(c *fiber.Ctx) error {
	return c.Redirect("/home", fiber.StatusSeeOther)
}

// home dispatches the signed-in user to their role's landing page. A failed
// profile fetch means the token is stale, so the session is dropped.
func (h *AuthHandler) home(c *fiber.Ctx) error {
	token := h.sessions.Token(c)
	user, err := h.auth.Me(c.UserContext(), token)
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Msg("profile fetch failed, clearing session")
		h.sessions.Clear(c)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if user.Role == "tutor" {
		return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
	}
	return c.Redirect("/student/mycourses", fiber.StatusSeeOther)
}

func (h *AuthHandler) loginPage(c *fiber.Ctx) error {
	return c.Render("login", pageData(c, "Log in", fiber.Map{}))
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var form forms.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Render("login", pageData(c, "Log in", fiber.Map{
			"Error": "Please check the form and try again",
		}))
	}
	form.Trim()

	if err := h.validate.Struct(form); err != nil {
		return c.Render("login", pageData(c, "Log in", fiber.Map{
			"Error": forms.Message(err),
			"Email": form.Email,
		}))
	}

	resp, err := h.auth.Login(c.UserContext(), dto.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Str("email", form.Email).Msg("login rejected")
		return c.Render("login", pageData(c, "Log in", fiber.Map{
			"Error": backend.MessageOf(err, "Login failed"),
			"Email": form.Email,
		}))
	}

	h.sessions.Set(c, resp.AccessToken)
	return c.Redirect("/home", fiber.StatusSeeOther)
}

func (h *AuthHandler) signupPage(c *fiber.Ctx) error {
	return c.Render("signup", pageData(c, "Sign up", fiber.Map{
		"Form": forms.SignupForm{},
	}))
}

func (h *AuthHandler) signup(c *fiber.Ctx) error {
	var form forms.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return c.Render("signup", pageData(c, "Sign up", fiber.Map{
			"Error": "Please check the form and try again",
			"Form":  form,
		}))
	}
	form.Trim()

	if err := h.validate.Struct(form); err != nil {
		return c.Render("signup", pageData(c, "Sign up", fiber.Map{
			"Error": forms.Message(err),
			"Form":  form,
		}))
	}

	_, err := h.auth.Signup(c.UserContext(), dto.SignupRequest{
		Email:    form.Email,
		Password: form.Password,
		FullName: form.FullName,
		Birthday: form.Birthday,
		Gender:   form.Gender,
		Role:     form.Role,
	})
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Str("email", form.Email).Msg("signup rejected")
		return c.Render("signup", pageData(c, "Sign up", fiber.Map{
			"Error": backend.MessageOf(err, "Signup failed"),
			"Form":  form,
		}))
	}

	setFlash(c, flashSuccess, "Account created. Log in to get started.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
