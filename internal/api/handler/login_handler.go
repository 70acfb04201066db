package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techchallenge/user-service/internal/core/ports"
)

type LoginHandler struct {
	service ports.LoginService
}

func NewLoginHandler(service ports.LoginService) *LoginHandler {
	return &LoginHandler{service: service}
}

// Login checks a login and password pair. No session or token is issued.
//
// @Summary      Validate credentials
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  Problem
// @Router       /login [post]
func (h *LoginHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.ValidateLogin(c.Request().Context(), req.Login, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Status: "success", Message: "Login successful."})
}
