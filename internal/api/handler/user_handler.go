package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techchallenge/user-service/internal/core/ports"
)

// UserHandler exposes the user lifecycle over HTTP. Errors are returned to
// Echo and rendered by the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a client or restaurant owner.
//
// @Summary      Register a user
// @Description  The email must not belong to any other user. The password is stored hashed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User to register"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  Problem
// @Failure      409   {object}  Problem
// @Failure      500   {object}  Problem
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(*user))
}

// FindByName lists users whose name contains the query, ignoring case.
//
// @Summary      Search users by name
// @Tags         users
// @Produce      json
// @Param        name  query     string  false  "Name fragment; empty lists everyone"
// @Success      200   {array}   userResponse
// @Failure      500   {object}  Problem
// @Router       /users [get]
func (h *UserHandler) FindByName(c echo.Context) error {
	users, err := h.service.FindByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// UpdateData replaces name, email, login and address. The password is not
// touched here.
//
// @Summary      Update profile data
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "New profile data"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  Problem
// @Failure      404   {object}  Problem
// @Failure      409   {object}  Problem
// @Router       /users/{id}/data [put]
func (h *UserHandler) UpdateData(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

// ChangePassword swaps the password after checking the current one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Param        id    path  string                 true  "User ID"
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400   {object}  Problem
// @Failure      404   {object}  Problem
// @Router       /users/{id}/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.ChangePassword(c.Request().Context(), c.Param("id"), req.toInput()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user permanently.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  Problem
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// bindAndValidate decodes the JSON body into req and runs the registered
// validator. Decoding failures surface as echo 400 errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON request body").SetInternal(err)
	}
	return c.Validate(req)
}
