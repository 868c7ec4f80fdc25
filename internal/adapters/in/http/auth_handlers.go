package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// LoginCustomer handles POST /api/v1/auth/liff - verifies the LIFF ID token
// and opens a customer session.
func (s *Server) LoginCustomer(ctx echo.Context) error {
	var body servers.LoginCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewLoginCustomerCommand(body.IdToken)
	if err != nil {
		return err
	}

	c, err := s.commands.LoginCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	cookie, err := s.sessions.Issue(Principal{ID: c.ID(), Role: RoleCustomer})
	if err != nil {
		return err
	}
	ctx.SetCookie(cookie)

	return ctx.JSON(http.StatusOK, customerFromDomain(c))
}

// GetSession handles GET /api/v1/auth/liff. Sessions of customers that were
// deleted or deactivated since sign-in are dropped with a 401.
func (s *Server) GetSession(ctx echo.Context) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerQuery(p.ID)
	if err != nil {
		return err
	}

	view, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrForbidden) || errors.Is(err, errs.ErrObjectNotFound) {
		ctx.SetCookie(s.sessions.Expired(RoleCustomer))
		return errs.NewUnauthorizedErrorWithCause("session is no longer valid", err)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, customerFromView(view))
}

// Logout handles DELETE /api/v1/auth/liff.
func (s *Server) Logout(ctx echo.Context) error {
	ctx.SetCookie(s.sessions.Expired(RoleCustomer))
	return ctx.JSON(http.StatusOK, servers.LogoutResponse{Success: true})
}

// GetCurrentCustomer handles GET /api/v1/customers/me.
func (s *Server) GetCurrentCustomer(ctx echo.Context) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerQuery(p.ID)
	if err != nil {
		return err
	}

	view, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, customerFromView(view))
}

// StaffLogin handles POST /api/v1/admin/login.
func (s *Server) StaffLogin(ctx echo.Context) error {
	var body servers.StaffLoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	account, err := s.commands.AuthenticateStaff.Handle(
		ctx.Request().Context(),
		commands.NewAuthenticateStaffCommand(body.Email, body.Password),
	)
	if err != nil {
		return err
	}

	cookie, err := s.sessions.Issue(Principal{ID: account.ID(), Role: RoleStaff, Email: account.Email()})
	if err != nil {
		return err
	}
	ctx.SetCookie(cookie)

	return ctx.JSON(http.StatusOK, servers.StaffUser{Id: account.ID().Bytes(), Email: account.Email()})
}

// StaffLogout handles DELETE /api/v1/admin/login.
func (s *Server) StaffLogout(ctx echo.Context) error {
	ctx.SetCookie(s.sessions.Expired(RoleStaff))
	return ctx.JSON(http.StatusOK, servers.LogoutResponse{Success: true})
}
