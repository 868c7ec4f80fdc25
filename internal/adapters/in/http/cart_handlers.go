package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const defaultAddQuantity = 1

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(p.ID)
	if err != nil {
		return err
	}

	view, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cartFromView(view))
}

// AddCartItem handles POST /api/v1/cart - adds a product or increments the
// line that already holds it.
func (s *Server) AddCartItem(ctx echo.Context) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	var body servers.AddCartItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	productID, err := parseID("productId", body.ProductId)
	if err != nil {
		return err
	}
	quantity := defaultAddQuantity
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	cmd, err := commands.NewAddCartItemCommand(p.ID, productID, quantity)
	if err != nil {
		return err
	}

	line, err := s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, cartItemFromLine(line))
}

// UpdateCartItem handles PATCH /api/v1/cart/{id}.
func (s *Server) UpdateCartItem(ctx echo.Context, id servers.ID) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	itemID, err := parseID("id", id)
	if err != nil {
		return err
	}

	var body servers.UpdateCartItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(p.ID, itemID, body.Quantity)
	if err != nil {
		return err
	}

	line, err := s.commands.UpdateCartItemQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cartItemFromLine(line))
}

// RemoveCartItem handles DELETE /api/v1/cart/{id}.
func (s *Server) RemoveCartItem(ctx echo.Context, id servers.ID) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	itemID, err := parseID("id", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(p.ID, itemID)
	if err != nil {
		return err
	}

	if err = s.commands.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
