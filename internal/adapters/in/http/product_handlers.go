package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products - the active menu.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query, err := queries.NewListMenuProductsQuery(deref(params.Category))
	if err != nil {
		return err
	}

	views, err := s.queries.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productsFromViews(views))
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(ctx echo.Context, id servers.ID) error {
	productID, err := parseID("id", id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return err
	}

	view, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productFromView(view))
}

// AdminListProducts handles GET /api/v1/admin/products - every product,
// newest first.
func (s *Server) AdminListProducts(ctx echo.Context, params servers.AdminListProductsParams) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	query, err := queries.NewListAllProductsQuery(deref(params.Category))
	if err != nil {
		return err
	}

	views, err := s.queries.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productsFromViews(views))
}

// AdminCreateProduct handles POST /api/v1/admin/products.
func (s *Server) AdminCreateProduct(ctx echo.Context) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	var body servers.AdminCreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	details, err := productDetails(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), details)
	if err != nil {
		return err
	}

	p, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(p))
}

// AdminUpdateProduct handles PUT /api/v1/admin/products/{id}.
func (s *Server) AdminUpdateProduct(ctx echo.Context, id servers.ID) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	productID, err := parseID("id", id)
	if err != nil {
		return err
	}

	var body servers.AdminUpdateProductJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	details, err := productDetails(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(productID, details)
	if err != nil {
		return err
	}

	p, err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productFromDomain(p))
}

// AdminDeleteProduct handles DELETE /api/v1/admin/products/{id}.
func (s *Server) AdminDeleteProduct(ctx echo.Context, id servers.ID) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	productID, err := parseID("id", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
