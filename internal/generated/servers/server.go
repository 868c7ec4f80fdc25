// Package servers holds the echo server interface, the request wrapper that
// binds path and query parameters, and route registration for the HTTP API
// described in openapi.yaml.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/v1/admin/orders)
	AdminListOrders(ctx echo.Context, params AdminListOrdersParams) error

	// (GET /api/v1/admin/orders/{id})
	AdminGetOrder(ctx echo.Context, id ID) error

	// (PATCH /api/v1/admin/orders/{id}/payment)
	AdminUpdatePaymentStatus(ctx echo.Context, id ID) error

	// (PATCH /api/v1/admin/orders/{id}/status)
	AdminUpdateOrderStatus(ctx echo.Context, id ID) error

	// List every product, newest first
	// (GET /api/v1/admin/products)
	AdminListProducts(ctx echo.Context, params AdminListProductsParams) error

	// (POST /api/v1/admin/products)
	AdminCreateProduct(ctx echo.Context) error

	// (DELETE /api/v1/admin/products/{id})
	AdminDeleteProduct(ctx echo.Context, id ID) error

	// (PUT /api/v1/admin/products/{id})
	AdminUpdateProduct(ctx echo.Context, id ID) error

	// (DELETE /api/v1/admin/login)
	StaffLogout(ctx echo.Context) error

	// (POST /api/v1/admin/login)
	StaffLogin(ctx echo.Context) error

	// Clear the customer session
	// (DELETE /api/v1/auth/liff)
	Logout(ctx echo.Context) error

	// Return the customer of the current session
	// (GET /api/v1/auth/liff)
	GetSession(ctx echo.Context) error

	// Sign in with a LIFF ID token and open a customer session
	// (POST /api/v1/auth/liff)
	LoginCustomer(ctx echo.Context) error

	// (GET /api/v1/cart)
	GetCart(ctx echo.Context) error

	// Add a product, incrementing the line when it is already in the cart
	// (POST /api/v1/cart)
	AddCartItem(ctx echo.Context) error

	// (DELETE /api/v1/cart/{id})
	RemoveCartItem(ctx echo.Context, id ID) error

	// (PATCH /api/v1/cart/{id})
	UpdateCartItem(ctx echo.Context, id ID) error

	// (GET /api/v1/customers/me)
	GetCurrentCustomer(ctx echo.Context) error

	// (GET /api/v1/orders)
	ListMyOrders(ctx echo.Context) error

	// Turn the cart into an order
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error

	// List the active menu
	// (GET /api/v1/products)
	ListProducts(ctx echo.Context, params ListProductsParams) error

	// (GET /api/v1/products/{id})
	GetProduct(ctx echo.Context, id ID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// AdminListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) AdminListOrders(ctx echo.Context) error {
	var err error

	ctx.Set(StaffSessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params AdminListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminListOrders(ctx, params)
	return err
}

// AdminGetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdminGetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(StaffSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminGetOrder(ctx, id)
	return err
}

// AdminUpdatePaymentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdminUpdatePaymentStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(StaffSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminUpdatePaymentStatus(ctx, id)
	return err
}

// AdminUpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdminUpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(StaffSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminUpdateOrderStatus(ctx, id)
	return err
}

// AdminListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) AdminListProducts(ctx echo.Context) error {
	var err error

	ctx.Set(StaffSessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params AdminListProductsParams
	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminListProducts(ctx, params)
	return err
}

// AdminCreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) AdminCreateProduct(ctx echo.Context) error {
	var err error

	ctx.Set(StaffSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminCreateProduct(ctx)
	return err
}

// AdminDeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) AdminDeleteProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(StaffSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminDeleteProduct(ctx, id)
	return err
}

// AdminUpdateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) AdminUpdateProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(StaffSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdminUpdateProduct(ctx, id)
	return err
}

// StaffLogout converts echo context to params.
func (w *ServerInterfaceWrapper) StaffLogout(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StaffLogout(ctx)
	return err
}

// StaffLogin converts echo context to params.
func (w *ServerInterfaceWrapper) StaffLogin(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StaffLogin(ctx)
	return err
}

// Logout converts echo context to params.
func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Logout(ctx)
	return err
}

// GetSession converts echo context to params.
func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	var err error

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSession(ctx)
	return err
}

// LoginCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) LoginCustomer(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LoginCustomer(ctx)
	return err
}

// GetCart converts echo context to params.
func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	var err error

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCart(ctx)
	return err
}

// AddCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	var err error

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddCartItem(ctx)
	return err
}

// RemoveCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveCartItem(ctx, id)
	return err
}

// UpdateCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCartItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCartItem(ctx, id)
	return err
}

// GetCurrentCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) GetCurrentCustomer(ctx echo.Context) error {
	var err error

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCurrentCustomer(ctx)
	return err
}

// ListMyOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListMyOrders(ctx echo.Context) error {
	var err error

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListMyOrders(ctx)
	return err
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var err error

	ctx.Set(CustomerSessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PlaceOrder(ctx)
	return err
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListProductsParams
	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProducts(ctx, params)
	return err
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetProduct(ctx, id)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/admin/orders", wrapper.AdminListOrders)
	router.GET(baseURL+"/api/v1/admin/orders/:id", wrapper.AdminGetOrder)
	router.PATCH(baseURL+"/api/v1/admin/orders/:id/payment", wrapper.AdminUpdatePaymentStatus)
	router.PATCH(baseURL+"/api/v1/admin/orders/:id/status", wrapper.AdminUpdateOrderStatus)
	router.GET(baseURL+"/api/v1/admin/products", wrapper.AdminListProducts)
	router.POST(baseURL+"/api/v1/admin/products", wrapper.AdminCreateProduct)
	router.DELETE(baseURL+"/api/v1/admin/products/:id", wrapper.AdminDeleteProduct)
	router.PUT(baseURL+"/api/v1/admin/products/:id", wrapper.AdminUpdateProduct)
	router.DELETE(baseURL+"/api/v1/admin/login", wrapper.StaffLogout)
	router.POST(baseURL+"/api/v1/admin/login", wrapper.StaffLogin)
	router.DELETE(baseURL+"/api/v1/auth/liff", wrapper.Logout)
	router.GET(baseURL+"/api/v1/auth/liff", wrapper.GetSession)
	router.POST(baseURL+"/api/v1/auth/liff", wrapper.LoginCustomer)
	router.GET(baseURL+"/api/v1/cart", wrapper.GetCart)
	router.POST(baseURL+"/api/v1/cart", wrapper.AddCartItem)
	router.DELETE(baseURL+"/api/v1/cart/:id", wrapper.RemoveCartItem)
	router.PATCH(baseURL+"/api/v1/cart/:id", wrapper.UpdateCartItem)
	router.GET(baseURL+"/api/v1/customers/me", wrapper.GetCurrentCustomer)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListMyOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.GET(baseURL+"/api/v1/products/:id", wrapper.GetProduct)

}
