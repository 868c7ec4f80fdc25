package http

import (
	"context"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders - checks the cart out.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(p.ID)
	if err != nil {
		return err
	}

	placed, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := s.orderView(ctx.Request().Context(), placed.ID())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderFromView(view))
}

// ListMyOrders handles GET /api/v1/orders - the caller's order history.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	p, err := principalFrom(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(p.ID)
	if err != nil {
		return err
	}

	views, err := s.queries.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ordersFromViews(views))
}

// AdminListOrders handles GET /api/v1/admin/orders.
func (s *Server) AdminListOrders(ctx echo.Context, params servers.AdminListOrdersParams) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(status, limit, offset)
	if err != nil {
		return err
	}

	page, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{
		Orders: ordersFromViews(page.Orders),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// AdminGetOrder handles GET /api/v1/admin/orders/{id}.
func (s *Server) AdminGetOrder(ctx echo.Context, id servers.ID) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	orderID, err := parseID("id", id)
	if err != nil {
		return err
	}

	view, err := s.orderView(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// AdminUpdateOrderStatus handles PATCH /api/v1/admin/orders/{id}/status.
func (s *Server) AdminUpdateOrderStatus(ctx echo.Context, id servers.ID) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	orderID, err := parseID("id", id)
	if err != nil {
		return err
	}

	var body servers.AdminUpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	if _, err = s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.orderView(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// AdminUpdatePaymentStatus handles PATCH /api/v1/admin/orders/{id}/payment.
func (s *Server) AdminUpdatePaymentStatus(ctx echo.Context, id servers.ID) error {
	if _, err := principalFrom(ctx, RoleStaff); err != nil {
		return err
	}

	orderID, err := parseID("id", id)
	if err != nil {
		return err
	}

	var body servers.AdminUpdatePaymentStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	paymentStatus, err := order.ParsePaymentStatus(string(body.PaymentStatus))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, paymentStatus, deref(body.PaymentMethod))
	if err != nil {
		return err
	}

	if _, err = s.commands.UpdatePaymentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.orderView(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// orderView re-reads an order through the query side so every order
// response has the same shape.
func (s *Server) orderView(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.queries.GetOrder.Handle(ctx, query)
}
