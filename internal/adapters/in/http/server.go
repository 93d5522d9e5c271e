// Package http adapts the generated API surface onto the application layer.
// Handlers translate wire types into commands and queries, and domain errors
// into HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/generated/servers"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	restoreOrderHandler commands.RestoreOrderCommandHandler
	removeOrderHandler  commands.RemoveOrderCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getFoodsHandler        queries.GetFoodsQueryHandler
	getIncomeReportHandler queries.GetIncomeReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	restoreOrderHandler commands.RestoreOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getFoodsHandler queries.GetFoodsQueryHandler,
	getIncomeReportHandler queries.GetIncomeReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		cancelOrderHandler:     cancelOrderHandler,
		restoreOrderHandler:    restoreOrderHandler,
		removeOrderHandler:     removeOrderHandler,
		getOrdersHandler:       getOrdersHandler,
		getOrderHandler:        getOrderHandler,
		getFoodsHandler:        getFoodsHandler,
		getIncomeReportHandler: getIncomeReportHandler,
	}
}

// GetOrders handles GET /api/v1/orders - lists one side of the order board.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	archived := false
	if params.Archived != nil {
		archived = *params.Archived
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(archived))
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderType, err := kernelOrderType(string(body.OrderType))
	if err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]order.ItemSpec, 0, len(body.Items))
	for _, item := range body.Items {
		spec, specErr := itemSpecFromNew(item)
		if specErr != nil {
			return s.writeError(ctx, specErr)
		}
		items = append(items, spec)
	}

	contact := order.Contact{
		Customer:      deref(body.Customer),
		ContactNumber: deref(body.ContactNumber),
		Email:         deref(body.Email),
		Address:       deref(body.Address),
		DesiredAt:     body.DesiredAt,
	}

	cmd, err := commands.NewCreateOrderCommand(contact, orderType, items)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/{orderId} - fetches one order.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId} - edits contact fields,
// items and/or status. Edits apply before the status transition, so a single
// request can fix a line and accept the order; if either part fails the whole
// request fails.
func (s *Server) UpdateOrder(ctx echo.Context, orderID int64) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patch := order.ContactPatch{
		Customer:      body.Customer,
		ContactNumber: body.ContactNumber,
		Email:         body.Email,
		Address:       body.Address,
		DesiredAt:     body.DesiredAt,
	}

	var items []order.ItemSpec
	hasItems := body.Items != nil
	if hasItems {
		items = make([]order.ItemSpec, 0, len(*body.Items))
		for _, item := range *body.Items {
			spec, specErr := itemSpecFromPatch(item)
			if specErr != nil {
				return s.writeError(ctx, specErr)
			}
			items = append(items, spec)
		}
	}

	hasEdit := hasItems || patch.Customer != nil || patch.ContactNumber != nil ||
		patch.Email != nil || patch.Address != nil || patch.DesiredAt != nil

	var updated *order.Order
	if hasEdit {
		cmd, err := commands.NewUpdateOrderCommand(orderID, patch, items, hasItems)
		if err != nil {
			return s.writeError(ctx, err)
		}

		updated, err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.writeError(ctx, err)
		}
	}

	if body.Status != nil {
		target, err := order.StatusFromString(string(*body.Status))
		if err != nil {
			return s.writeError(ctx, err)
		}

		cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
		if err != nil {
			return s.writeError(ctx, err)
		}

		updated, err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.writeError(ctx, err)
		}
	}

	if updated == nil {
		// empty patch, nothing to do; return the current state
		return s.GetOrder(ctx, orderID)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - cancels and archives
// a pending order.
func (s *Server) DeleteOrder(ctx echo.Context, orderID int64) error {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrStateConflict) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Cannot delete orders that have been accepted or completed",
			})
		}
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// DeleteOrderPermanently handles DELETE /api/v1/orders/{orderId}/permanent -
// irrecoverably removes an archived order.
func (s *Server) DeleteOrderPermanently(ctx echo.Context, orderID int64) error {
	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreOrder handles POST /api/v1/orders/{orderId}/restore - returns an
// archived order to the active queue.
func (s *Server) RestoreOrder(ctx echo.Context, orderID int64) error {
	cmd, err := commands.NewRestoreOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	restored, err := s.restoreOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(restored))
}

// GetFoods handles GET /api/v1/foods - lists the food catalog.
func (s *Server) GetFoods(ctx echo.Context) error {
	foods, err := s.getFoodsHandler.Handle(ctx.Request().Context(), queries.NewGetFoodsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Food, len(foods))
	for i, f := range foods {
		response[i] = servers.Food{
			Id:    f.ID,
			Name:  f.Name,
			Price: f.Price.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetIncomeReport handles GET /api/v1/reports/income - per-day revenue of
// completed orders.
func (s *Server) GetIncomeReport(ctx echo.Context, params servers.GetIncomeReportParams) error {
	query, err := queries.NewGetIncomeReportQuery(params.From.Time, params.To.Time)
	if err != nil {
		return s.writeError(ctx, err)
	}

	report, err := s.getIncomeReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.IncomeReportRow, len(report))
	for i, row := range report {
		response[i] = servers.IncomeReportRow{
			Day:    dateOf(row.Day),
			Orders: row.Orders,
			Income: row.Income.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps domain errors onto HTTP status codes. Validation and state
// machine violations are the caller's fault; everything unrecognized is a 500
// without leaking internals.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
