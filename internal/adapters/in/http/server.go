package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	transitionOrderHandler  commands.TransitionOrderCommandHandler
	addRepHandler           commands.AddRepresentativeCommandHandler
	setRepExclusionHandler  commands.SetRepExclusionCommandHandler
	setRepActivationHandler commands.SetRepActivationCommandHandler
	skipRotationHandler     commands.SkipRotationCommandHandler
	resetRotationHandler    commands.ResetRotationCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getRotationStateHandler queries.GetRotationStateQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	addRepHandler commands.AddRepresentativeCommandHandler,
	setRepExclusionHandler commands.SetRepExclusionCommandHandler,
	setRepActivationHandler commands.SetRepActivationCommandHandler,
	skipRotationHandler commands.SkipRotationCommandHandler,
	resetRotationHandler commands.ResetRotationCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRotationStateHandler queries.GetRotationStateQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		addRepHandler:           addRepHandler,
		setRepExclusionHandler:  setRepExclusionHandler,
		setRepActivationHandler: setRepActivationHandler,
		skipRotationHandler:     skipRotationHandler,
		resetRotationHandler:    resetRotationHandler,
		getOrderHandler:         getOrderHandler,
		getRotationStateHandler: getRotationStateHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates an order and assigns it
// to the next representative in rotation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items, err := lineItemsFromRequest(newOrder.Items)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newOrder.Currency, items)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, services.ErrNoEligibleRep):
			return errorResponse(ctx, http.StatusConflict, "No eligible representative in rotation")
		case errors.Is(handleErr, errs.ErrConcurrencyConflict):
			return errorResponse(ctx, http.StatusConflict, "Concurrent assignment in progress, retry the request")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		}
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderToResponse(response))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status - moves an
// order to a new status, applying inventory effects for Delivered edges.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var change servers.StatusChange
	if err := ctx.Bind(&change); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	newStatus, err := order.StatusFromString(change.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown status: "+change.Status)
	}

	actingUserID, err := kernel.UUIDFromBytes(change.ActingUserId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid acting user ID")
	}

	var agentID *kernel.UUID
	if change.AgentId != nil {
		parsed, parseErr := kernel.UUIDFromBytes(change.AgentId[:])
		if parseErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid agent ID")
		}
		agentID = &parsed
	}

	reason := ""
	if change.Reason != nil {
		reason = *change.Reason
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, newStatus, actingUserID, reason, agentID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(handleErr, order.ErrReasonIsRequired):
			return errorResponse(ctx, http.StatusBadRequest, "A reason is required to leave a terminal status")
		case errors.Is(handleErr, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusBadRequest, "Transition is not allowed: "+handleErr.Error())
		case errors.Is(handleErr, product.ErrInsufficientStock):
			return errorResponse(ctx, http.StatusConflict, "Insufficient stock to deliver the order")
		case errors.Is(handleErr, errs.ErrConcurrencyConflict):
			return errorResponse(ctx, http.StatusConflict, "Order was modified concurrently, retry the request")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to change order status")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRep handles POST /api/v1/reps - registers a representative at the
// tail of the rotation.
func (s *Server) CreateRep(ctx echo.Context) error {
	var newRep servers.NewRep
	if err := ctx.Bind(&newRep); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddRepresentativeCommand(kernel.NewUUID(), newRep.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid representative data: "+err.Error())
	}

	if handleErr := s.addRepHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create representative")
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetRepActivation handles PUT /api/v1/reps/{repId}/activation - activates or
// deactivates a representative.
func (s *Server) SetRepActivation(ctx echo.Context, repId openapi_types.UUID) error {
	var change servers.ActivationChange
	if err := ctx.Bind(&change); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	repID, err := kernel.UUIDFromBytes(repId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid representative ID")
	}

	cmd, err := commands.NewSetRepActivationCommand(repID, change.Active)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid activation data: "+err.Error())
	}

	if handleErr := s.setRepActivationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Representative not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to change activation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRepExclusion handles PUT /api/v1/reps/{repId}/exclusion - temporarily
// excludes a representative from rotation or brings them back.
func (s *Server) SetRepExclusion(ctx echo.Context, repId openapi_types.UUID) error {
	var change servers.ExclusionChange
	if err := ctx.Bind(&change); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	repID, err := kernel.UUIDFromBytes(repId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid representative ID")
	}

	cmd, err := commands.NewSetRepExclusionCommand(repID, change.Excluded)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid exclusion data: "+err.Error())
	}

	summary, handleErr := s.setRepExclusionHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Representative not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to change exclusion")
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Message: summary})
}

// GetRotation handles GET /api/v1/rotation - returns the rotation order,
// the cursor position and who is next in line.
func (s *Server) GetRotation(ctx echo.Context) error {
	query := queries.NewGetRotationStateQuery()

	state, err := s.getRotationStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve rotation state")
	}

	response := servers.RotationState{
		CursorPosition: state.CursorPosition,
		Reps:           make([]servers.RotationRep, len(state.Reps)),
	}
	for i, rep := range state.Reps {
		response.Reps[i] = rotationRepToResponse(rep)
	}
	if state.NextRep != nil {
		next := rotationRepToResponse(*state.NextRep)
		response.NextRep = &next
	}

	return ctx.JSON(http.StatusOK, response)
}

// ResetRotation handles POST /api/v1/rotation/reset - reorders the rotation
// alphabetically and rewinds the cursor. Requires explicit confirmation.
func (s *Server) ResetRotation(ctx echo.Context) error {
	var request servers.ResetRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewResetRotationCommand(request.Confirmed)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Reset requires confirmation")
	}

	summary, handleErr := s.resetRotationHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to reset rotation")
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Message: summary})
}

// SkipRotation handles POST /api/v1/rotation/skip - skips the representative
// currently next in rotation without assigning them an order.
func (s *Server) SkipRotation(ctx echo.Context) error {
	cmd := commands.NewSkipRotationCommand()

	summary, handleErr := s.skipRotationHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		switch {
		case errors.Is(handleErr, services.ErrNoEligibleRep):
			return errorResponse(ctx, http.StatusConflict, "No eligible representative in rotation")
		case errors.Is(handleErr, errs.ErrConcurrencyConflict):
			return errorResponse(ctx, http.StatusConflict, "Rotation was modified concurrently, retry the request")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to skip rotation turn")
		}
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Message: summary})
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func lineItemsFromRequest(items []servers.OrderItem) ([]order.LineItem, error) {
	result := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromBytes(item.ProductId[:])
		if err != nil {
			return nil, err
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, err
		}

		cost, err := decimal.NewFromString(item.Cost)
		if err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(productID, item.Quantity, price, cost)
		if err != nil {
			return nil, err
		}
		result = append(result, lineItem)
	}
	return result, nil
}

func orderToResponse(o queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Cost:      item.Cost.String(),
		}
	}

	response := servers.Order{
		Id:           o.ID.Bytes(),
		Number:       o.Number,
		AssignedTo:   o.AssignedTo.Bytes(),
		Status:       o.Status,
		Currency:     o.Currency,
		TotalAmount:  o.TotalAmount.String(),
		ConfirmedAt:  o.ConfirmedAt,
		DispatchedAt: o.DispatchedAt,
		DeliveredAt:  o.DeliveredAt,
		CancelledAt:  o.CancelledAt,
		AuditNotes:   o.AuditNotes,
		CreatedAt:    o.CreatedAt,
		Items:        items,
	}
	if o.AgentID != nil {
		agentID := o.AgentID.Bytes()
		response.AgentId = &agentID
	}
	return response
}

func rotationRepToResponse(rep queries.RotationRepResponse) servers.RotationRep {
	return servers.RotationRep{
		Id:               rep.ID.Bytes(),
		Name:             rep.Name,
		SequencePosition: rep.SequencePosition,
		Excluded:         rep.Excluded,
	}
}
