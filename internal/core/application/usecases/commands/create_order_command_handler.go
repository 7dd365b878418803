package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/notifications"
	"fastfeet/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business rules of order creation:
// the duplicate-submission guard, reference resolution, the pickup window,
// and the daily capacity quota. On success it persists the order and
// enqueues the confirmation notification in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// order. Exactly one CreateMail task is enqueued per successful call.
//
// Failure modes, in check order: ValidationError (unconstructed command),
// ConflictError (duplicate recipient/courier/product triple),
// NotFoundError (missing recipient, courier, or signature file),
// InvalidWindowError (pickup hour outside business hours), and
// CapacityError (five orders already scheduled on that day).
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	// Coarse duplicate-submission guard. The read-then-write sequence is
	// not atomic; the store remains the arbiter under concurrent creates.
	duplicate, err := orderRepo.HasDuplicate(ctx, cmd.RecipientID(), cmd.CourierID(), cmd.Product())
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, errs.NewConflictError("order")
	}

	rcpt, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID())
	if err != nil {
		return nil, err
	}

	cour, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.FileRepository().Get(ctx, cmd.SignatureID()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.RecipientID(),
		cmd.CourierID(),
		cmd.SignatureID(),
		cmd.Product(),
		cmd.StartDate(),
	)
	if err != nil {
		return nil, err
	}

	scheduled, err := orderRepo.CountByDay(ctx, cmd.StartDate())
	if err != nil {
		return nil, err
	}
	if scheduled >= order.DailyCapacity {
		day := cmd.StartDate()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		return nil, errs.NewCapacityError(day, order.DailyCapacity)
	}

	created, err := orderRepo.Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	payload := notifications.CreatedPayload{
		Order:     notifications.NewOrderPayload(created),
		Courier:   notifications.NewCourierPayload(cour),
		Recipient: notifications.NewRecipientPayload(rcpt),
	}
	if err = uow.Tasks().Enqueue(ctx, notifications.TaskCreateMail, payload); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
