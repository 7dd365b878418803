package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/notifications"
	"fastfeet/internal/pkg/errs"
)

// FinishOrderCommandHandler completes a delivery: it sets the end date,
// persists the mutation, and enqueues the end-date notification in the
// same transaction.
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishOrderCommandHandler creates a handler for order completion.
func NewFinishOrderCommandHandler(uowFactory OrderUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command and returns the updated order.
// The auth check runs before any store access, so an unauthenticated call
// has no side effects. Fails with NotFoundError when the order does not
// exist and OrderingError when the end date would precede the start date.
func (h *FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Authenticated() {
		return nil, errs.NewAuthError()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	cour, err := uow.CourierRepository().Get(ctx, o.CourierID())
	if err != nil {
		return nil, err
	}

	rcpt, err := uow.RecipientRepository().Get(ctx, o.RecipientID())
	if err != nil {
		return nil, err
	}

	if err = o.Finish(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	payload := notifications.FinishedPayload{
		Order:     notifications.NewOrderPayload(o),
		Courier:   notifications.NewCourierPayload(cour),
		Recipient: notifications.NewRecipientPayload(rcpt),
	}
	if err = uow.Tasks().Enqueue(ctx, notifications.TaskFinishMail, payload); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
