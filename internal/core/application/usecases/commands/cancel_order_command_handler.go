package commands

import (
	"context"
	"time"

	"fastfeet/internal/notifications"
	"fastfeet/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a shipment: it stamps the cancellation
// time, persists the mutation, enqueues the cancellation notification, and
// then purges the order record. All of it commits in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. The auth check runs before
// any store access. The record is removed after the notification task is
// enqueued, so a canceled order never reappears in listings.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Authenticated() {
		return errs.NewAuthError()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cour, err := uow.CourierRepository().Get(ctx, o.CourierID())
	if err != nil {
		return err
	}

	rcpt, err := uow.RecipientRepository().Get(ctx, o.RecipientID())
	if err != nil {
		return err
	}

	if err = o.Cancel(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	payload := notifications.CanceledPayload{
		Order:     notifications.NewOrderPayload(o),
		Courier:   notifications.NewCourierPayload(cour),
		Recipient: notifications.NewRecipientPayload(rcpt),
	}
	if err = uow.Tasks().Enqueue(ctx, notifications.TaskCancellationMail, payload); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
