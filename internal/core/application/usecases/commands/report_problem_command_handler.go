package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/pkg/errs"
)

// errOrderCanceled signals a report filed against a canceled order.
var errOrderCanceled = errors.New("order is canceled")

// ReportProblemCommandHandler files delivery problem reports. The order
// must exist and still be active, and the same text cannot be reported
// twice against the same order.
type ReportProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
}

// NewReportProblemCommandHandler creates a handler for problem reports.
func NewReportProblemCommandHandler(uowFactory ProblemUoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report command and returns the persisted problem.
func (h *ReportProblemCommandHandler) Handle(
	ctx context.Context, cmd ReportProblemCommand,
) (*problem.Problem, error) {
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

	subject, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if subject.Status() == order.Canceled {
		return nil, errs.NewValidationErrorWithCause("order_id", errOrderCanceled)
	}

	problemRepo := uow.ProblemRepository()

	exists, err := problemRepo.Exists(ctx, cmd.OrderID(), cmd.Description())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("order problem")
	}

	entity, err := problem.NewProblem(cmd.OrderID(), cmd.Description())
	if err != nil {
		return nil, err
	}

	created, err := problemRepo.Add(ctx, entity)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
