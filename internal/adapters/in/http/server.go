// Package http exposes the delivery backend as a REST API on echo.
// Handlers translate requests into commands and queries, and business
// failures into status codes; no business rule lives here.
package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
)

// Handlers groups the use case handlers the server routes to.
type Handlers struct {
	CreateUser       commands.CreateUserCommandHandler
	AuthenticateUser commands.AuthenticateUserCommandHandler
	CreateRecipient  commands.CreateRecipientCommandHandler
	CreateFile       commands.CreateFileCommandHandler
	CreateCourier    commands.CreateCourierCommandHandler
	UpdateCourier    commands.UpdateCourierCommandHandler
	DeleteCourier    commands.DeleteCourierCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	FinishOrder      commands.FinishOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler
	ReportProblem    commands.ReportProblemCommandHandler

	ListOrders          queries.ListOrdersQueryHandler
	ListCouriers        queries.ListCouriersQueryHandler
	ListOrdersByCourier queries.ListOrdersByCourierQueryHandler
	ListProblems        queries.ListProblemsQueryHandler
}

// Server wires the REST routes to the application use cases.
type Server struct {
	handlers   Handlers
	tokens     *TokenManager
	uploadsDir string
	appURL     string
}

// NewServer creates the HTTP server.
// uploadsDir is where multipart uploads are stored; appURL is the public
// base address file URLs are built from.
func NewServer(handlers Handlers, tokens *TokenManager, uploadsDir, appURL string) *Server {
	return &Server{
		handlers:   handlers,
		tokens:     tokens,
		uploadsDir: uploadsDir,
		appURL:     appURL,
	}
}

// RegisterRoutes binds every route on the echo instance. Sessions and
// user registration are public; everything else requires a bearer token.
// The order workflow routes resolve the token without rejecting, so the
// use case itself refuses unauthenticated mutations.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", s.createUser)
	e.POST("/sessions", s.createSession)

	e.Static("/uploads", s.uploadsDir)

	auth := e.Group("", s.tokens.RequireAuth)
	auth.POST("/files", s.uploadFile)
	auth.POST("/recipients/:user_id", s.createRecipient)

	auth.GET("/couriers", s.listCouriers)
	auth.POST("/couriers", s.createCourier)
	auth.PUT("/couriers/:id", s.updateCourier)
	auth.DELETE("/couriers/:id", s.deleteCourier)
	auth.GET("/couriers/:id/orders", s.listCourierOrders)

	auth.GET("/orders", s.listOrders)
	auth.POST("/orders", s.createOrder)
	auth.DELETE("/orders/:id/record", s.deleteOrder)

	auth.GET("/problems", s.listProblems)
	auth.GET("/orders/:id/problems", s.listOrderProblems)
	auth.POST("/orders/:id/problems", s.reportProblem)

	workflow := e.Group("", s.tokens.ResolveAuth)
	workflow.PUT("/orders/:id", s.finishOrder)
	workflow.DELETE("/orders/:id", s.cancelOrder)
}

func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

func queryPage(ctx echo.Context) int {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *Server) createUser(ctx echo.Context) error {
	var req createUserRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Password, req.Provider)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newUserResponse(created))
}

func (s *Server) createSession(ctx echo.Context) error {
	var req sessionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	entity, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.Issue(entity.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sessionResponse{
		User:  newUserResponse(entity),
		Token: token,
	})
}

// uploadFile stores the multipart upload on disk under a collision-free
// name and records its metadata.
func (s *Server) uploadFile(ctx echo.Context) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
	}

	src, err := header.Open()
	if err != nil {
		return writeError(ctx, err)
	}
	defer src.Close()

	stored := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(s.uploadsDir, stored))
	if err != nil {
		return writeError(ctx, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateFileCommand(
		header.Filename, stored, s.appURL+"/uploads/"+stored,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateFile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newFileResponse(created))
}

func (s *Server) createRecipient(ctx echo.Context) error {
	userID, err := pathID(ctx, "user_id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	var req createRecipientRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewCreateRecipientCommand(
		userID, req.Name, req.SignatureID,
		req.Street, req.Number, req.Details, req.State, req.City, req.PostalCode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateRecipient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newRecipientResponse(created))
}

func (s *Server) listCouriers(ctx echo.Context) error {
	query, err := queries.NewListCouriersQuery(queryPage(ctx), ctx.QueryParam("q"))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.ListCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newListedCouriers(rows))
}

func (s *Server) createCourier(ctx echo.Context) error {
	var req courierRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.Email, req.AvatarID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newCourierResponse(created))
}

func (s *Server) updateCourier(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid courier id"})
	}

	var req courierRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewUpdateCourierCommand(id, req.Name, req.Email, req.AvatarID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCourierResponse(updated))
}

func (s *Server) deleteCourier(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid courier id"})
	}

	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse{Success: "courier deleted"})
}

func (s *Server) listCourierOrders(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid courier id"})
	}

	delivered, _ := strconv.ParseBool(ctx.QueryParam("delivered"))

	query, err := queries.NewListOrdersByCourierQuery(id, queryPage(ctx), delivered)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.ListOrdersByCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newListedCourierOrders(rows))
}

func (s *Server) listOrders(ctx echo.Context) error {
	onlyOpen, _ := strconv.ParseBool(ctx.QueryParam("open"))

	query, err := queries.NewListOrdersQuery(queryPage(ctx), ctx.QueryParam("q"), onlyOpen)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newListedOrders(rows))
}

func (s *Server) createOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.RecipientID, req.CourierID, req.SignatureID, req.Product, req.StartDate,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(created))
}

func (s *Server) finishOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	cmd, err := commands.NewFinishOrderCommand(id, authenticated(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	finished, err := s.handlers.FinishOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(finished))
}

func (s *Server) cancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	cmd, err := commands.NewCancelOrderCommand(id, authenticated(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse{Success: "order canceled"})
}

func (s *Server) deleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	cmd, err := commands.NewDeleteOrderCommand(id, authenticated(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse{Success: "order deleted"})
}

func (s *Server) listProblems(ctx echo.Context) error {
	query, err := queries.NewListProblemsQuery(0, queryPage(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.ListProblems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newListedProblems(rows))
}

func (s *Server) listOrderProblems(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	query, err := queries.NewListProblemsQuery(id, queryPage(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.ListProblems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newListedProblems(rows))
}

func (s *Server) reportProblem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	var req reportProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewReportProblemCommand(id, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.ReportProblem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newProblemResponse(created))
}
