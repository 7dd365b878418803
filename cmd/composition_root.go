package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/mail"
	"fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/adapters/out/postgres/taskrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/jobs"
	"fastfeet/internal/notifications"
	"fastfeet/internal/queue"
)

// CompositionRoot builds every use case handler and adapter from the
// shared database connection and configuration.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) recipientUoWFactory() commands.RecipientUoWFactory {
	return FuncRecipientUoWFactory(func() commands.RecipientUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) problemUoWFactory() commands.ProblemUoWFactory {
	return FuncProblemUoWFactory(func() commands.ProblemUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) fileUoWFactory() commands.FileUoWFactory {
	return FuncFileUoWFactory(func() commands.FileUoW { return c.uowFactory.Create() })
}

// CreateHTTPHandlers builds the full use case handler set the HTTP
// server routes to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateUser:       commands.NewCreateUserCommandHandler(c.userUoWFactory()),
		AuthenticateUser: commands.NewAuthenticateUserCommandHandler(userrepo.NewGormUserRepository(c.gormDB)),
		CreateRecipient:  commands.NewCreateRecipientCommandHandler(c.recipientUoWFactory()),
		CreateFile:       commands.NewCreateFileCommandHandler(c.fileUoWFactory()),
		CreateCourier:    commands.NewCreateCourierCommandHandler(c.courierUoWFactory()),
		UpdateCourier:    commands.NewUpdateCourierCommandHandler(c.courierUoWFactory()),
		DeleteCourier:    commands.NewDeleteCourierCommandHandler(c.courierUoWFactory()),
		CreateOrder:      commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		FinishOrder:      commands.NewFinishOrderCommandHandler(c.orderUoWFactory()),
		CancelOrder:      commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		DeleteOrder:      commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
		ReportProblem:    commands.NewReportProblemCommandHandler(c.problemUoWFactory()),

		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB),
		ListCouriers:        queries.NewListCouriersQueryHandler(c.gormDB),
		ListOrdersByCourier: queries.NewListOrdersByCourierQueryHandler(c.gormDB),
		ListProblems:        queries.NewListProblemsQueryHandler(c.gormDB),
	}
}

// CreateHTTPServer builds the HTTP server with every route handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateHTTPHandlers(),
		c.CreateTokenManager(),
		c.config.UploadsDir,
		c.config.AppURL,
	)
}

// CreateTokenManager builds the session token manager.
func (c *CompositionRoot) CreateTokenManager() *httpin.TokenManager {
	return httpin.NewTokenManager(c.config.JWTSecret)
}

// CreateMailer builds the SMTP mailer.
func (c *CompositionRoot) CreateMailer() ports.Mailer {
	return mail.NewSMTPMailer(
		c.config.SMTPHost,
		c.config.SMTPPort,
		c.config.SMTPUser,
		c.config.SMTPPassword,
		c.config.MailFrom,
	)
}

// CreateJobManager builds the notification worker with its mail
// handlers registered and wraps it in the job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	dispatcher := notifications.NewDispatcher(c.CreateMailer(), c.logger)

	worker := queue.NewWorker(taskrepo.NewGormTaskStore(c.gormDB), c.logger)
	worker.Register(notifications.TaskCreateMail, dispatcher.HandleCreated)
	worker.Register(notifications.TaskFinishMail, dispatcher.HandleFinished)
	worker.Register(notifications.TaskCancellationMail, dispatcher.HandleCanceled)

	return jobs.NewJobManager(worker, c.logger)
}

// Function adapters let the composition root satisfy the narrow UoW
// factory interfaces with closures over the shared factory.

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW { return f() }

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW { return f() }

type FuncProblemUoWFactory func() commands.ProblemUoW

func (f FuncProblemUoWFactory) Create() commands.ProblemUoW { return f() }

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW { return f() }

type FuncFileUoWFactory func() commands.FileUoW

func (f FuncFileUoWFactory) Create() commands.FileUoW { return f() }
