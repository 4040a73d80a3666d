// Package request wires the gate pass workflow into the command line. Each
// subcommand builds its use case from the shared infrastructure and runs a
// single operation with the actor supplied by flags.
package request

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	appcredential "gatepass/internal/application/credential"
	"gatepass/internal/application/gatepass/handlers"
	"gatepass/internal/application/gatepass/usecases"
	"gatepass/internal/domain/credential"
	"gatepass/internal/domain/identity"
	"gatepass/internal/domain/shared/events"
	"gatepass/internal/infrastructure/config"
	"gatepass/internal/infrastructure/database"
	"gatepass/internal/infrastructure/qrcode"
	"gatepass/internal/infrastructure/repository"
	"gatepass/internal/infrastructure/session"
	"gatepass/internal/shared/logger"
)

var (
	actorID         string
	actorName       string
	actorRole       string
	actorDepartment string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Gate pass request workflow",
		Long:  `Submit, triage, and decide gate pass requests, and render approved credentials.`,
	}

	cmd.PersistentFlags().StringVar(&actorID, "actor-id", "", "ID of the acting user (required)")
	cmd.PersistentFlags().StringVar(&actorName, "actor-name", "", "Name of the acting user (required)")
	cmd.PersistentFlags().StringVar(&actorRole, "role", string(identity.RoleRequester), "Role of the acting user (user, security, department_admin)")
	cmd.PersistentFlags().StringVar(&actorDepartment, "actor-department", "", "Department of the acting user (department admins only)")

	cmd.AddCommand(
		newSubmitCommand(),
		newForwardCommand(),
		newApproveCommand(),
		newRejectCommand(),
		newListCommand(),
		newShowCommand(),
		newRenderCommand(),
	)

	return cmd
}

// appContext bundles the wired infrastructure for one invocation.
type appContext struct {
	cfg        *config.Config
	actor      identity.Actor
	repo       *repository.GatePassRepository
	dispatcher *events.InMemoryEventDispatcher
	log        logger.Interface
}

func setup() (*appContext, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	sess, err := session.NewStaticSession(actorID, actorName, actorRole, actorDepartment)
	if err != nil {
		return nil, nil, err
	}
	actor, err := sess.Current(context.Background())
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log := logger.NewLogger()

	dispatcher := events.NewInMemoryEventDispatcher(16)
	if err := handlers.NewAuditLogHandler(log).Register(dispatcher); err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("failed to register event handlers: %w", err)
	}
	if err := dispatcher.Start(); err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	cleanup := func() {
		_ = dispatcher.Stop()
		_ = database.Close()
	}

	return &appContext{
		cfg:        cfg,
		actor:      actor,
		repo:       repository.NewGatePassRepository(database.Get()),
		dispatcher: dispatcher,
		log:        log,
	}, cleanup, nil
}

func (a *appContext) codec() *credential.Codec {
	return credential.NewCodec(
		a.cfg.Credential.ByteBudget,
		time.Duration(a.cfg.Credential.ValidityHours)*time.Hour,
		a.cfg.Credential.CompanyName,
	)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newSubmitCommand() *cobra.Command {
	var (
		email         string
		phone         string
		purpose       string
		department    string
		visitDate     string
		visitTime     string
		duration      string
		vehicleNumber string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new gate pass request",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecases.NewSubmitRequestUseCase(app.repo, app.dispatcher, app.log)
			result, err := uc.Execute(cmd.Context(), usecases.SubmitRequestCommand{
				RequesterID:    app.actor.ID,
				RequesterName:  app.actor.Name,
				RequesterEmail: email,
				RequesterPhone: phone,
				Purpose:        purpose,
				Department:     department,
				VisitDate:      visitDate,
				VisitTime:      visitTime,
				Duration:       duration,
				VehicleNumber:  vehicleNumber,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Requester email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Requester phone (required)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Purpose of the visit (required)")
	cmd.Flags().StringVar(&department, "department", "", "Department to visit (required)")
	cmd.Flags().StringVar(&visitDate, "visit-date", "", "Visit date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&visitTime, "visit-time", "", "Visit time, HH:MM (required)")
	cmd.Flags().StringVar(&duration, "duration", "", "Visit duration (required)")
	cmd.Flags().StringVar(&vehicleNumber, "vehicle", "", "Vehicle number (optional)")

	return cmd
}

func newForwardCommand() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "forward <request-id>",
		Short: "Forward a pending request to its department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecases.NewForwardRequestUseCase(app.repo, app.dispatcher, app.log)
			result, err := uc.Execute(cmd.Context(), usecases.ForwardRequestCommand{
				RequestID: args[0],
				Actor:     app.actor,
				Comment:   comment,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Security comment (optional)")

	return cmd
}

func newApproveCommand() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a forwarded request and issue its credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecases.NewApproveRequestUseCase(app.repo, app.codec(), app.dispatcher, app.log)
			result, err := uc.Execute(cmd.Context(), usecases.ApproveRequestCommand{
				RequestID: args[0],
				Actor:     app.actor,
				Comment:   comment,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Department comment (optional)")

	return cmd
}

func newRejectCommand() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a forwarded request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecases.NewRejectRequestUseCase(app.repo, app.dispatcher, app.log)
			result, err := uc.Execute(cmd.Context(), usecases.RejectRequestCommand{
				RequestID: args[0],
				Actor:     app.actor,
				Comment:   comment,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Department comment (optional)")

	return cmd
}

func newListCommand() *cobra.Command {
	var (
		status   string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List requests visible to the acting user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecases.NewListRequestsUseCase(app.repo, app.log)
			result, err := uc.Execute(cmd.Context(), usecases.ListRequestsQuery{
				Actor:    app.actor,
				Status:   status,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, forwarded, approved, rejected)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Page size")

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <request-id>",
		Short: "Show a single request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecases.NewGetRequestUseCase(app.repo, app.log)
			result, err := uc.Execute(cmd.Context(), usecases.GetRequestQuery{
				RequestID: args[0],
				Actor:     app.actor,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newRenderCommand() *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "render <request-id>",
		Short: "Render the credential of an approved request as a QR code PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			svc := appcredential.NewRenderCredentialService(
				app.repo,
				qrcode.NewGenerator(),
				app.cfg.Render.MaxAttempts,
				app.cfg.Render.RetryDelay,
				app.cfg.Render.DefaultSize,
				app.log,
			)
			result, err := svc.Execute(cmd.Context(), appcredential.RenderCredentialQuery{
				RequestID: args[0],
				Actor:     app.actor,
				Size:      size,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, result.Image, 0o644); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s (%d bytes)\n", output, len(result.Image))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "gatepass.png", "Output PNG path")
	cmd.Flags().IntVar(&size, "size", 0, "Image size in pixels (default from config)")

	return cmd
}
