package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/application/service"
	"github.com/Harmitpatel428/Sales-Funnel/internal/config"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/query"
	"github.com/Harmitpatel428/Sales-Funnel/internal/infrastructure/database"
	"github.com/Harmitpatel428/Sales-Funnel/internal/infrastructure/repository"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/clipboard"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/datefmt"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Open the local lead store
	db, err := database.NewBoltDB(&cfg.Store)
	if err != nil {
		logger.Log.Fatal("failed to open lead store", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	viewRepo := repository.NewSavedViewRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	leadService := service.NewLeadService(leadRepo)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Deletion.DefaultPassword)
	deletionService := service.NewDeletionService(leadRepo, settingsService)
	dashboardService := service.NewDashboardService(leadRepo)
	viewService := service.NewViewService(viewRepo, leadRepo)
	spreadsheetService := service.NewSpreadsheetService(leadService)

	app := &app{
		leads:       leadService,
		deletion:    deletionService,
		dashboard:   dashboardService,
		views:       viewService,
		spreadsheet: spreadsheetService,
	}

	if err := app.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	leads       *service.LeadService
	deletion    *service.DeletionService
	dashboard   *service.DashboardService
	views       *service.ViewService
	spreadsheet *service.SpreadsheetService
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "list":
		term, sortState, ok := parseListArgs(args[1:])
		if !ok {
			return fmt.Errorf("usage: list [TERM] [--sort FIELD] [--desc]")
		}
		leads, err := a.leads.FilteredLeads(ctx, entity.LeadFilter{SearchTerm: term})
		if err != nil {
			return err
		}
		if sortState.Field != "" {
			leads = query.Sort(leads, sortState)
		}
		return printLeads(leads)
	case "reminders":
		leads, err := a.dashboard.Reminders(ctx, query.ReminderQuery{
			Start: argAt(args, 1),
			End:   argAt(args, 2),
		})
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "due-today":
		leads, err := a.dashboard.DueToday(ctx)
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "overdue":
		leads, err := a.dashboard.Overdue(ctx)
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "upcoming":
		leads, err := a.dashboard.Upcoming(ctx)
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "week":
		leads, err := a.dashboard.ThisWeek(ctx)
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "docs":
		leads, err := a.dashboard.PendingDocumentation(ctx)
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "mandate":
		leads, err := a.dashboard.MandateSent(ctx)
		if err != nil {
			return err
		}
		return printLeads(leads)
	case "show":
		if argAt(args, 1) == "" {
			return fmt.Errorf("usage: show LEAD_ID")
		}
		lead, err := a.leads.GetLead(ctx, args[1])
		if err != nil {
			return err
		}
		text := clipboard.FormatLead(lead)
		fmt.Println(text)
		clipboard.Copy(clipboard.NewLogWriter(), text)
		return nil
	case "import":
		if argAt(args, 1) == "" {
			return fmt.Errorf("usage: import FILE.xlsx")
		}
		result, err := a.spreadsheet.Import(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("imported %d leads, skipped %d rows\n", result.Imported, result.Skipped)
		return nil
	case "export":
		if argAt(args, 1) == "" {
			return fmt.Errorf("usage: export FILE.xlsx")
		}
		return a.spreadsheet.Export(ctx, args[1])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// sortFields maps the --sort flag values to typed sort fields
var sortFields = map[string]query.SortField{
	"client":       query.SortByClientName,
	"company":      query.SortByCompany,
	"consumer":     query.SortByConsumerNumber,
	"kva":          query.SortByKVA,
	"status":       query.SortByStatus,
	"followup":     query.SortByFollowUpDate,
	"lastactivity": query.SortByLastActivity,
}

// parseListArgs reads the list command's arguments: an optional free
// search term, an optional --sort FIELD and an optional --desc flag.
func parseListArgs(args []string) (term string, state query.SortState, ok bool) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--sort":
			if i+1 >= len(args) {
				return "", query.SortState{}, false
			}
			i++
			field, known := sortFields[strings.ToLower(args[i])]
			if !known {
				return "", query.SortState{}, false
			}
			state.Field = field
		case "--desc":
			state.Direction = query.Descending
		default:
			term = args[i]
		}
	}
	if state.Direction == query.Descending && state.Field == "" {
		state.Field = query.SortByClientName
	}
	return term, state, true
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func printLeads(leads []entity.Lead) error {
	if len(leads) == 0 {
		fmt.Println("no leads")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tCOMPANY\tPHONE\tSTATUS\tFOLLOW-UP")
	for i := range leads {
		lead := &leads[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			lead.ID,
			lead.ClientName,
			lead.Company,
			lead.MainNumber().Number,
			lead.Status,
			datefmt.Display(lead.FollowUpDate),
		)
	}
	return w.Flush()
}

func usage() {
	fmt.Println(`usage: salesfunnel COMMAND [ARGS]

commands:
  list [TERM] [--sort FIELD] [--desc]
                          list leads, optionally narrowed by a search
                          term and ordered by one of: client, company,
                          consumer, kva, status, followup, lastactivity
  due-today               leads whose follow-up is due today
  overdue                 leads whose follow-up has passed
  upcoming                leads due within the next seven days
  week                    leads due before the end of the calendar week
  docs                    leads pending documentation
  mandate                 leads with a sent mandate
  reminders [START] [END] leads ordered by follow-up date, optionally
                          bounded by an inclusive date range
  show LEAD_ID            print one lead in full
  import FILE.xlsx        import leads from a spreadsheet
  export FILE.xlsx        export leads to a spreadsheet`)
}
