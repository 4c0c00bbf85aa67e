// Package console is the interactive line-oriented delivery: a sidebar of
// kinds, one draft at a time, and explicit confirmation before deletes.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"menubuilder/config"
	"menubuilder/internal/delivery"
	"menubuilder/internal/domain/entity"
	"menubuilder/internal/errors"
	"menubuilder/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the console, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Cfg        *config.Config
	Logger     *slog.Logger
	Catalog    usecase.CatalogUsecase
	State      usecase.StateUsecase
	Export     usecase.ExportUsecase
	Shutdowner fx.Shutdowner
}

type console struct {
	cfg        *config.Config
	logger     *slog.Logger
	catalog    usecase.CatalogUsecase
	state      usecase.StateUsecase
	export     usecase.ExportUsecase
	shutdowner fx.Shutdowner

	in  io.Reader
	out io.Writer

	// kind is the sidebar selection every draft command applies to.
	kind entity.Kind
}

// NewConsole creates the console delivery reading stdin.
func NewConsole(params Params) delivery.Delivery {
	c := &console{
		cfg:        params.Cfg,
		logger:     params.Logger,
		catalog:    params.Catalog,
		state:      params.State,
		export:     params.Export,
		shutdowner: params.Shutdowner,
		in:         os.Stdin,
		out:        os.Stdout,
		kind:       entity.KindItem,
	}

	params.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

func (c *console) Serve(ctx context.Context) error {
	if err := c.state.Load(); err != nil {
		// The operator keeps an empty editor and sees why.
		c.printf("could not load saved data: %v\n", err)
	}

	c.printf("menu editor (%s). Type \"help\" for commands.\n", c.cfg.Env.ServiceName)

	scanner := bufio.NewScanner(c.in)
	for {
		c.printf("%s> ", c.kind)
		if !scanner.Scan() {
			break
		}

		quit, err := c.dispatch(scanner, strings.Fields(scanner.Text()))
		if err != nil {
			c.printf("error: %v\n", err)
		}
		if quit {
			return errors.WithStack(c.shutdowner.Shutdown())
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read console input")
	}

	return errors.WithStack(c.shutdowner.Shutdown())
}

// stop flushes state on shutdown the same way a mutation would, so a quit
// with auto-save off still honors the operator's choice.
func (c *console) stop(ctx context.Context) error {
	return c.state.AutoSave()
}

func (c *console) dispatch(scanner *bufio.Scanner, args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "help":
		c.printHelp()
	case "kinds":
		for _, kind := range c.catalog.Kinds() {
			c.printf("  %s\n", kind)
		}
	case "use":
		return false, c.use(rest)
	case "list":
		return false, c.list()
	case "show":
		return false, c.show(rest)
	case "new":
		return false, c.catalog.CreateNew(c.kind)
	case "edit":
		return false, c.edit(rest)
	case "draft":
		return false, c.draft()
	case "name":
		return false, c.catalog.SetDraftName(c.kind, strings.Join(rest, " "))
	case "id":
		return false, c.setID(rest)
	case "fields":
		return false, c.fields()
	case "field":
		return false, c.setField(rest)
	case "save":
		return false, c.save()
	case "cancel":
		return false, c.catalog.Cancel(c.kind)
	case "copy":
		return false, c.copy(rest)
	case "select":
		return false, c.selectRecord(rest)
	case "delete":
		return false, c.delete(scanner, rest)
	case "stats":
		c.stats()
	case "audit":
		c.audit()
	case "export":
		return false, c.exportItems(rest)
	case "write":
		return false, c.state.Save()
	case "load":
		return false, c.state.Load()
	case "set":
		return false, c.setSetting(rest)
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.Errorf("unknown command %q, type \"help\"", cmd)
	}

	return false, nil
}

func (c *console) use(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: use <kind>")
	}

	kind := entity.Kind(args[0])
	for _, known := range c.catalog.Kinds() {
		if kind == known {
			c.kind = kind

			return nil
		}
	}

	return errors.Errorf("unknown kind %q, see \"kinds\"", args[0])
}

func (c *console) list() error {
	views, err := c.catalog.List(c.kind)
	if err != nil {
		return err
	}

	for _, view := range views {
		c.printf("  %6d  %s\n", view.ID, view.Name)
	}
	c.printf("%d %s record(s)\n", len(views), c.kind)

	return nil
}

func (c *console) show(args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	view, err := c.catalog.Show(c.kind, id)
	if err != nil {
		return err
	}

	c.printf("%s\n", view.Detail)

	return nil
}

func (c *console) edit(args []string) error {
	id, err := parseID(args, "edit <id>")
	if err != nil {
		return err
	}

	return c.catalog.StartEdit(c.kind, id)
}

func (c *console) draft() error {
	view, active, err := c.catalog.Draft(c.kind)
	if err != nil {
		return err
	}
	if !active {
		c.printf("no active draft\n")

		return nil
	}

	c.printf("draft: %d %q\n", view.ID, view.Name)
	if view.Detail != "" {
		c.printf("%s\n", view.Detail)
	}
	if draftErr := c.catalog.DraftError(c.kind); draftErr != nil {
		c.printf("last error: %v\n", draftErr)
	}

	return nil
}

func (c *console) setID(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: id <number>")
	}

	return c.catalog.SetDraftID(c.kind, args[0])
}

func (c *console) fields() error {
	names, err := c.catalog.Fields(c.kind)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		c.printf("%s has no fields beyond name and id\n", c.kind)

		return nil
	}

	for _, name := range names {
		c.printf("  %s\n", name)
	}

	return nil
}

func (c *console) setField(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: field <name> [value]")
	}

	// Everything after the field name is the raw value; an absent value
	// clears optional fields.
	return c.catalog.SetDraftField(c.kind, args[0], strings.Join(args[1:], " "))
}

func (c *console) save() error {
	id, err := c.catalog.Save(c.kind)
	if err != nil {
		return err
	}

	c.printf("saved %s %d\n", c.kind, id)

	return nil
}

func (c *console) copy(args []string) error {
	id, err := parseID(args, "copy <id>")
	if err != nil {
		return err
	}

	newID, err := c.catalog.Copy(c.kind, id)
	if err != nil {
		return err
	}

	c.printf("copied %s %d to %d\n", c.kind, id, newID)

	return nil
}

func (c *console) selectRecord(args []string) error {
	id, err := parseID(args, "select <id>")
	if err != nil {
		return err
	}

	return c.catalog.Select(c.kind, id)
}

// delete shows the deletion plan and asks for a y/N confirmation before
// anything is touched.
func (c *console) delete(scanner *bufio.Scanner, args []string) error {
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}

	plan, err := c.catalog.PlanDelete(c.kind, id)
	if err != nil {
		return err
	}

	c.printf("delete %s %d?\n", plan.Kind, plan.ID)
	for _, affected := range plan.Affected {
		c.printf("  references from %s will be cleared: %v\n", affected.Kind, affected.IDs)
	}

	c.printf("confirm [y/N]: ")
	if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
		c.printf("cancelled\n")

		return nil
	}

	return c.catalog.ConfirmDelete(plan)
}

func (c *console) stats() {
	stats := c.catalog.Stats()
	for _, kind := range c.catalog.Kinds() {
		c.printf("  %-17s %d\n", kind, stats[kind])
	}
}

func (c *console) audit() {
	violations := c.catalog.Audit()
	if len(violations) == 0 {
		c.printf("no violations\n")

		return
	}

	for _, v := range violations {
		c.printf("  %s %d: %v\n", v.Kind, v.ID, v.Err)
	}
	c.printf("%d violation(s)\n", len(violations))
}

func (c *console) exportItems(args []string) error {
	path := c.cfg.Export.DefaultFileName
	if len(args) == 1 {
		path = args[0]
	}

	return c.export.ExportItems(path)
}

func (c *console) setSetting(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set autosave|backups on|off, or set theme light|dark")
	}

	switch key, value := args[0], args[1]; key {
	case "autosave", "backups":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}

		return c.state.UpdateSettings(func(s entity.UserSettings) entity.UserSettings {
			if key == "autosave" {
				s.AutoSave = on
			} else {
				s.CreateBackups = on
			}

			return s
		})
	case "theme":
		theme := entity.Theme(value)
		if theme != entity.ThemeLight && theme != entity.ThemeDark {
			return errors.Errorf("unknown theme %q", value)
		}

		return c.state.UpdateSettings(func(s entity.UserSettings) entity.UserSettings {
			s.Theme = theme

			return s
		})
	default:
		return errors.Errorf("unknown setting %q", key)
	}
}

func (c *console) printHelp() {
	c.printf(`commands:
  kinds                  list record kinds
  use <kind>             switch the active kind
  list                   list records of the active kind
  show <id>              print one record as JSON
  new                    open a draft with defaults
  edit <id>              open a draft cloning a record
  draft                  print the active draft and its last error
  name <text>            rename the draft
  id <number>            set the draft id (new drafts only)
  fields                 list the editable fields of the active kind
  field <name> [value]   set a draft field, no value clears it
  save                   validate and commit the draft
  cancel                 discard the draft
  copy <id>              duplicate a record under the next free id
  select <id>            mark a record as selected
  delete <id>            delete a record after confirmation
  stats                  record counts per kind
  audit                  recheck every record against the save rules
  export [path]          write the item CSV
  write                  persist the current state
  load                   reload persisted state
  set autosave on|off    toggle save-after-mutation
  set backups on|off     toggle backup-before-save
  set theme light|dark   switch the theme
  quit                   exit
`)
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func parseID(args []string, usage string) (entity.EntityID, error) {
	if len(args) != 1 {
		return 0, errors.Errorf("usage: %s", usage)
	}

	parsed, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return 0, errors.Errorf("%q is not a record id", args[0])
	}

	return entity.EntityID(parsed), nil
}

func parseOnOff(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, errors.Errorf("expected on or off, got %q", value)
	}
}
