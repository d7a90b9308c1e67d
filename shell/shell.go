package shell

import (
	"errors"
	"fmt"
	"io"
	"optiedge/inventory"
	"optiedge/model"
	"optiedge/render"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type command struct {
	usage string
	help  string
	auth  bool
	run   func(args []string) error
}

// Shell is a line-oriented front end over the inventory service. Each command
// name is bound to one handler in a table.
type Shell struct {
	svc *inventory.Service
	out io.Writer

	// Confirm asks a yes/no question before update and delete.
	Confirm func(prompt string) bool
	// ReadPassword is used when login is given only a username.
	ReadPassword func(prompt string) (string, error)

	loggedIn bool
	rows     []model.Product
	toggle   *inventory.SortToggle
	commands map[string]command
}

var errQuit = errors.New("quit")

func New(svc *inventory.Service, out io.Writer) *Shell {
	s := &Shell{
		svc:     svc,
		out:     out,
		Confirm: func(string) bool { return false },
		ReadPassword: func(string) (string, error) {
			return "", errors.New("password required")
		},
		toggle: inventory.NewSortToggle(),
	}
	s.commands = map[string]command{
		"login":  {"login <username> [password]", "Log in", false, s.onLogin},
		"list":   {"list", "Show all products", true, s.onList},
		"search": {"search [query]", "Filter by name or id", true, s.onSearch},
		"add":    {"add <name> <price> <quantity>", "Add a product", true, s.onAdd},
		"update": {"update <id> <name> <price> <quantity>", "Update a product", true, s.onUpdate},
		"delete": {"delete <id>", "Delete a product", true, s.onDelete},
		"sort":   {"sort <column>", "Sort the last listing; repeat to reverse", true, s.onSort},
		"totals": {"totals", "Show total quantity and value", true, s.onTotals},
		"export": {"export <path> [id]", "Write products to a CSV file", true, s.onExport},
		"help":   {"help", "Show this help", false, s.onHelp},
		"exit":   {"exit", "Quit", false, func([]string) error { return errQuit }},
	}
	return s
}

// Exec runs one input line. It reports quit=true for exit and quit.
func (s *Shell) Exec(line string) (quit bool, err error) {
	args, err := splitArgs(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	name := strings.ToLower(args[0])
	if name == "quit" {
		name = "exit"
	}
	cmd, ok := s.commands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q, type 'help'", args[0])
	}
	if cmd.auth && !s.loggedIn {
		return false, errors.New("please log in first")
	}
	if err := cmd.run(args[1:]); err != nil {
		if errors.Is(err, errQuit) {
			return true, nil
		}
		return false, describe(err)
	}
	return false, nil
}

// Run reads commands with readline until exit, EOF or interrupt.
func (s *Shell) Run() error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = home + "/.optiedge_history"
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[1;36moptiedge>\033[0m ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	s.Confirm = func(prompt string) bool {
		rl.SetPrompt(prompt + " [y/N] ")
		answer, err := rl.Readline()
		rl.SetPrompt("\033[1;36moptiedge>\033[0m ")
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
	s.ReadPassword = func(prompt string) (string, error) {
		b, err := rl.ReadPassword(prompt)
		return string(b), err
	}

	fmt.Fprintln(s.out, "Optiedge Inventory shell")
	fmt.Fprintln(s.out, "Type 'login admin' to begin, 'help' for commands, 'exit' to quit.")
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}
		quit, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(s.out, "\033[1;31mError:\033[0m %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// describe turns core errors into the messages shown to the user.
func describe(err error) error {
	var verr *inventory.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("input error: %s", verr.Message)
	case errors.Is(err, inventory.ErrNotFound):
		return errors.New("product not found, list again and pick an existing id")
	case errors.Is(err, inventory.ErrNoProducts):
		return errors.New("no products to export")
	case errors.Is(err, inventory.ErrTotalOverflow):
		return errors.New("total quantity is too large to display")
	}
	return err
}

func (s *Shell) onLogin(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: login <username> [password]")
	}
	password := ""
	if len(args) == 2 {
		password = args[1]
	} else {
		p, err := s.ReadPassword("Password: ")
		if err != nil {
			return err
		}
		password = p
	}
	ok, err := s.svc.Authenticate(args[0], password)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("invalid username or password")
	}
	s.loggedIn = true
	fmt.Fprintf(s.out, "Welcome, %s.\n", args[0])
	return nil
}

func (s *Shell) onList(args []string) error {
	rows, err := s.svc.ListAll()
	if err != nil {
		return err
	}
	s.rows = rows
	return s.printRows()
}

func (s *Shell) onSearch(args []string) error {
	rows, err := s.svc.Search(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.rows = rows
	return s.printRows()
}

func (s *Shell) onAdd(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: add <name> <price> <quantity>")
	}
	p, err := s.svc.Add(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Product added (ID %d)\n", p.ID)
	return s.printTotals()
}

func (s *Shell) onUpdate(args []string) error {
	if len(args) != 4 {
		return errors.New("usage: update <id> <name> <price> <quantity>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	prompt := fmt.Sprintf("Update product ID %d to name='%s', price=%s, qty=%s?", id, args[1], args[2], args[3])
	if !s.Confirm(prompt) {
		fmt.Fprintln(s.out, "Cancelled")
		return nil
	}
	if _, err := s.svc.Update(id, args[1], args[2], args[3]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Product updated")
	return s.printTotals()
}

func (s *Shell) onDelete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if !s.Confirm(fmt.Sprintf("Delete product ID %d?", id)) {
		fmt.Fprintln(s.out, "Cancelled")
		return nil
	}
	deleted, err := s.svc.Delete(id)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(s.out, "Product deleted")
	} else {
		fmt.Fprintln(s.out, "Nothing to delete")
	}
	return s.printTotals()
}

func (s *Shell) onSort(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: sort <id|name|price|quantity|total_value>")
	}
	col, ok := inventory.ParseColumn(args[0])
	if !ok {
		return fmt.Errorf("unknown column %q", args[0])
	}
	if s.rows == nil {
		if err := s.onList(nil); err != nil {
			return err
		}
	}
	s.rows = inventory.Sort(s.rows, col, s.toggle.Next(col))
	return s.printRows()
}

func (s *Shell) onTotals(args []string) error {
	return s.printTotals()
}

func (s *Shell) onExport(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: export <path> [id]")
	}
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("could not create %s: %w", args[0], err)
	}

	if len(args) == 2 {
		var id int64
		id, err = parseID(args[1])
		if err == nil {
			err = s.svc.ExportProductCSV(f, id)
		}
	} else {
		err = s.svc.ExportCSV(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(args[0])
		return err
	}
	fmt.Fprintf(s.out, "Exported to %s\n", args[0])
	return nil
}

func (s *Shell) onHelp(args []string) error {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"Command", "Description"})
	for _, name := range names {
		t.AppendRow(table.Row{s.commands[name].usage, s.commands[name].help})
	}
	t.Render()
	return nil
}

func (s *Shell) printRows() error {
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Price", "Quantity", "Total Value"})
	for _, p := range s.rows {
		t.AppendRow(table.Row{p.ID, p.Name, render.FormatMoney(p.Price), render.FormatCount(p.Quantity), render.FormatMoney(p.TotalValue())})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
	return s.printTotals()
}

func (s *Shell) printTotals() error {
	totals, err := s.svc.Totals()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Total Quantity: %s\nTotal Inventory Value: %s\n",
		render.FormatCount(totals.Quantity), render.FormatMoney(totals.Value))
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

// splitArgs splits on whitespace and keeps double-quoted runs together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case (r == ' ' || r == '\t') && !inQuote:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}
