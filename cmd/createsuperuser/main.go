// Command createsuperuser creates a superuser account. The password is read
// from the terminal without echo, or from stdin when it is not a terminal.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/wodmeet/wodmeet/internal/config"
	"github.com/wodmeet/wodmeet/internal/platform/logger"
	"github.com/wodmeet/wodmeet/internal/platform/postgres"
	"github.com/wodmeet/wodmeet/internal/redact"
	"github.com/wodmeet/wodmeet/internal/service"
	"golang.org/x/term"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var errPasswordMismatch = errors.New("passwords do not match")

func main() {
	username := flag.String("username", "", "username of the new superuser")
	flag.Parse()

	if err := run(*username); err != nil {
		fmt.Fprintln(os.Stderr, "createsuperuser:", redact.Error(err))
		os.Exit(1)
	}
}

func run(username string) error {
	if username == "" {
		return errors.New("-username is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	prompt := newPrompter(os.Stdin, os.Stderr)
	password, err := prompt.confirmedPassword()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() { _ = db.Close() }()

	gate := service.NewHashGate(cfg.Auth.HashConcurrency)
	users, err := service.NewUserService(postgres.NewPostgresUserStore(db, log), db, gate, cfg.Auth.BcryptCost, log)
	if err != nil {
		return err
	}

	return createSuperuser(context.Background(), users, username, password, log)
}

// createSuperuser creates the account and reports its ID.
func createSuperuser(ctx context.Context, users service.UserService, username, password string, log *slog.Logger) error {
	user, err := users.CreateUser(ctx, username, password, true)
	if err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}
	log.Info("superuser created", "user_id", user.ID, "username", user.Username)
	return nil
}

// prompter reads passwords from a terminal without echo, or line by line
// from any other reader.
type prompter struct {
	in       io.Reader
	out      io.Writer
	lines    *bufio.Reader
	terminal bool
	fd       int
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: in, out: out, lines: bufio.NewReader(in)}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.terminal = true
		p.fd = int(f.Fd())
	}
	return p
}

func (p *prompter) readPassword(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if p.terminal {
		raw, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := p.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirmedPassword asks for the password twice and requires both to match.
func (p *prompter) confirmedPassword() (string, error) {
	first, err := p.readPassword("Password: ")
	if err != nil {
		return "", err
	}
	second, err := p.readPassword("Password (again): ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}
	return first, nil
}
