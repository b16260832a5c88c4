package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lancaster-music-hall/boxoffice/internal/staff"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage the staff login",
	}
	cmd.AddCommand(a.staffPasswdCmd())
	return cmd
}

func (a *App) staffPasswdCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "passwd [username]",
		Short: "Create or replace the staff login",
		Long: `Write the staff credentials file with an argon2id password hash.

The username defaults to "admin". The password is read twice from the
terminal without echo, or once per line from stdin when piped.`,
		Example: `  boxoffice staff passwd
  boxoffice staff passwd manager --overwrite`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := "admin"
			if len(args) == 1 {
				username = args[0]
			}
			path := a.config.Staff.AuthFile

			pr := newPasswordReader(cmd.InOrStdin(), cmd.ErrOrStderr())
			password, err := pr.read("Password: ")
			if err != nil {
				return err
			}
			confirm, err := pr.read("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return errPasswordMismatch
			}

			if err := staff.WriteFile(path, username, password, overwrite); err != nil {
				if errors.Is(err, staff.ErrFileExists) {
					return fmt.Errorf("%w (use --overwrite to replace it)", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved staff login %q to %s\n", username, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing credentials file")
	return cmd
}

// passwordReader reads secrets without echo from a terminal, or as plain
// lines otherwise.
type passwordReader struct {
	in     io.Reader
	prompt io.Writer
	lines  *bufio.Reader
}

func newPasswordReader(in io.Reader, prompt io.Writer) *passwordReader {
	return &passwordReader{in: in, prompt: prompt}
}

func (p *passwordReader) read(label string) (string, error) {
	fmt.Fprint(p.prompt, label)
	if f, ok := p.in.(*os.File); ok && isTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	if p.lines == nil {
		p.lines = bufio.NewReader(p.in)
	}
	line, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
