package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"model-binder/binding"
	"model-binder/declare"
	"model-binder/examples/account"
	"model-binder/tui"
	"model-binder/widget"
)

var errNotTerminal = errors.New("demo needs an interactive terminal")

func runDemo(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("demo", stderr)
	decl := fs.String("decl", "", "Declarations file overriding the bind tags")
	logPath := fs.String("log", "", "Write binder logs to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := binding.ConfigFromEnv()
	if err != nil {
		return err
	}

	logger, err := newLogger(*logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var src *declare.File
	if *decl != "" {
		if src, err = declare.LoadFile(*decl); err != nil {
			return err
		}
	}

	d, err := newDemo(cfg, logger, src)
	if err != nil {
		return err
	}
	defer d.binding.Unbind()

	if _, err := tea.NewProgram(d.form, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	out, err := yaml.Marshal(d.customer)
	if err != nil {
		return err
	}

	_, err = stdout.Write(out)

	return err
}

type demo struct {
	form     *tui.Form
	customer *account.Customer
	binding  *binding.Binding
}

// newDemo binds a sample customer to the account screen. Write failures are
// shown in the form's status line.
func newDemo(cfg binding.Config, logger *zap.Logger, src *declare.File) (*demo, error) {
	d := &demo{form: accountScreen(), customer: account.Sample()}

	cfg.OnWriteError = func(err error) { d.form.SetStatus(err.Error()) }

	opts := []binding.Option{binding.WithConfig(cfg), binding.WithLogger(logger)}
	if src != nil {
		opts = append(opts, binding.WithSource(src.Source()))
	}

	b, err := binding.New(account.Resources(), opts...).Bind(d.customer, d.form)
	if err != nil {
		if b != nil {
			b.Unbind()
		}

		return nil, err
	}

	d.binding = b

	return d, nil
}

func accountScreen() *tui.Form {
	form := tui.NewForm("Account")

	form.
		Add(account.HandleEmail, tui.NewTextField("Email")).
		Add(account.HandleName, tui.NewTextField("Name")).
		Add(account.HandlePhone, tui.NewTextField("Phone")).
		Add(account.HandleActive, tui.NewToggle("Active")).
		Add(account.HandleStatus, tui.NewTextField("Status")).
		Add(account.HandleCreated, tui.NewTextField("Created"))

	prefs := form.Panel(0, "Preferences")
	prefs.
		Add(account.HandleVolumeSlider, tui.NewSlider("Volume", 0, 100, 5)).
		Add(account.HandleVolume, tui.NewTextField("Volume")).
		Add(account.HandleBrightness, tui.NewSlider("Brightness", 0, 255, 15)).
		Add(account.HandleRating, tui.NewStars("Rating", 5)).
		Add(account.HandleNewsletter, tui.NewToggle("Newsletter")).
		Add(account.HandleTimeout, tui.NewTextField("Timeout"))

	for _, panel := range []struct {
		handle widget.Handle
		title  string
	}{
		{account.HandleBillingPanel, "Billing"},
		{account.HandleShippingPanel, "Shipping"},
	} {
		form.Panel(panel.handle, panel.title).
			Add(account.HandleStreet, tui.NewTextField("Street")).
			Add(account.HandleCity, tui.NewTextField("City")).
			Add(account.HandlePostal, tui.NewTextField("Postal code"))
	}

	return form
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	return cfg.Build()
}
