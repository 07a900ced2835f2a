package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/term"

	"model-binder/binding"
	"model-binder/declare"
	"model-binder/examples/account"
	"model-binder/tui"
)

const accountPkg = "model-binder/examples/account"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), err
}

func TestRun_Usage(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = execute(t, "generate")
	assert.ErrorIs(t, err, errUsage)

	_, err = execute(t, "inspect", accountPkg)
	assert.ErrorIs(t, err, errUsage)

	out, err := execute(t, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "modelbind check")
}

func TestRun_Inspect(t *testing.T) {
	out, err := execute(t, "inspect", accountPkg, "Customer")
	require.NoError(t, err)

	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Customer.Preferences.Volume")
	assert.Contains(t, out, "volumeSlider,volumeInput")
	assert.Contains(t, out, "Customer.*Shipping.City")
	assert.Contains(t, out, "shippingPanel")
	assert.Contains(t, out, "IsActive/SetActive")

	_, err = execute(t, "inspect", accountPkg, "Missing")
	assert.ErrorContains(t, err, "not found")
}

func TestRun_ExportAndCheck(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bind.yaml")

	out, err := execute(t, "export", "-o", file, accountPkg)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 4 models")

	out, err = execute(t, "check", file, accountPkg)
	require.NoError(t, err)
	assert.Contains(t, out, "4 models ok")

	stdoutYAML, err := execute(t, "export", accountPkg)
	require.NoError(t, err)

	written, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, string(written), stdoutYAML)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte(`version: "1"
models:
  - type: account.Customer
    fields:
      Nickname: nickInput
`), 0o644))

	out, err = execute(t, "check", broken, accountPkg)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "field_not_found")
}

func TestRun_DemoNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running in a terminal")
	}

	_, err := execute(t, "demo")
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestNewDemo(t *testing.T) {
	d, err := newDemo(binding.DefaultConfig(), zap.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(d.binding.Unbind)

	email := d.form.FindViewByID(account.HandleEmail).(*tui.TextField)
	assert.Equal(t, "ada@example.com", email.Text())

	active := d.form.FindViewByID(account.HandleActive).(*tui.Toggle)
	assert.True(t, active.Checked())

	volume := d.form.FindViewByID(account.HandleVolumeSlider).(*tui.Slider)
	assert.Equal(t, 40, volume.Progress())

	shipping := d.form.FindViewByID(account.HandleShippingPanel).(*tui.Group)
	city := shipping.FindViewByID(account.HandleCity).(*tui.TextField)
	assert.Equal(t, "Berlin", city.Text())

	d.form.Init()
	d.form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, d.customer.Email)

	d.form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bob")})
	assert.Empty(t, d.customer.Email, "rejected by SetEmail")
	assert.Contains(t, d.form.Status(), "email must contain @")
}

func TestNewDemo_Declarations(t *testing.T) {
	f := &declare.File{Version: declare.CurrentVersion}
	f.Model("account.Customer").Ignore = []string{"Email"}

	d, err := newDemo(binding.DefaultConfig(), zap.NewNop(), f)
	require.NoError(t, err)
	t.Cleanup(d.binding.Unbind)

	email := d.form.FindViewByID(account.HandleEmail).(*tui.TextField)
	assert.Empty(t, email.Text())

	name := d.form.FindViewByID(account.HandleName).(*tui.TextField)
	assert.Equal(t, "Ada Lovelace", name.Text())
}
