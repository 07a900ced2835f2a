package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	require.True(t, d.IsValid())
	require.NoError(t, d.Error())

	cause := errors.New("boom")
	d.AddCause(CodeAccessorFailure, cause, "account.Profile", "Name")
	d.AddError(CodeParseFailure, "bad number", "", "Age")
	d.AddWarning("unused", "field never bound", "account.Profile", "Nick")

	require.True(t, d.HasErrors())
	err := d.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "[account.Profile] Name (accessor-failure): boom")
	assert.Contains(t, err.Error(), "Age (parse-failure): bad number")

	assert.Len(t, d.ByCode(CodeParseFailure), 1)
	assert.Empty(t, d.ByCode(CodeUnsupportedModel))
	assert.Len(t, d.Warnings, 1)
}

func TestDiagnostics_Merge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddInfo("z", "note", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "(y) second", a.Errors[1].String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
