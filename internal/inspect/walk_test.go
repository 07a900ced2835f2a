package inspect

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-binder/binding"
	"model-binder/declare"
	"model-binder/examples/account"
	"model-binder/widget"
	"model-binder/widget/widgettest"
)

func TestWalk_Customer(t *testing.T) {
	graph := loadAccount(t)

	entries, err := graph.Walk(TypeID{PkgPath: accountPkg, Name: "Customer"})
	require.NoError(t, err)

	type row struct {
		Path, Root string
		Ignored    bool
	}

	got := make([]row, 0, len(entries))
	for _, e := range entries {
		got = append(got, row{e.Path, e.Root, e.Ignored})
	}

	want := []row{
		{"Customer.CreatedAt", "", false},
		{"Customer.ID", "", true},
		{"Customer.Email", "", false},
		{"Customer.FullName", "", false},
		{"Customer.Phone", "", false},
		{"Customer.active", "", false},
		{"Customer.Status", "", false},
		{"Customer.Preferences.Volume", "", false},
		{"Customer.Preferences.Brightness", "", false},
		{"Customer.Preferences.Rating", "", false},
		{"Customer.Preferences.Newsletter", "", false},
		{"Customer.Preferences.Timeout", "", false},
		{"Customer.Billing", "", false},
		{"Customer.Billing.Street", "billingPanel", false},
		{"Customer.Billing.City", "billingPanel", false},
		{"Customer.Billing.PostalCode", "billingPanel", false},
		{"Customer.Shipping", "", false},
		{"Customer.*Shipping.Street", "shippingPanel", false},
		{"Customer.*Shipping.City", "shippingPanel", false},
		{"Customer.*Shipping.PostalCode", "shippingPanel", false},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []widget.ViewID{widget.ByName("volumeSlider"), widget.ByName("volumeInput")}, entries[7].Targets)
	assert.Equal(t, TypeID{PkgPath: accountPkg, Name: "Audit"}, entries[0].Owner)
	assert.Equal(t, "*account.Address", entries[16].Type)

	assert.Equal(t, "IsActive", entries[5].Getter)
	assert.Equal(t, "SetActive", entries[5].Setter)
	assert.Empty(t, entries[2].Getter)
	assert.Equal(t, "SetEmail", entries[2].Setter)
	assert.Empty(t, entries[1].Setter, "ignored fields have no accessors")
}

func TestAccessors(t *testing.T) {
	graph := loadAccount(t)

	customer := graph.GetType(TypeID{PkgPath: accountPkg, Name: "Customer"})
	require.NotNil(t, customer)

	names := make(map[string]bool)
	for _, m := range customer.Methods {
		names[m.Name] = true
	}
	assert.Equal(t, map[string]bool{"IsActive": true, "SetActive": true, "SetEmail": true}, names)

	byName := func(name string) *FieldInfo {
		for i := range customer.Fields {
			if customer.Fields[i].Name == name {
				return &customer.Fields[i]
			}
		}
		t.Fatalf("no field %s", name)
		return nil
	}

	getter, setter := customer.Accessors(byName("active"))
	assert.Equal(t, "IsActive", getter)
	assert.Equal(t, "SetActive", setter)

	getter, setter = customer.Accessors(byName("FullName"))
	assert.Empty(t, getter)
	assert.Empty(t, setter)
}

func TestWalk_Errors(t *testing.T) {
	graph := loadAccount(t)

	_, err := graph.Walk(TypeID{PkgPath: accountPkg, Name: "Nope"})
	assert.ErrorContains(t, err, "not found")

	_, err = graph.Walk(TypeID{PkgPath: accountPkg, Name: "Custmer"})
	assert.ErrorContains(t, err, `did you mean "Customer"?`)

	_, err = graph.Walk(TypeID{PkgPath: accountPkg, Name: "Status"})
	assert.ErrorContains(t, err, "is not a struct")
}

func TestExport(t *testing.T) {
	graph := loadAccount(t)

	f := graph.Export()

	var types []string
	for _, m := range f.Models {
		types = append(types, m.Type)
	}
	assert.Equal(t, []string{"account.Address", "account.Audit", "account.Customer", "account.Preferences"}, types)

	customer := f.Model("account.Customer")
	assert.Equal(t, []string{"ID"}, customer.Ignore)
	assert.Equal(t, declare.Targets{"activeToggle"}, customer.Fields["active"])
	assert.NotContains(t, customer.Fields, "Orders")

	res := declare.Validate(f, graph)
	assert.True(t, res.IsValid(), res.Error())

	runtime, err := declare.TypesOf(
		reflect.TypeFor[account.Customer](),
		reflect.TypeFor[account.Address](),
		reflect.TypeFor[account.Audit](),
		reflect.TypeFor[account.Preferences](),
	)
	require.NoError(t, err)
	assert.True(t, declare.Validate(f, runtime).IsValid())
}

// An exported file bound as a source reproduces the tag bindings.
func TestExport_BindsLikeTags(t *testing.T) {
	graph := loadAccount(t)

	data, err := declare.Marshal(graph.Export())
	require.NoError(t, err)

	f, err := declare.Parse(data)
	require.NoError(t, err)

	bind := func(opts ...binding.Option) (*widgettest.Text, *widgettest.Checkbox) {
		email, active := widgettest.NewText(), widgettest.NewCheckbox()
		root := widgettest.NewLayout().Add(account.HandleEmail, email).Add(account.HandleActive, active)

		_, err := binding.New(account.Resources(), opts...).Bind(account.Sample(), root)
		require.NoError(t, err)

		return email, active
	}

	tagEmail, tagActive := bind()
	fileEmail, fileActive := bind(binding.WithSource(f.Source()))

	assert.Equal(t, tagEmail.Text(), fileEmail.Text())
	assert.Equal(t, tagActive.Checked(), fileActive.Checked())
}
