// Package tui hosts bindable widgets in a terminal form built on bubbletea.
//
// A Form is a widget.Container: controls are registered under view handles
// and can be bound like any other widget tree.
//
//	form := tui.NewForm("Account")
//	form.Add(account.HandleEmail, tui.NewTextField("Email"))
//	billing := form.Panel(account.HandleBillingPanel, "Billing")
//	billing.Add(account.HandleStreet, tui.NewTextField("Street"))
//
//	b, err := binding.New(account.Resources()).Bind(customer, form)
//	...
//	_, err = tea.NewProgram(form).Run()
//
// Controls notify their listeners from inside Update, so binding callbacks
// run on the program's event loop.
package tui
