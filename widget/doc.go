// Package widget describes the host UI toolkit as the binding engine sees it.
//
// The engine never depends on a concrete toolkit. It talks to widgets through
// four family interfaces, each a native get/set pair plus a change
// subscription:
//
//   - TextInput: text fields and labels
//   - Checkable: check boxes, toggles and radio buttons
//   - Slider: discrete-range seek bars
//   - Rating: continuous-range rating bars
//
// Views are located by id through Container. Symbolic ids are mapped to
// numeric handles by a Resources namespace, mirroring how layout files name
// widgets.
//
// Toolkit adapters can use Listeners to implement the change subscriptions.
package widget
