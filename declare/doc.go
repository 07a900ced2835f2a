// Package declare loads binding declarations from YAML files.
//
// A declarations file lets a screen rebind models without touching struct
// tags, for example to target a different layout variant. Entries in the file
// take priority over `bind` tags.
//
// # Schema
//
//	version: "1"
//	models:
//	  - type: account.Profile          # reflect type string or full import path
//	    fields:
//	      Name: nameInput              # single target
//	      Active: [checkBox1, radio1]  # several targets, bound in order
//	      Level: "#12"                 # numeric handle
//	    ignore:
//	      - Secret                     # neither bound nor traversed
//
// A field listed under both fields and ignore is reported by Validate.
package declare
