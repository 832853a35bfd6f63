// Package snippet loads the code samples shown next to each example form.
//
// Samples live in YAML files, one file per example:
//
//	example: email-validation
//	snippets:
//	  - kind: backend
//	    title: Backend validation
//	    language: go
//	    file_name: email.go
//	    code: |
//	      package main
//
// Load reads every file matching a glob from an fs.FS, usually an embed.FS,
// and indexes the samples by example and kind. Code is served byte for byte.
package snippet
