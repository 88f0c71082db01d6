// Package main provides the entry point for the passmeter CLI.
//
// passmeter rates password strength. It scores single passwords, audits
// password lists, tracks audit history, and serves a JSON HTTP API.
//
// Usage:
//
//	passmeter analyze <password>
//	passmeter audit <file>
//	passmeter compare <source>
//	passmeter serve
//
// See --help for all available options.
package main

func main() {
	Execute()
}
