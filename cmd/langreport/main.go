// Package main provides the entry point for the langreport CLI.
//
// langreport asks the GitHub API which languages a repository is written in
// and keeps a percentage table of them inside a marker-delimited block of
// README.md.
//
// Usage:
//
//	langreport update
//	langreport update --repo owner/name --file docs/README.md
//	langreport show --json
//
// See --help for all available options.
package main

func main() {
	Execute()
}
