package main

// main runs the root command; subcommands register themselves in init.
func main() {
	Execute()
}
