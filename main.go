package main

import "github.com/alexiusacademia/gospring/cmd"

func main() {
	cmd.Execute()
}
