package main

import "github.com/finplanhq/finplan/cmd"

func main() {
	cmd.Execute()
}
