package main

import "github.com/civicalert/citizen-services/cmd"

func main() {
	cmd.Execute()
}
