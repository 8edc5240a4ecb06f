package main

import "github.com/gaurav-prasanna/mdfix/cmd"

func main() {
	cmd.Execute()
}
