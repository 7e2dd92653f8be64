package main

import "github.com/hallworks/ms-go-hall/cmd"

func main() {
	cmd.Execute()
}
