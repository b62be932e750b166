package main

import "github.com/deploymenttheory/go-initfield/cmd"

func main() {
	cmd.Execute()
}
