package main

import "github.com/meander-gen/meander/cmd"

func main() {
	cmd.Execute()
}
