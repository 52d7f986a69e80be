package main

import "github.com/surreal-look0e/Base-Horizon/cmd"

func main() {
	cmd.Execute()
}
