package main

import "github.com/KikaPereira03/cakesort/cmd"

func main() {
	cmd.Execute()
}
