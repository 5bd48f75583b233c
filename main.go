package main

import "menu-manager/cmd"

func main() {
	cmd.Execute()
}
