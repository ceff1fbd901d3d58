package main

import "github.com/chicco-carone/F1-2018-Terminal-Dashboard/cmd"

func main() {
	cmd.Execute()
}
