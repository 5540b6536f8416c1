package main

import "github.com/budgetplanner/backend/cmd"

func main() {
	cmd.Execute()
}
