package main

import (
	_ "github.com/mattn/go-sqlite3"

	"portfolio0/cmd"
	"portfolio0/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Error(err.Error())
	}
}
