package main

import (
	"fmt"
	"os"

	"moneytrail/cmd/add"
	"moneytrail/cmd/backup"
	"moneytrail/cmd/categories"
	exportcmd "moneytrail/cmd/export"
	"moneytrail/cmd/list"
	"moneytrail/cmd/remind"
	"moneytrail/cmd/report"
	"moneytrail/cmd/restore"
	"moneytrail/cmd/rm"
	"moneytrail/cmd/roll"
	"moneytrail/cmd/root"
	"moneytrail/cmd/voice"
)

func init() {
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(voice.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(rm.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(remind.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(restore.Cmd)
	root.Cmd.AddCommand(roll.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
