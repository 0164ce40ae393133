package main

import "github.com/weijiayao/finance-tracker/cmd"

func main() {
	cmd.Execute()
}
