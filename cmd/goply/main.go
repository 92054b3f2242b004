package main

import "github.com/OpenTraceLab/goply/cmd/goply/cmd"

func main() {
	cmd.Execute()
}
