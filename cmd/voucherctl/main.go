package main

import "github.com/Syed-Hadii/ERP-Software-sub003/internal/cli"

func main() {
	cli.Execute()
}
