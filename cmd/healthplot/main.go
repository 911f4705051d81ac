package main

import "github.com/arloliu/healthplot/internal/cli"

func main() {
	cli.Execute()
}
