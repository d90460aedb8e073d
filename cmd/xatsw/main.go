package main

import "github.com/wwwyo/xatsw/internal/cli"

func main() {
	cli.Execute()
}
