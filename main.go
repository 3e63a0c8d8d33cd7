package main

import "github.com/rami3l/goequator/cmd"

func main() { _ = cmd.App().Execute() }
