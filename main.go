package main

import "github.com/achrafi04/fitlog/cmd/fitlog"

func main() {
	fitlog.Execute()
}
