package main

import "github.com/sjbeckles/fiscboard/cmd"

func main() {
	cmd.Execute()
}
