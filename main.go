package main

import "github.com/hoppxi/zbacklight/internal/cmd"

func main() {
	cmd.Execute()
}
