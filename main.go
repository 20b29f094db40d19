package main

import "github.com/weiyudev/Monster-Competition/cmd"

func main() {
	cmd.Execute()
}
