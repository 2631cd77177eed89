package main

import "sync-gateway/cmd"

func main() {
	cmd.Execute()
}
