package main

import "partifin/cmd"

func main() {
	cmd.Execute()
}
