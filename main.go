package main

import "dootrec/cmd"

func main() {
	cmd.Execute()
}
