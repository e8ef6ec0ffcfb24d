package main

import "usergroups/cmd"

func main() {
	cmd.Execute()
}
