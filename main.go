package main

import "github.com/user/fieldeditor/cmd"

func main() {
	cmd.Execute()
}
