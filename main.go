package main

import "github.com/mmuldo/pigmix/cmd"

func main() {
	cmd.Execute()
}
