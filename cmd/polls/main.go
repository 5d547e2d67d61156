package main

import (
	"boscoin.io/polls/cmd/polls/cmd"
)

func main() {
	cmd.Execute()
}
