package main

import "moviesstore-backend/cmd"

func main() {
	cmd.Execute()
}
