package main

import "github.com/dbsmedya/metasheet/cmd/metasheet/cmd"

func main() {
	cmd.Execute()
}
