// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/versionchanger/cmd/versionchanger/cmd"
)

func main() {
	cmd.Execute()
}
