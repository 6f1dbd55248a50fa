// cmd/indexdist/main.go
package main

import (
	"indexdist/internal/app"
	"indexdist/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
