// cmd/motifdfa/main.go
package main

import (
	"motifdfa/internal/app"
	"motifdfa/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
