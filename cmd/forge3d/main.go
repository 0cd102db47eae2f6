package main

import (
	"os"
	"path/filepath"
	"strings"

	"forge3d/internal/game"
)

func main() {
	// Deployed builds run relative to the binary; "go run" binaries live in
	// a temp go-build directory and keep the caller's working directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	scenePath := ""
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}
	game.New(scenePath).Run()
}
