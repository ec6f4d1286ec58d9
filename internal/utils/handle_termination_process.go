package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// HandleTerminationProcess по SIGINT/SIGTERM выполняет cleanup-функции в обратном порядке и завершает процесс.
func HandleTerminationProcess(cleanups ...func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		os.Exit(0)
	}()
}
