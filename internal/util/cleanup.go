package util

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var writeInFlight atomic.Bool

// MarkWriteStarted flags that the output file is currently being written, so
// an interrupt knows a truncated file may be on disk.
func MarkWriteStarted() { writeInFlight.Store(true) }

func MarkWriteFinished() { writeInFlight.Store(false) }

func SetupInterruptHandler(outputPath string) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Println("\nInterrupt received. Cleaning up...")

		RemovePartialOutput(outputPath)
		fmt.Println("Exiting due to interrupt.")

		os.Exit(1)
	}()
}

// RemovePartialOutput deletes the generated file only when the interrupt
// landed mid-write. Output from an earlier completed run is left alone.
func RemovePartialOutput(outputPath string) {
	if !writeInFlight.Load() {
		return
	}

	if err := os.Remove(outputPath); err == nil {
		fmt.Printf("Removed truncated %s\n", outputPath)
	}
}
