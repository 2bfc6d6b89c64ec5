// Demonstration program for the msglog package: walks through the basic
// message categories, context prefixes, log file configuration, thread
// safety and color customization.
package main

import (
	"fmt"
	"sync"

	"github.com/abyssdigger/msglog"
)

const threadNum = 4

func main() {
	fmt.Println("Basic message types:")

	msglog.Message("", "This is a normal message.")
	msglog.Success("", "This is a success message.")
	msglog.Warning("", "This is a warning message.")
	msglog.Error("", "This is an error message.")
	msglog.Info("", "This is an info message.")

	fmt.Println()
	fmt.Println("Messages with context:")

	msglog.Message("Context 1", "This is a normal message with a context.")
	msglog.Success("Context 2", "This is a success message with a context.")
	msglog.Warning("Context 3", "This is a warning message with a context.")
	msglog.Error("Context 4", "This is an error message with a context.")
	msglog.Info("Context 5", "This is an info message with a context.")

	fmt.Println()
	fmt.Println("Creating a log file:")

	if err := msglog.ConfigureLogFile("logger-test.log", msglog.FILE_TRUNCATE); err == nil {
		msglog.Message("Log context 1", "This is a normal message that is being logged.")
		msglog.Success("Log context 2", "This is a success message that is being logged.")
	}
	msglog.Shutdown()

	fmt.Println()
	fmt.Println("Append to an existing log file:")

	if err := msglog.ConfigureLogFile("logger-test.log", msglog.FILE_APPEND); err == nil {
		msglog.Success("New context", "Appended successfully.")
	}

	fmt.Println()
	fmt.Println("Using multiple goroutines:")

	msglog.EnableThreadSafety()

	var wg sync.WaitGroup
	for i := 1; i <= threadNum; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logABunch(fmt.Sprintf("Goroutine %d", id))
		}(i)
	}
	wg.Wait()
	for i := 1; i <= threadNum; i++ {
		msglog.Success("Main", "Goroutine %d finished!", i)
	}

	fmt.Println()
	fmt.Println("Getting the display colors currently used in the logger:")

	successMsg := msglog.MsgColors(msglog.MSG_SUCCESS)
	successTag := msglog.TagColors(msglog.TAG_SUCCESS)

	msglog.ColorText(successMsg.Text)
	msglog.ColorBackground(successTag.Text)
	fmt.Println("Text and background colors copied from the success message and tag text colors!")
	msglog.ResetColors()

	fmt.Println()
	fmt.Println("Changing the display colors used in the logger:")

	msglog.SetTagColors(msglog.TAG_CONTEXT, msglog.DisplayColors{
		Text:       msglog.COL_BRIGHT_GREEN,
		Background: msglog.COL_BRIGHT_WHITE,
	})
	msglog.SetMsgColors(msglog.MSG_INFO, msglog.DisplayColors{
		Text:       msglog.COL_BRIGHT_WHITE,
		Background: msglog.COL_CYAN,
	})
	msglog.SetTagColors(msglog.TAG_INFO, msglog.DisplayColors{
		Text:       msglog.COL_BRIGHT_BLACK,
		Background: msglog.COL_CYAN,
	})

	msglog.Info("My context", "This is an info message with a custom color scheme!")

	fmt.Println()
	fmt.Println("Resetting the display colors used in the logger:")

	msglog.ResetLoggerColors()
	msglog.Info("Another context", "The logger color scheme has been reset!")

	fmt.Println()
	fmt.Printf("Current time format: %s\n", msglog.TimeFormat())

	fmt.Println()
	fmt.Println("Changing the time format in the log file:")

	msglog.ConfigureLogFile("logger-test.log", msglog.FILE_APPEND)
	if err := msglog.SetTimeFormat("New format: %H.%M.%S"); err == nil {
		msglog.Success("New time format", "Look at the log file time!")
	}

	msglog.Shutdown()
}

// logABunch exercises every category plus a caller-side critical section
// bracketed with Lock/Unlock.
func logABunch(context string) {
	for i := 1; i <= 6; i++ {
		switch i % 6 {
		case 1:
			msglog.Message(context, "Message number %d!", i)
		case 2:
			msglog.Error(context, "Message number %d!", i)
		case 3:
			msglog.Info(context, "Message number %d!", i)
		case 4:
			msglog.Success(context, "Message number %d!", i)
		case 5:
			msglog.Warning(context, "Message number %d!", i)
		case 0:
			msglog.Lock()
			msglog.ColorText(msglog.COL_BLUE)
			msglog.ColorBackground(msglog.COL_BRIGHT_GREEN)
			fmt.Printf("%s: Message number %d!\n", context, i)
			msglog.ResetColors()
			msglog.Unlock()
		}
	}
}
