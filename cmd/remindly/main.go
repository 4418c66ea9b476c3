//	@title			Remindly API
//	@version		1.0
//	@description	AI reminder service: extracts structured tasks from text and screenshots, derives deadline notifications and productivity suggestions

//	@BasePath	/

//	@tag.name			tasks
//	@tag.description	Task listing, completion and category operations

//	@tag.name			extraction
//	@tag.description	Model-backed task extraction from text and screenshots

//	@tag.name			notifications
//	@tag.description	Deadline notification checks and Web Push subscriptions

//	@tag.name			suggestions
//	@tag.description	Productivity suggestions derived from pending tasks

package main

import (
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
