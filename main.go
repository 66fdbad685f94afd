package main

import "github.com/arjunv/moodlog/cmd/moodlog"

func main() {
	moodlog.Execute()
}
