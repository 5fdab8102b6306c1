package main

import "github.com/stoik/topup/internal/app"

func main() {
	app.Execute()
}
