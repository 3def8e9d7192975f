package main

import "crmlite/internal/app"

func main() {
	app.Run()
}
