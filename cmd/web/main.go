package main

import "vk_randomizer_backend/internal/app"

func main() {
	app.Run()
}
