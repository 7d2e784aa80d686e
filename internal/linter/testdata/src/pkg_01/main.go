package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("старт") // want "запрещенный вызов функции"
	os.Exit(1)           // want "запрещенный вызов функции"
}

func helper() {
	// вне main правило на os.Exit не действует
	os.Exit(1)
}
