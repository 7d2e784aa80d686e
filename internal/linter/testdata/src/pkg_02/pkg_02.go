package pkg_02

func zrun() {}

func yrun() {
	zrun() // want "запрещенный вызов функции"
}

func xrun() {
	// из других функций вызов разрешен
	zrun()
}
