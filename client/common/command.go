package common

// Command название команды.
type Command string

// CommandHelper общий интерфейс команд клиента.
type CommandHelper interface {
	// Init разбирает флаги команды.
	Init(args []string) error
	// PrintHelp печатает сообщение с помощью по команде.
	PrintHelp()
	// Run запускает команду.
	Run()
}

// RunCommand инициализирует и запускает команду,
// при ошибке разбора флагов печатает помощь.
func RunCommand(c CommandHelper, args []string) {
	if err := c.Init(args); err != nil {
		PrintError("Can not parse command flags: %s", err)
		c.PrintHelp()
		return
	}
	c.Run()
}
