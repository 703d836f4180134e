package consoles

type nullConsole struct{}

func NewNullConsole() Console {
	return &nullConsole{}
}

func (o *nullConsole) Printf(format string, a ...any) {}

func (o *nullConsole) PushPrefix(format string, a ...any) {}

func (o *nullConsole) PopPrefix() {}
