package debug

import (
	"fmt"
	"io"
	"os"
)

var Enabled bool = false

// Output recebe as mensagens de debug; stderr para não misturar com a saída do programa
var Output io.Writer = os.Stderr

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Output, format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		fmt.Fprintln(Output, args...)
	}
}

func Print(args ...interface{}) {
	if Enabled {
		fmt.Fprint(Output, args...)
	}
}
