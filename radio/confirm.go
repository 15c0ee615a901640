package radio

import (
	"fmt"
	"io"
)

// Confirmer presents a discovered peer to the operator and opens a yes/no
// question. The state machine never blocks on the answer: it returns to the
// event loop and resumes when a console line tagged for the open
// confirmation arrives.
type Confirmer interface {
	Prompt(address, name string)
}

// TermConfirmer writes the question to the operator console.
type TermConfirmer struct {
	W io.Writer
}

func (c TermConfirmer) Prompt(address, name string) {
	fmt.Fprintf(c.W, "Pair with %q at %s? [Y/N]\r\n", name, address)
}
