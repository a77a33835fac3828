package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	maxNameLength = 255
	dateLayout    = "2006-01-02"
)

var (
	// notBlank needs one rune that is neither whitespace nor a Unicode separator.
	notBlank = validation.Match(regexp.MustCompile(`[^\s\p{Z}]`)).Error("cannot be blank")
	// noNUL keeps values storable as Postgres text.
	noNUL = validation.Match(regexp.MustCompile(`^[^\x00]*$`)).Error("must not contain NUL bytes")
)
