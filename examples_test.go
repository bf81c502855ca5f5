package stringwidth_test

import (
	"fmt"

	stringwidth "github.com/robhz786/string-width"
)

func ExampleWidth() {
	fmt.Println(stringwidth.Width(1<<30, "café", stringwidth.SurrogateStrict))
	// Output: 4
}

func ExampleWidth_wide() {
	fmt.Println(stringwidth.Width(1<<30, "日本語", stringwidth.SurrogateStrict))
	// Output: 6
}

func ExampleWidth_limit() {
	// Width caps at the limit once it is exceeded, rather than reporting
	// how much of the limit the fitting clusters actually used.
	fmt.Println(stringwidth.Width(3, "日本語", stringwidth.SurrogateStrict))
	// Output: 3
}

func ExampleWidthAndPos() {
	// Width is still capped at the limit, same as Width; pos reports the
	// byte offset of the first code point that did not fit.
	width, pos := stringwidth.WidthAndPos(3, "日本語", stringwidth.SurrogateStrict)
	fmt.Println(width, pos)
	// Output: 3 3
}
