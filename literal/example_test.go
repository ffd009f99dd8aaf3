package literal_test

import (
	"fmt"

	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/syntax"
)

func ExampleExtractor_Required() {
	e := literal.NewExtractor(literal.DefaultExtractorConfig())

	for _, lit := range e.Required(syntax.MustParse("(cat|dog)s")).Literals() {
		fmt.Println(string(lit))
	}
	fmt.Println(e.Required(syntax.MustParse(`\d+`)) == nil)
	// Output:
	// cat
	// dog
	// true
}
