package linegrep_test

import (
	"fmt"

	"github.com/coregx/linegrep"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := linegrep.Compile(`\d+`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.Match([]byte("hello 123")))
	// Output: true
}

// ExampleMustCompile demonstrates backreferences.
func ExampleMustCompile() {
	re := linegrep.MustCompile(`(\w+) and \1`)
	fmt.Println(re.MatchString("cat and cat"))
	fmt.Println(re.MatchString("cat and dog"))
	// Output:
	// true
	// false
}

// ExampleMatchString demonstrates the one-shot helper and its error.
func ExampleMatchString() {
	matched, err := linegrep.MatchString(`(cat|dog)s`, "hot dogs")
	fmt.Println(matched, err)

	_, err = linegrep.MatchString(`a{2}`, "aa")
	fmt.Println(err)
	// Output:
	// true <nil>
	// error parsing regexp: unsupported construct: `{2}`
}

// ExampleRegex_Find demonstrates finding the match text.
func ExampleRegex_Find() {
	re := linegrep.MustCompile(`\d+`)
	fmt.Println(string(re.Find([]byte("age: 42 years"))))
	// Output: 42
}

// ExampleRegex_FindIndex demonstrates finding match positions.
func ExampleRegex_FindIndex() {
	re := linegrep.MustCompile(`\d+`)
	loc := re.FindIndex([]byte("age: 42"))
	fmt.Printf("Match at [%d:%d]\n", loc[0], loc[1])
	// Output: Match at [5:7]
}

// ExampleRegex_FindStringSubmatch demonstrates capture groups.
func ExampleRegex_FindStringSubmatch() {
	re := linegrep.MustCompile(`^(\w+): (\d+)$`)
	fmt.Printf("%q\n", re.FindStringSubmatch("error: 42"))
	// Output: ["error: 42" "error" "42"]
}

// ExampleQuoteMeta demonstrates escaping literal text.
func ExampleQuoteMeta() {
	fmt.Println(linegrep.QuoteMeta("1+1=2?"))
	// Output: 1\+1=2\?
}

// ExampleCompileWithConfig demonstrates retrying a leading group at later
// positions.
func ExampleCompileWithConfig() {
	config := linegrep.DefaultConfig()
	fmt.Println(linegrep.MustCompile(`(cat|dog)s`).MatchString("cat dogs"))

	config.RetryGroupStart = true
	re, err := linegrep.CompileWithConfig(`(cat|dog)s`, config)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.MatchString("cat dogs"))
	// Output:
	// false
	// true
}
