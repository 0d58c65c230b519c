// Command rekson-gen emits a single random, syntactically valid JSON
// value to standard output. It exists only to seed the corpus under
// testdata/ — it is not part of the core repair pipeline.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/pborman/getopt"
)

// valueType is one of the JSON value kinds generate can produce.
type valueType int

const (
	typeString valueType = iota
	typeNumber
	typeObject
	typeArray
	typeBool
	typeNull
)

var valueTypeNames = map[string]valueType{
	"string": typeString,
	"number": typeNumber,
	"object": typeObject,
	"array":  typeArray,
	"bool":   typeBool,
	"null":   typeNull,
}

// leafTypes excludes object/array: the kinds generate_type in the original
// generator still allows once max depth is reached.
var leafTypes = []valueType{typeString, typeNumber, typeBool, typeNull}

var allTypes = []valueType{typeString, typeNumber, typeObject, typeArray, typeBool, typeNull}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func main() {
	logger := log.New(os.Stderr, "rekson-gen: ", 0)

	seed := 0
	rootType := "object"
	maxDepth := 10
	maxLength := 10

	getopt.IntVarLong(&seed, "seed", 's', "deterministic PRNG seed")
	getopt.StringVarLong(&rootType, "type", 't', "root value kind: string, number, object, array, bool, null", "TYPE")
	getopt.IntVarLong(&maxDepth, "depth", 'd', "max nesting depth")
	getopt.IntVarLong(&maxLength, "length", 'l', "max string/array/object size")
	getopt.Parse()

	root, ok := valueTypeNames[strings.ToLower(rootType)]
	if !ok {
		logger.Fatalf("unknown --type %q", rootType)
	}

	random := rand.New(rand.NewSource(int64(seed)))

	fmt.Print(generateValue(random, maxLength, maxDepth, root))
}

// pickType chooses a value kind at the given remaining depth: once depth
// reaches zero, object/array are excluded so generation terminates.
func pickType(random *rand.Rand, depth int) valueType {
	choices := allTypes
	if depth == 0 {
		choices = leafTypes
	}

	return choices[random.Intn(len(choices))]
}

func generateValue(random *rand.Rand, length, depth int, forcedType ...valueType) string {
	t := pickType(random, depth)
	if len(forcedType) > 0 {
		t = forcedType[0]
	}

	return generate(random, length, depth, t)
}

func generate(random *rand.Rand, length, depth int, t valueType) string {
	switch t {
	case typeString:
		min := 1
		if depth == 0 {
			min = 0
		}
		n := min
		if length > min {
			n = min + random.Intn(length-min)
		}

		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphanumeric[random.Intn(len(alphanumeric))])
		}

		return `"` + sb.String() + `"`

	case typeNumber:
		return fmt.Sprintf("%d", int32(random.Uint32()))

	case typeObject:
		n := 0
		if length > 0 {
			n = random.Intn(length)
		}

		parts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			key := generate(random, length, 1, typeString)
			value := generateValue(random, length, depth-1)
			parts = append(parts, key+":"+value)
		}

		return "{" + strings.Join(parts, ",") + "}"

	case typeArray:
		n := 0
		if length > 0 {
			n = random.Intn(length)
		}

		parts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			parts = append(parts, generateValue(random, length, depth-1))
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case typeBool:
		if random.Intn(2) == 0 {
			return "false"
		}
		return "true"

	case typeNull:
		return "null"
	}

	panic("unknown valueType")
}
