// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package js

import (
	"sync"

	pc "gopkg.microglot.org/parsecomb.go/parsecomb"
)

var grammar = sync.OnceValue(newGrammar)

// Parser returns the document parser: a single element surrounded by
// optional whitespace. It does not require the input to be fully consumed.
func Parser() pc.Parser[Value] {
	return grammar()
}

// Parse parses input as a complete document.
func Parse(input string) (Value, error) {
	return pc.ParseAll(grammar(), input)
}

func toValue(u pc.Union4[String, Number, Object, Array]) Value {
	return pc.Match4(u,
		func(v String) Value { return v },
		func(v Number) Value { return v },
		func(v Object) Value { return v },
		func(v Array) Value { return v },
	)
}

func newGrammar() pc.Parser[Value] {
	ws := pc.Alt(pc.Char(' '), pc.Char('\n'), pc.Char('\t'))
	wss := pc.ManyZeroOrMore(ws)
	character := pc.Alt(ws, pc.CharRange('a', 'z'), pc.CharRange('A', 'Z'), pc.CharRange('0', '9'))
	number := pc.Map(pc.SignedInteger(), func(v int32) Number { return Number(v) })
	str := pc.Map(
		pc.DiscardSurround(pc.Char('"'), pc.FoldZeroOrMore(character, pc.BytesAggregator()), pc.Char('"')),
		func(b []byte) String { return String(b) },
	)

	var object pc.Forward[Object]
	var array pc.Forward[Array]

	value := pc.Traced("value", pc.Map(
		pc.Alt4(str, number, pc.Parser[Object](object.Parse), pc.Parser[Array](array.Parse)),
		toValue,
	))

	// element = ws value ws
	element := pc.DiscardSurround(wss, value, wss)
	elements := pc.SeparatedList(element, pc.Char(','))

	// array = '[' ws ']' | '[' elements ']'
	emptyArray := pc.Map(pc.Seq3(pc.Char('['), wss, pc.Char(']')), func(pc.Tuple3[byte, []byte, byte]) Array {
		return Array{}
	})
	nonEmptyArray := pc.Map(pc.DiscardSurround(pc.Char('['), elements, pc.Char(']')), func(vs []Value) Array {
		return Array(vs)
	})
	array.Define(pc.Traced("array", pc.Alt(emptyArray, nonEmptyArray)))

	// member = ws string ws ':' element
	member := pc.TakeOuter(pc.DiscardSurround(wss, str, wss), pc.Char(':'), element)
	members := pc.FoldSeparated(member, pc.Char(','), pc.Aggregator[pc.Tuple2[String, Value], Object]{
		Init: func() Object { return Object{} },
		Combine: func(acc Object, m pc.Tuple2[String, Value]) Object {
			acc[string(m.V0)] = m.V1
			return acc
		},
	})

	// object = '{' ws '}' | '{' members '}'
	emptyObject := pc.Map(pc.Seq3(pc.Char('{'), wss, pc.Char('}')), func(pc.Tuple3[byte, []byte, byte]) Object {
		return Object{}
	})
	nonEmptyObject := pc.DiscardSurround(pc.Char('{'), members, pc.Char('}'))
	object.Define(pc.Traced("object", pc.Alt(emptyObject, nonEmptyObject)))

	return element
}
