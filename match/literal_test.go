package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/sliceparse/match"
	"github.com/zostay/sliceparse/parser"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		pattern []int
		input   []int
		ok      bool
		value   []int
		rest    []int
	}{
		{name: "Prefix", pattern: []int{1, 2}, input: []int{1, 2, 3}, ok: true, value: []int{1, 2}, rest: []int{3}},
		{name: "Whole", pattern: []int{1, 2}, input: []int{1, 2}, ok: true, value: []int{1, 2}, rest: []int{}},
		{name: "Mismatch", pattern: []int{1, 2}, input: []int{1, 3}},
		{name: "Empty", pattern: []int{}, input: []int{9}, ok: true, value: []int{}, rest: []int{9}},
		{name: "EmptyOnEmpty", pattern: nil, input: nil, ok: true, value: nil, rest: nil},
		{name: "PatternTooLong", pattern: []int{1, 2, 3}, input: []int{1, 2}},
		{name: "NoInput", pattern: []int{1}, input: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var r parser.Result[int, []int, match.NoMatch]
			require.NotPanics(t, func() {
				r = match.Literal(test.pattern)(test.input)
			})

			require.Equal(t, test.ok, r.OK())
			if !test.ok {
				assert.Equal(t, match.NoMatch{}, r.Err)
				return
			}

			assert.Len(t, r.Value, len(test.value))
			assert.Len(t, r.Rest, len(test.rest))
			for i := range test.value {
				assert.Equal(t, test.value[i], r.Value[i])
			}
			for i := range test.rest {
				assert.Equal(t, test.rest[i], r.Rest[i])
			}
			assert.Equal(t, len(test.pattern), parser.Consumed(test.input, r.Rest))
		})
	}
}

func TestLiteralReturnsInputView(t *testing.T) {
	pattern := []byte("ab")
	input := []byte("abc")

	r := match.Literal(pattern)(input)
	require.True(t, r.OK())
	assert.Same(t, &input[0], &r.Value[0])
	assert.Same(t, &input[2], &r.Rest[0])

	// appending to the value must not clobber the rest of the input
	_ = append(r.Value, 'x')
	assert.Equal(t, []byte("abc"), input)
}

func TestComposedLiterals(t *testing.T) {
	p := parser.ThenRight(match.Literal([]int{1}), match.Literal([]int{2}))

	r := p([]int{1, 2, 3})
	require.True(t, r.OK())
	assert.Equal(t, []int{2}, r.Value)
	assert.Equal(t, []int{3}, r.Rest)

	assert.False(t, p([]int{1, 3}).OK())
}

func TestLiterals(t *testing.T) {
	p := match.Literals([]rune("<="), []rune("<"), []rune("="))

	r := p([]rune("<=1"))
	require.True(t, r.OK())
	assert.Equal(t, "<=", string(r.Value))

	r = p([]rune("<1"))
	require.True(t, r.OK())
	assert.Equal(t, "<", string(r.Value))

	assert.False(t, p([]rune(">")).OK())
	assert.False(t, match.Literals[rune]()([]rune("<")).OK())
}

func TestStringAndBytes(t *testing.T) {
	r := match.String("héllo")([]rune("héllo wörld"))
	require.True(t, r.OK())
	assert.Equal(t, " wörld", string(r.Rest))

	b := match.Bytes("GET ")([]byte("GET /index.html"))
	require.True(t, b.OK())
	assert.Equal(t, "/index.html", string(b.Rest))

	assert.False(t, match.Bytes("POST")([]byte("GET /")).OK())
}

func TestNoMatchError(t *testing.T) {
	var err error = match.NoMatch{}
	assert.EqualError(t, err, "no match")
}
