package jsonv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/jsonv"
)

func todoDecoder() dekoda.Decoder[jsonv.Value, map[string]any] {
	return jsonv.Struct(
		jsonv.Field("userId", dekoda.Untyped(jsonv.Number())),
		jsonv.Field("id", dekoda.Untyped(jsonv.Number())),
		jsonv.Field("title", dekoda.Untyped(jsonv.String())),
		jsonv.Field("completed", dekoda.Untyped(jsonv.Bool())),
	)
}

func TestDecode_StructOverParsedJSON(t *testing.T) {
	v, err := jsonv.ParseString(`{"userId":1,"id":2,"title":"t","completed":false}`)
	require.NoError(t, err)

	todo, derr := jsonv.Decode(v, todoDecoder())
	require.Nil(t, derr)
	assert.Equal(t, 1.0, todo["userId"])
	assert.Equal(t, 2.0, todo["id"])
	assert.Equal(t, "t", todo["title"])
	assert.Equal(t, false, todo["completed"])
}

func TestDecode_MissingFieldNeverRunsOtherDecoders(t *testing.T) {
	invoked := 0
	spy := dekoda.Decoder[jsonv.Value, any](func(v jsonv.Value) (any, *dekoda.Error) {
		invoked++
		return nil, nil
	})
	d := jsonv.Struct(
		jsonv.Field("a", dekoda.Untyped(jsonv.Number())),
		jsonv.Field("b", spy),
	)
	v, err := jsonv.ParseString(`{"a": 1}`)
	require.NoError(t, err)

	_, derr := jsonv.Decode(v, d)
	require.NotNil(t, derr)
	assert.Equal(t, dekoda.KindMissingCollectionField, derr.Kind())
	assert.Equal(t, "b", derr.Field())
	assert.Zero(t, invoked)
}

func TestDecode_OptFieldSeesNull(t *testing.T) {
	d := jsonv.Struct(
		jsonv.OptField("note", dekoda.Untyped(jsonv.Nullable(jsonv.String()))),
	)
	v, err := jsonv.ParseString(`{}`)
	require.NoError(t, err)
	out, derr := jsonv.Decode(v, d)
	require.Nil(t, derr)
	assert.Nil(t, out["note"].(*string))

	v, err = jsonv.ParseString(`{"note": "hi"}`)
	require.NoError(t, err)
	out, derr = jsonv.Decode(v, d)
	require.Nil(t, derr)
	require.NotNil(t, out["note"].(*string))
	assert.Equal(t, "hi", *out["note"].(*string))
}

func TestDecode_ArrayOfTagsTheOffendingIndex(t *testing.T) {
	v, err := jsonv.ParseString(`[1, 2, "three"]`)
	require.NoError(t, err)

	_, derr := jsonv.Decode(v, jsonv.ArrayOf(jsonv.Number()))
	require.NotNil(t, derr)
	assert.Equal(t, dekoda.KindArrayItem, derr.Kind())
	assert.Equal(t, 2, derr.Index())
	assert.Equal(t, "error at item n°3:\n\texpected number", derr.Render())
}

func TestDecode_TupleMirrorsTheCoreSemantics(t *testing.T) {
	d := jsonv.Tuple(
		dekoda.Untyped(jsonv.Number()),
		dekoda.Untyped(jsonv.String()),
	)

	v, err := jsonv.ParseString(`[1]`)
	require.NoError(t, err)
	_, derr := jsonv.Decode(v, d)
	require.NotNil(t, derr)
	assert.Equal(t, dekoda.KindMissingTupleEntry, derr.Kind())
	assert.Equal(t, 2, derr.Required())

	v, err = jsonv.ParseString(`[1, "x"]`)
	require.NoError(t, err)
	out, derr := jsonv.Decode(v, d)
	require.Nil(t, derr)
	assert.Equal(t, []any{1.0, "x"}, out)
}

func TestDecode_DictOfTagsKeys(t *testing.T) {
	v, err := jsonv.ParseString(`{"a": 1, "b": "x"}`)
	require.NoError(t, err)

	_, derr := jsonv.Decode(v, jsonv.DictOf(jsonv.Number()))
	require.NotNil(t, derr)
	assert.Equal(t, dekoda.KindDictionaryValue, derr.Kind())
	assert.Equal(t, "b", derr.Field())
}

func TestDecode_GenericCombinatorsApplyToValues(t *testing.T) {
	v, err := jsonv.ParseString(`"42"`)
	require.NoError(t, err)

	length := dekoda.Map(jsonv.String(), func(s string) int { return len(s) })
	n, derr := jsonv.Decode(v, length)
	require.Nil(t, derr)
	assert.Equal(t, 2, n)

	either := dekoda.Either(
		dekoda.Map(jsonv.Number(), func(f float64) string { return "number" }),
		dekoda.Map(jsonv.String(), func(string) string { return "string" }),
	)
	kind, derr := jsonv.Decode(v, either)
	require.Nil(t, derr)
	assert.Equal(t, "string", kind)
}

func TestDecode_EnumAndCasesAndOneOf(t *testing.T) {
	type phase string

	v, err := jsonv.ParseString(`"running"`)
	require.NoError(t, err)

	p, derr := jsonv.Decode(v, jsonv.Enum[phase]("phase", "pending", "running"))
	require.Nil(t, derr)
	assert.Equal(t, phase("running"), p)

	n, derr := jsonv.Decode(v, jsonv.Cases(map[string]int{"running": 1}))
	require.Nil(t, derr)
	assert.Equal(t, 1, n)

	s, derr := jsonv.Decode(v, jsonv.OneOf("running", "stopped"))
	require.Nil(t, derr)
	assert.Equal(t, "running", s)

	bad, err := jsonv.ParseString(`"paused"`)
	require.NoError(t, err)
	_, derr = jsonv.Decode(bad, jsonv.OneOf("running", "stopped"))
	require.NotNil(t, derr)
	assert.Equal(t, dekoda.KindNoneOfCases, derr.Kind())
}

func TestDecode_RoundTripThroughStringify(t *testing.T) {
	v, err := jsonv.ParseString(`{"userId":1,"id":2,"title":"t","completed":false}`)
	require.NoError(t, err)

	todo, derr := jsonv.Decode(v, todoDecoder())
	require.Nil(t, derr)

	native, encErr := dekoda.TryEncode(todo)
	require.NoError(t, encErr)
	back, err := jsonv.FromNative(native)
	require.NoError(t, err)

	again, derr := jsonv.Decode(back, todoDecoder())
	require.Nil(t, derr)
	assert.Equal(t, todo, again)
}
