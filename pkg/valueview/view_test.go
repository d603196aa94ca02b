package valueview_test

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/freeval/pkg/valueview"
)

type signup struct {
	Name    string   `json:"name"`
	Age     uint8    `json:"age"`
	Bio     *string  `json:"bio"`
	Score   float64  `json:"score"`
	Tags    []string `json:"tags"`
	Secret  string   `json:"-"`
	Omitted string   `json:"omitted,omitempty"`
}

func TestOf(t *testing.T) {
	t.Run("structs follow json tags", func(t *testing.T) {
		tree, err := valueview.Of(&signup{Name: "Olamide", Age: 36, Score: 1.5, Tags: []string{"a"}, Secret: "x"})
		require.NoError(t, err)

		assert.Equal(t, "Olamide", tree["name"])
		assert.Equal(t, int64(36), tree["age"])
		assert.Equal(t, 1.5, tree["score"])
		assert.Equal(t, []any{"a"}, tree["tags"])

		bio, ok := tree["bio"]
		assert.True(t, ok, "null fields are present")
		assert.Nil(t, bio)

		assert.NotContains(t, tree, "Secret")
		assert.NotContains(t, tree, "omitted")
	})

	t.Run("maps are normalized", func(t *testing.T) {
		tree, err := valueview.Of(map[string]any{
			"n":      int32(7),
			"u":      uint(8),
			"f":      float32(0.5),
			"nested": map[string]any{"deep": int16(1)},
			"list":   []any{int8(1), "x"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(7), tree["n"])
		assert.Equal(t, int64(8), tree["u"])
		assert.Equal(t, float64(0.5), tree["f"])
		assert.Equal(t, map[string]any{"deep": int64(1)}, tree["nested"])
		assert.Equal(t, []any{int64(1), "x"}, tree["list"])
	})

	t.Run("typed map values are converted to tree values", func(t *testing.T) {
		type nickname string
		bio := "hello"
		tree, err := valueview.Of(map[string]any{
			"nil_ptr":   (*string)(nil),
			"ptr":       &bio,
			"nil_slice": []string(nil),
			"slice":     []string{"a", "b"},
			"named":     nickname("Olamide"),
			"typed_map": map[string]int{"x": 1},
			"nested":    map[string]any{"deep": (*int)(nil)},
		})
		require.NoError(t, err)

		assert.Contains(t, tree, "nil_ptr")
		assert.Nil(t, tree["nil_ptr"])
		assert.Equal(t, "hello", tree["ptr"])
		assert.Contains(t, tree, "nil_slice")
		assert.Nil(t, tree["nil_slice"])
		assert.Equal(t, []any{"a", "b"}, tree["slice"])
		assert.Equal(t, "Olamide", tree["named"])
		assert.Equal(t, map[string]any{"x": int64(1)}, tree["typed_map"])
		assert.Equal(t, map[string]any{"deep": nil}, tree["nested"])
	})

	t.Run("unencodable map values are kept", func(t *testing.T) {
		ch := make(chan int)
		tree, err := valueview.Of(map[string]any{"ch": ch})
		require.NoError(t, err)
		assert.Equal(t, ch, tree["ch"])
	})

	t.Run("url values are viewed as form values", func(t *testing.T) {
		tree, err := valueview.Of(url.Values{"name": {"a"}})
		require.NoError(t, err)
		assert.Equal(t, "a", tree["name"])
	})

	t.Run("raw json is decoded", func(t *testing.T) {
		tree, err := valueview.Of(json.RawMessage(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, int64(1), tree["a"])
	})

	t.Run("non-object values fail", func(t *testing.T) {
		for _, v := range []any{nil, "x", 42, true, []int{1}, (*signup)(nil)} {
			_, err := valueview.Of(v)
			assert.ErrorIs(t, err, valueview.ErrNotObject, "value %#v", v)
		}
	})

	t.Run("unencodable values fail", func(t *testing.T) {
		_, err := valueview.Of(struct{ C chan int }{C: make(chan int)})
		assert.ErrorIs(t, err, valueview.ErrNotObject)
	})
}

func TestFromJSON(t *testing.T) {
	t.Run("numbers keep integer precision", func(t *testing.T) {
		tree, err := valueview.FromJSON([]byte(`{"big": 9007199254740993, "f": 2.5, "ok": true, "none": null}`))
		require.NoError(t, err)

		assert.Equal(t, int64(9007199254740993), tree["big"])
		assert.Equal(t, 2.5, tree["f"])
		assert.Equal(t, true, tree["ok"])
		assert.Contains(t, tree, "none")
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		_, err := valueview.FromJSON([]byte(`{"a":`))
		assert.ErrorIs(t, err, valueview.ErrInvalidJSON)

		_, err = valueview.FromJSON(nil)
		assert.ErrorIs(t, err, valueview.ErrInvalidJSON)

		_, err = valueview.FromJSON([]byte(`{"a":1} {"b":2}`))
		assert.ErrorIs(t, err, valueview.ErrInvalidJSON)
	})

	t.Run("rejects non-object roots", func(t *testing.T) {
		_, err := valueview.FromJSON([]byte(`[1,2]`))
		assert.ErrorIs(t, err, valueview.ErrNotObject)
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("decodes scalar types", func(t *testing.T) {
		tree, err := valueview.FromYAML([]byte("name: Olamide\nage: 36\nallow: true\nbio: null\nratio: 0.5\n"))
		require.NoError(t, err)

		assert.Equal(t, "Olamide", tree["name"])
		assert.Equal(t, int64(36), tree["age"])
		assert.Equal(t, true, tree["allow"])
		assert.Equal(t, 0.5, tree["ratio"])
		assert.Contains(t, tree, "bio")
		assert.Nil(t, tree["bio"])
	})

	t.Run("nested mappings become maps", func(t *testing.T) {
		tree, err := valueview.FromYAML([]byte("address:\n  city: Lagos\n  zip: 100001\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"city": "Lagos", "zip": int64(100001)}, tree["address"])
	})

	t.Run("rejects invalid and non-object documents", func(t *testing.T) {
		_, err := valueview.FromYAML([]byte("a: [1, 2"))
		assert.ErrorIs(t, err, valueview.ErrInvalidYAML)

		_, err = valueview.FromYAML([]byte("- a\n- b\n"))
		assert.ErrorIs(t, err, valueview.ErrNotObject)

		_, err = valueview.FromYAML([]byte(""))
		assert.ErrorIs(t, err, valueview.ErrNotObject)
	})
}

func TestFromBSON(t *testing.T) {
	t.Run("converts bson types", func(t *testing.T) {
		id := bson.NewObjectID()
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		raw, err := bson.Marshal(bson.D{
			{Key: "name", Value: "Olamide"},
			{Key: "age", Value: int32(36)},
			{Key: "views", Value: int64(1 << 40)},
			{Key: "bio", Value: nil},
			{Key: "id", Value: id},
			{Key: "created", Value: bson.NewDateTimeFromTime(at)},
			{Key: "address", Value: bson.D{{Key: "city", Value: "Lagos"}}},
			{Key: "tags", Value: bson.A{"a", int32(2)}},
		})
		require.NoError(t, err)

		tree, err := valueview.FromBSON(raw)
		require.NoError(t, err)

		assert.Equal(t, "Olamide", tree["name"])
		assert.Equal(t, int64(36), tree["age"])
		assert.Equal(t, int64(1<<40), tree["views"])
		assert.Contains(t, tree, "bio")
		assert.Nil(t, tree["bio"])
		assert.Equal(t, id.Hex(), tree["id"])
		assert.Equal(t, "2024-05-01T12:00:00Z", tree["created"])
		assert.Equal(t, map[string]any{"city": "Lagos"}, tree["address"])
		assert.Equal(t, []any{"a", int64(2)}, tree["tags"])
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		_, err := valueview.FromBSON([]byte{0x01, 0x02})
		assert.ErrorIs(t, err, valueview.ErrInvalidBSON)
	})
}

func TestFromValues(t *testing.T) {
	tree := valueview.FromValues(url.Values{
		"name":  {"Olamide"},
		"roles": {"admin", "owner"},
		"empty": {},
	})

	assert.Equal(t, "Olamide", tree["name"])
	assert.Equal(t, []any{"admin", "owner"}, tree["roles"])
	assert.Contains(t, tree, "empty")
	assert.Nil(t, tree["empty"])
}
