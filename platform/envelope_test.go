package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coursedesk/models/course"
)

func TestExtractCollection_Shapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		keys []string
		want int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, []string{"banners"}, 2},
		{"named key", `{"banners":[{"id":1}]}`, []string{"banners"}, 1},
		{"second key", `{"data":[{"id":1},{"id":2},{"id":3}]}`, []string{"courses", "data"}, 3},
		{"first array wins", `{"courses":[{"id":1}],"data":[{"id":2},{"id":3}]}`, []string{"courses", "data"}, 1},
		{"key holds object", `{"banners":{"id":1}}`, []string{"banners"}, 0},
		{"missing key", `{"message":"ok"}`, []string{"banners"}, 0},
		{"number", `42`, []string{"banners"}, 0},
		{"null", `null`, []string{"banners"}, 0},
		{"empty body", ``, []string{"banners"}, 0},
		{"not json", `<html>`, []string{"banners"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractCollection([]byte(tc.body), tc.keys...)
			assert.NotNil(t, got)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestExtractObject(t *testing.T) {
	assert.JSONEq(t, `{"id":3}`, string(ExtractObject([]byte(`{"topic":{"id":3}}`), "topic")))
	assert.JSONEq(t, `{"id":4,"content":"text"}`, string(ExtractObject([]byte(`{"id":4,"content":"text"}`), "content")))
	assert.Nil(t, ExtractObject([]byte(`{"message":"created"}`), "topic"))
	assert.Nil(t, ExtractObject([]byte(`[{"id":1}]`), "topic"))
}

func TestDecodeList_SkipsMalformedItems(t *testing.T) {
	body := []byte(`{"details":[{"id":1,"title":"One"},{"id":"not a number"},{"id":3,"title":"Three"}]}`)

	topics := decodeList[course.Topic](body, "details")

	assert.Len(t, topics, 2)
	assert.Equal(t, "One", topics[0].Title)
	assert.Equal(t, uint(3), topics[1].ID)
}
