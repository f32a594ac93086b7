package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextFor(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	p := Parse(contextFor(""))
	assert.Equal(t, Params{Page: 1, Limit: 20, Offset: 0}, p)

	p = Parse(contextFor("page=3&limit=500"))
	assert.Equal(t, Params{Page: 3, Limit: MaxLimit, Offset: 200}, p)

	p = Parse(contextFor("page=-2&limit=0"))
	assert.Equal(t, Params{Page: 1, Limit: 20, Offset: 0}, p)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		query string
		want  Window
		ok    bool
	}{
		{"", Window{Skip: 0, Limit: 100}, true},
		{"skip=40&limit=20", Window{Skip: 40, Limit: 20}, true},
		{"limit=1000", Window{Skip: 0, Limit: 1000}, true},
		{"skip=-1", Window{}, false},
		{"limit=0", Window{}, false},
		{"limit=1001", Window{}, false},
		{"skip=abc", Window{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseWindow(contextFor(tt.query))
		assert.Equal(t, tt.ok, ok, tt.query)
		assert.Equal(t, tt.want, got, tt.query)
	}
}
