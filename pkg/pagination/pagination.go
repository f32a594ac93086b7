package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1

	// Record listings use skip/limit windows
	DefaultWindowLimit = 100
	MaxWindowLimit     = 1000
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse extracts and validates page/limit from query parameters
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Window is a skip/limit slice of a listing
type Window struct {
	Skip  int
	Limit int
}

// ParseWindow extracts skip/limit. Unlike Parse it rejects out-of-range values
// instead of clamping them, matching the record listing contract.
func ParseWindow(c *gin.Context) (Window, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return Window{}, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultWindowLimit)))
	if err != nil || limit < MinLimit || limit > MaxWindowLimit {
		return Window{}, false
	}
	return Window{Skip: skip, Limit: limit}, true
}
