package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog/internal/catalog"
)

// listQueryKeys are the query parameters forwarded to the filter normalizer
var listQueryKeys = []string{
	catalog.KeyPagination,
	catalog.KeySort,
	catalog.KeyFilter,
	catalog.KeyPage,
	catalog.KeyLimit,
}

// ParseListQuery normalizes the listing parameters of a request
func ParseListQuery(c *gin.Context, opts catalog.NormalizeOptions) (*catalog.Query, error) {
	raw := make(map[string]string, len(listQueryKeys))
	for _, key := range listQueryKeys {
		if v, ok := c.GetQuery(key); ok {
			raw[key] = v
		}
	}
	return catalog.Normalize(raw, opts)
}

// parseBoolQuery reads an optional boolean parameter; absent means false
func parseBoolQuery(c *gin.Context, key string) (bool, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// parseListParam splits a comma separated parameter, dropping blanks
func parseListParam(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// viewRequest is the body of POST /views
type viewRequest struct {
	Kind string `json:"kind" binding:"required,oneof=nft serie user"`
	ID   string `json:"id" binding:"required"`
}

// tagRequest is the body of PUT /nfts/:id/categories
type tagRequest struct {
	Codes []string `json:"codes" binding:"required,min=1,dive,required"`
}

// categoryRequest is the body of POST /categories
type categoryRequest struct {
	Code        string  `json:"code" binding:"required,max=64"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// profileRequest is the body of PUT /users/:id
type profileRequest struct {
	Name  *string                `json:"name" binding:"omitempty,max=128"`
	Bio   *string                `json:"bio" binding:"omitempty,max=1024"`
	Links map[string]interface{} `json:"links"`
}
