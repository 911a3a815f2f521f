// Package pagination validates page/per_page query parameters and turns them
// into offset and limit.
package pagination

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 5
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Query is the raw query string form; nil means the parameter was omitted.
type Query struct {
	Page    *int `form:"page"`
	PerPage *int `form:"per_page"`
}

type Params struct {
	Page    int `json:"page" validate:"gt=0"`
	PerPage int `json:"per_page" validate:"gt=1,lt=30"`
}

// Params applies defaults and validates the result.
func (q Query) Params() (Params, error) {
	p := Params{Page: DefaultPage, PerPage: DefaultPerPage}
	if q.Page != nil {
		p.Page = *q.Page
	}
	if q.PerPage != nil {
		p.PerPage = *q.PerPage
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) Validate() error {
	return validate.Struct(p)
}

func (p Params) Offset() int {
	return p.PerPage * (p.Page - 1)
}

func (p Params) Limit() int {
	return p.PerPage
}
