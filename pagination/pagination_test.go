package pagination

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func intPtr(v int) *int { return &v }

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		query      Query
		wantErr    bool
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", query: Query{}, wantOffset: 0, wantLimit: 5},
		{name: "third page", query: Query{Page: intPtr(3), PerPage: intPtr(10)}, wantOffset: 20, wantLimit: 10},
		{name: "upper bound inside", query: Query{Page: intPtr(1), PerPage: intPtr(29)}, wantOffset: 0, wantLimit: 29},
		{name: "lower bound inside", query: Query{Page: intPtr(2), PerPage: intPtr(2)}, wantOffset: 2, wantLimit: 2},
		{name: "page zero", query: Query{Page: intPtr(0)}, wantErr: true},
		{name: "negative page", query: Query{Page: intPtr(-1)}, wantErr: true},
		{name: "per page one", query: Query{PerPage: intPtr(1)}, wantErr: true},
		{name: "per page thirty", query: Query{PerPage: intPtr(30)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.query.Params()
			if tt.wantErr {
				var verrs validator.ValidationErrors
				if !errors.As(err, &verrs) {
					t.Fatalf("expected validation errors, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", p.Offset(), tt.wantOffset)
			}
			if p.Limit() != tt.wantLimit {
				t.Errorf("limit = %d, want %d", p.Limit(), tt.wantLimit)
			}
		})
	}
}
