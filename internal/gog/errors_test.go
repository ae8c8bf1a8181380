package gog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "status error",
			err:  NewAPIError(OpSearch, 500, ErrUnexpectedStatus),
			want: "product search: unexpected status code 500",
		},
		{
			name: "connectivity error",
			err:  NewAPIError(OpInspect, 0, ErrConnectivity),
			want: "product inspection: failed to connect",
		},
		{
			name: "timeout error",
			err:  NewAPIError(OpSearch, 0, ErrTimeout),
			want: "product search: request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	err := NewAPIError(OpInspect, 0, ErrInvalidResponse)

	assert.True(t, errors.Is(err, ErrInvalidResponse))
	assert.False(t, errors.Is(err, ErrConnectivity))
}
