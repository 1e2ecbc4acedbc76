package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		err  *HTTPError
		want string
	}{
		{
			name: "not found uses the error key",
			err:  NewNotFoundError("Could not find post with specified id", true, nil),
			want: `{"error":"Could not find post with specified id","success":false}`,
		},
		{
			name: "method not allowed uses the message key",
			err:  NewMethodNotAllowedError(),
			want: `{"message":"Method not allowed","success":false}`,
		},
		{
			name: "missing parameter carries the field",
			err:  NewMissingParameterError("email"),
			want: `{"error":"email parameter missing","errors":[{"field":"email","error":"parameter missing"}],"success":false}`,
		},
		{
			name: "internal error hides its cause",
			err:  NewInternalServerError().WithMessage("Error creating the comment").WithCause(errors.New("connection refused")),
			want: `{"error":"Error creating the comment","success":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.err.Response())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestHTTPErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalServerError().WithCause(cause)

	assert.ErrorIs(t, err, cause)

	var httpErr *HTTPError
	require.ErrorAs(t, error(err), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("Error retrieving the posts")

	assert.Equal(t, "Internal Server Error", base.Message)
	assert.Equal(t, "Error retrieving the posts", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}
