package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blog-api/internal/errs"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "foreign key on author",
			err: &pgconn.PgError{
				Code:           "23503",
				Severity:       "ERROR",
				TableName:      "comments",
				ConstraintName: "comments_author_id_fkey",
				Detail:         `Key (author_id)=(42) is not present in table "users".`,
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "COMMENT_NOT_FOUND",
			wantMessage: "The referenced user does not exist",
		},
		{
			name: "foreign key without detail falls back to the constraint",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "comments",
				ConstraintName: "comments_post_id_fkey",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "COMMENT_NOT_FOUND",
			wantMessage: "The referenced post does not exist",
		},
		{
			name: "unique violation names the column",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_email_key",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "A User with this Email already exists",
		},
		{
			name: "not null violation",
			err: &pgconn.PgError{
				Code:       "23502",
				TableName:  "posts",
				ColumnName: "teaser",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "POST_REQUIRED",
			wantMessage: "The Teaser is required",
		},
		{
			name:        "wrapped no rows",
			err:         fmt.Errorf("find post: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "unclassified driver error",
			err:         &pgconn.PgError{Code: "53300"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "plain error",
			err:         errors.New("dial tcp: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandleError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestHandleErrorKeepsHTTPError(t *testing.T) {
	in := errs.NewNotFoundError("Could not find post with specified id", true, nil)
	assert.Same(t, in, HandleError(fmt.Errorf("wrapped: %w", in)))
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, ForeignKeyViolation, ErrCode(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, ConnectionException, ErrCode(&pgconn.PgError{Code: "08006"}))
	assert.Equal(t, Other, ErrCode(errors.New("nope")))
}
