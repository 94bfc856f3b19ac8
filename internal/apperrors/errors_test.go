package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("bad")))
	require.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthenticated("no token")))
	require.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("nope")))
	require.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("gone")))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal("boom", errors.New("db down"))))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestInternalKeepsCauseText(t *testing.T) {
	err := Internal("internal server error", errors.New("connection refused"))
	require.Equal(t, "internal server error: connection refused", Message(err))
	require.ErrorContains(t, err, "connection refused")
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("gone"))
	require.Equal(t, KindNotFound, KindOf(err))
	require.True(t, Is(err, KindNotFound))
	require.False(t, Is(err, KindForbidden))
}
