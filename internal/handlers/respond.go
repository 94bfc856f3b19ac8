package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/openhire/job-board-api/internal/apperrors"
)

// respondError writes the taxonomy-mapped status with a {"message": ...}
// body; the body of a 500 keeps the underlying cause text.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"message": apperrors.Message(err)})
}

// bindError converts a JSON binding failure into an InvalidInput error with a
// field-level message for type mismatches.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.InvalidInput(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}
	return apperrors.InvalidInput("Invalid JSON format: " + err.Error())
}
