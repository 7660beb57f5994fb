package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veilandvest/backoffice/internal/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithDomainError translates the store's error taxonomy into client
// status codes. fallback is used for errors outside the taxonomy.
func RespondWithDomainError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, "Record not found.")
	case errors.Is(err, models.ErrUniqueness):
		RespondWithError(c, http.StatusConflict, "Record with the same unique value already exists.")
	case errors.Is(err, models.ErrReferentialIntegrity):
		RespondWithError(c, http.StatusUnprocessableEntity, "Referenced record does not exist.")
	case errors.Is(err, models.ErrValidation):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
