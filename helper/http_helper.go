package helper

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	enTranslations "gopkg.in/go-playground/validator.v9/translations/en"

	"thinkscope-cms/models"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	enTranslations.RegisterDefaultTranslations(validate, trans)

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
	}
}

// GetStatusCode maps the service layer's typed errors onto HTTP statuses.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch err.(type) {
	case models.ErrorValidation:
		return http.StatusBadRequest
	case models.ErrorUnauthorized:
		return http.StatusUnauthorized
	case models.ErrorNotFound:
		return http.StatusNotFound
	case models.ErrorConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// SendCreated ...
// Send success response for a newly created resource.
func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// SendMessage ...
// Send success response carrying only a message.
func (u *HTTPHelper) SendMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendError(c, http.StatusBadRequest, message)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendError(c, http.StatusUnauthorized, message)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendError(c, http.StatusNotFound, message)
}

// SendServiceError ...
// Map a service error onto the HTTP response.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	u.SendError(c, u.GetStatusCode(err), err.Error())
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": errorResponse,
	})
}

// GeneratePaging ...
// Set pagination response metadata for list endpoints.
func (u *HTTPHelper) GeneratePaging(page, limit int, totalRecord int64) map[string]interface{} {
	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
	}
}
