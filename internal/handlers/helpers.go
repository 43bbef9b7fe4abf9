package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"

	"tasklist/internal/middleware"
	"tasklist/internal/models"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// taskForm mirrors the add form. The due date stays a string so a bad value
// surfaces as a dueDate field error instead of a decode failure.
type taskForm struct {
	Description string `schema:"description"`
	DueDate     string `schema:"dueDate"`
	CategoryID  string `schema:"categoryId"`
	StatusID    string `schema:"statusId"`
}

func (f taskForm) toTask() models.Task {
	return models.Task{
		Description: f.Description,
		DueDate:     parseDate(f.DueDate),
		CategoryID:  f.CategoryID,
		StatusID:    f.StatusID,
	}
}

const dueDateFormatMessage = "Due date must be formatted as YYYY-MM-DD."

// dueDateFormatErrors validates t and reports the due date as malformed
// rather than missing.
func dueDateFormatErrors(t models.Task) models.ValidationErrors {
	out := models.ValidationErrors{}
	for _, fe := range models.ValidateTask(t) {
		if fe.Field != "dueDate" {
			out = append(out, fe)
		}
	}
	return append(out, models.FieldError{Field: "dueDate", Message: dueDateFormatMessage})
}

func decodeForm(c *gin.Context, dst any) error {
	if err := c.Request.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, c.Request.PostForm)
}

func parseDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// listURL is the list view for a filter token; the token travels as the
// route value ID.
func listURL(token string) string {
	if token == "" {
		return "/"
	}
	return "/filter/" + url.PathEscape(token)
}

func redirectToList(c *gin.Context, token string) {
	c.Redirect(http.StatusSeeOther, listURL(token))
}

func getRequestID(c *gin.Context) string {
	if v, ok := c.Get(middleware.RequestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "-"
}
