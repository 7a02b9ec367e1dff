package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/schoolapi/internal/app/models/dto"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
)

const multipartMemory = 32 << 20

var registerOnce sync.Once

// RegisterTagNames makes validator report fields by their json names
// ("first_name" instead of "FirstName").
func RegisterTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})
	})
}

// Bind decodes the request (JSON or form, chosen by Content-Type) into obj and
// validates it. Every failure is returned as a field-scoped validation error.
func Bind(c *gin.Context, obj interface{}) error {
	RegisterTagNames()

	if isForm(c) {
		if err := checkFormValues(c.Request, obj); err != nil {
			return err
		}
	}

	err := c.ShouldBind(obj)
	if errors.Is(err, io.EOF) {
		// empty JSON body: report the missing required fields
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return nil
	}
	return translate(err)
}

func translate(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fromValidationErrors(validationErrs)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return apperrors.NewBadRequestError("request body must be a JSON object")
		}
		return apperrors.NewValidationError(field, field+" must be of type "+typeName(typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.NewBadRequestError("malformed JSON body")
	}

	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid request body").
		WithDetails(map[string]interface{}{"reason": err.Error()})
}

func fromValidationErrors(errs validator.ValidationErrors) error {
	list := dto.NewValidationErrors()
	for _, fe := range errs {
		list.AddError(fe.Field(), FormatFieldError(fe))
	}

	first := list.Errors[0]
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, first.Message).
		WithField(first.Field).
		WithDetails(map[string]interface{}{"errors": list.Errors})
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

func isForm(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// checkFormValues converts every numeric and boolean form value the way the
// form binder would, in field declaration order. A present but blank value is
// rejected; the binder would silently turn it into zero.
func checkFormValues(req *http.Request, obj interface{}) error {
	if err := req.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return apperrors.NewBadRequestError("malformed form body")
	}

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		values, ok := req.Form[name]
		if !ok || len(values) == 0 {
			continue
		}
		if !parses(fld.Type, values[0]) {
			return apperrors.NewValidationError(name, name+" must be of type "+typeName(fld.Type))
		}
	}
	return nil
}

// parses reports whether value converts to the kind behind typ. Non-scalar
// kinds are left to the binder.
func parses(typ reflect.Type, value string) bool {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	var err error
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err = strconv.ParseInt(value, 10, typ.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		_, err = strconv.ParseUint(value, 10, typ.Bits())
	case reflect.Float32, reflect.Float64:
		_, err = strconv.ParseFloat(value, typ.Bits())
	case reflect.Bool:
		_, err = strconv.ParseBool(value)
	}
	return err == nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Ptr:
		return typeName(t.Elem())
	}
	return t.String()
}
